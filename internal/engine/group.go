package engine

import "strings"

// wildcard stands for a variable-length run of unnamed axes. It may
// occur at most once per expression, and is expanded into upper-case
// indices before the engine solves index sizes.
const wildcard = "..."

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// groupDimensions splits an expression into its separate grouped
// dimensions, one entry per physical axis position.
//
// An unqualified dimension index is a group by itself. Parentheses
// demarcate a sequence of indices grouped into a single dimension.
// '1' is an alias for '()', a dimension of size 1 with no indices.
// Nested parentheses are not permitted.
//
// Examples:
//
//	"ijk"     groups as ["i", "j", "k"]
//	"(mn)hwc" groups as ["mn", "h", "w", "c"]
//	"n111"    groups as ["n", "", "", ""]
//	"n..."    groups as ["n", "..."], where "..." stands for multiple groups
func groupDimensions(expr string) ([]string, error) {
	var groups []string
	rs := []rune(expr)
	i := 0
	for i < len(rs) {
		switch {
		case isLetter(rs[i]):
			groups = append(groups, string(rs[i]))
			i++

		case rs[i] == '1':
			// Dimension of size 1 with no indices; equivalent to "()".
			groups = append(groups, "")
			i++

		case rs[i] == '(':
			i++
			begin := i
			for i < len(rs) && isLetter(rs[i]) {
				i++
			}
			if !(i < len(rs) && rs[i] == ')') {
				return nil, syntaxErrorf("unclosed parenthesis in %q", expr)
			}
			groups = append(groups, string(rs[begin:i]))
			i++

		case rs[i] == '.' && strings.HasPrefix(string(rs[i:]), wildcard):
			for _, g := range groups {
				if g == wildcard {
					return nil, syntaxErrorf(`wildcard "..." may only occur once in %q`, expr)
				}
			}
			groups = append(groups, wildcard)
			i += len(wildcard)

		default:
			return nil, syntaxErrorf("illegal character: %d", rs[i])
		}
	}
	return groups, nil
}

// expandWildcard replaces the wildcard in expr with n freshly assigned
// upper-case indices 'A', 'B', ... It must be applied with the same n
// to both sides of an equation so that the sides keep referring to the
// same wildcard axes.
func expandWildcard(expr string, n int) (string, error) {
	const pool = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	if n > len(pool) {
		return "", arityErrorf("too many dimensions: wildcard covers %d axes, at most %d supported", n, len(pool))
	}
	return strings.Replace(expr, wildcard, pool[:n], 1), nil
}
