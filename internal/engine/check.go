package engine

import (
	"strings"

	"go.uber.org/multierr"
)

// CheckEquation validates a Shape Equation without an input shape,
// reporting every fault it can find rather than stopping at the first.
// A nil result does not guarantee the equation compiles against every
// shape (arity and size checks need the shape); a non-nil result is a
// combined error whose parts match the engine's error taxonomy.
func CheckEquation(equation string) error {
	var errs error

	for _, r := range equation {
		if r >= 'A' && r <= 'Z' {
			errs = multierr.Append(errs, syntaxErrorf("equation may not use upper-case indices: %q", equation))
			break
		}
	}

	sides := strings.Split(equation, "->")
	if len(sides) != 2 {
		return multierr.Append(errs, syntaxErrorf(`equation requires a single "->": %q`, equation))
	}
	lhs, rhs := sides[0], sides[1]

	lhsGroups, err := groupDimensions(lhs)
	errs = multierr.Append(errs, err)
	rhsGroups, err := groupDimensions(rhs)
	errs = multierr.Append(errs, err)

	for _, side := range []struct {
		name   string
		groups []string
	}{{"LHS", lhsGroups}, {"RHS", rhsGroups}} {
		flat := strings.Join(side.groups, "")
		for _, a := range flat {
			if a != '.' && strings.Count(flat, string(a)) > 1 {
				errs = multierr.Append(errs, consistencyErrorf("index %q occurs more than once on %s", a, side.name))
				break
			}
		}
	}

	// An RHS wildcard is only meaningful when the LHS has one to fix the
	// number of captured axes.
	if containsGroup(rhsGroups, wildcard) && !containsGroup(lhsGroups, wildcard) {
		errs = multierr.Append(errs, syntaxErrorf(`wildcard "..." on RHS has no matching wildcard on LHS`))
	}

	return errs
}
