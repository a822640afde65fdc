// Package engine compiles Shape Equations into primitive shape ops.
//
// A Shape Equation such as "n(hwc)->nchw" describes how a tensor's axes
// are regrouped, reordered, squeezed, expanded, or broadcast. The
// engine parses the equation, solves every index's size from the input
// shape and explicit hints, and synthesizes an ordered plan of
// Reshape/Transpose/Broadcast ops that any runtime can execute without
// understanding the equation syntax. The engine holds no state: every
// compilation is an independent pure function call.
package engine

import (
	"sort"
	"strings"
)

// GenerateOps compiles a Shape Equation into an unoptimized op plan.
//
// inputShape is the shape of the input tensor and may mix Known and
// Symbolic components. sizes supplies index sizes where they cannot be
// inferred from inputShape.
//
// The plan always has the structure [Reshape, Transpose?, Broadcast?,
// Reshape]: ungroup first, reorder and broadcast in the middle, regroup
// last. In many cases this is less than optimal; Optimize is expected
// to run as a separate pass over the plan.
func GenerateOps(equation string, inputShape Shape, sizes Sizes) ([]Op, error) {
	// Upper-case indices are reserved for handling "..." wildcards.
	for _, r := range equation {
		if r >= 'A' && r <= 'Z' {
			return nil, syntaxErrorf("equation may not use upper-case indices: %q", equation)
		}
	}

	sides := strings.Split(equation, "->")
	if len(sides) != 2 {
		return nil, syntaxErrorf(`equation requires a single "->": %q`, equation)
	}
	lhs, rhs := sides[0], sides[1]

	// Understand how the input indices are grouped.
	lhsGroups, err := groupDimensions(lhs)
	if err != nil {
		return nil, err
	}

	if containsGroup(lhsGroups, wildcard) {
		if len(inputShape) < len(lhsGroups)-1 {
			return nil, arityErrorf(
				"input shape must have rank matching LHS: LHS expects rank >= %d but actual input has rank %d",
				len(lhsGroups)-1, len(inputShape))
		}
		numWildcardDims := len(inputShape) - (len(lhsGroups) - 1)
		// Update the shape expressions, and parse afresh.
		if lhs, err = expandWildcard(lhs, numWildcardDims); err != nil {
			return nil, err
		}
		if rhs, err = expandWildcard(rhs, numWildcardDims); err != nil {
			return nil, err
		}
		if lhsGroups, err = groupDimensions(lhs); err != nil {
			return nil, err
		}
	} else if len(inputShape) != len(lhsGroups) {
		return nil, arityErrorf(
			"input shape must have rank matching LHS: LHS expects rank %d but actual input has rank %d",
			len(lhsGroups), len(inputShape))
	}

	// Determine all indices' sizes, inferred from inputShape along with
	// the explicit hints in sizes.
	inferred := make(Sizes, len(sizes))
	for a, d := range sizes {
		inferred[a] = d
	}
	for j, group := range lhsGroups {
		// One index per group is permitted to have no specified size.
		var known Dim = Known(1)
		var unknown rune
		for _, a := range group {
			if d, ok := inferred[a]; ok {
				known = Mul(known, d)
			} else {
				if unknown != 0 {
					return nil, underspecifiedErrorf(
						"all but one of the indices must have their size specified when ungrouping dimensions: "+
							"in group (%s), %q and %q have unspecified size",
						group, unknown, a)
				}
				unknown = a
			}
		}

		if unknown != 0 {
			// Infer the remaining index's size from the input shape. A
			// zero-size known product cannot divide anything, so reject it
			// before the arithmetic.
			if n, ok := known.Static(); ok && n == 0 {
				knownIndices := strings.Replace(group, string(unknown), "", 1)
				if axis, ok := inputShape[j].Static(); ok && axis != 0 {
					return nil, consistencyErrorf(
						"input shape incompatible with index sizes: "+
							"group (%s) expects size %s, but its indices %q have combined specified size 0",
						group, inputShape[j], knownIndices)
				}
				return nil, divisibilityErrorf(
					"cannot infer the size of %q in group (%s): "+
						"its indices %q have combined specified size 0",
					unknown, group, knownIndices)
			}
			if rem, ok := Mod(inputShape[j], known).Static(); ok && rem != 0 {
				knownIndices := strings.Replace(group, string(unknown), "", 1)
				return nil, divisibilityErrorf(
					"dimension to ungroup is not divisible by its index sizes: "+
						"group (%s) expects size %s, but its indices %q have combined specified size %s",
					group, inputShape[j], knownIndices, known)
			}
			inferred[unknown] = FloorDiv(inputShape[j], known)
		} else {
			// All indices are fully specified. Check consistency with the
			// input shape, provided both are known statically.
			if disc, ok := Sub(inputShape[j], known).Static(); ok && disc != 0 {
				return nil, consistencyErrorf(
					"input shape incompatible with index sizes: "+
						"group (%s) expects size %s, but its indices have combined specified size %s",
					group, inputShape[j], known)
			}
		}
	}

	var ops []Op

	// Begin with a reshape op to ungroup everything.
	ungrouped := strings.Join(lhsGroups, "")
	ungroupedShape := make(Shape, 0, len(ungrouped))
	for _, a := range ungrouped {
		ungroupedShape = append(ungroupedShape, inferred[a])
	}
	ops = append(ops, Reshape{Shape: ungroupedShape})

	// Infer the permutation from the RHS with grouping markers stripped.
	// RHS-only indices are broadcast axes and need an explicit size.
	var transposed []rune
	broadcastAxisSizes := make(map[int]Dim)
	pos := 0
	for _, a := range rhs {
		if a == '(' || a == ')' || a == '1' {
			continue
		}
		if strings.ContainsRune(ungrouped, a) {
			transposed = append(transposed, a)
		} else {
			d, ok := inferred[a]
			if !ok {
				return nil, underspecifiedErrorf("broadcast multiples %q must be specified", a)
			}
			broadcastAxisSizes[pos] = d
		}
		pos++
	}

	if string(transposed) != ungrouped {
		// Indices in RHS must occur once and only once in LHS, and vice versa.
		for _, a := range transposed {
			if strings.Count(ungrouped, string(a)) != 1 {
				return nil, consistencyErrorf("every index in RHS must occur exactly once in LHS: %q", a)
			}
		}
		for _, a := range ungrouped {
			if strings.Count(rhs, string(a)) != 1 {
				return nil, consistencyErrorf("every index in LHS must occur exactly once in RHS: %q", a)
			}
		}
		perm := make([]int, len(transposed))
		for i, a := range transposed {
			perm[i] = strings.IndexRune(ungrouped, a)
		}
		ops = append(ops, Transpose{Perm: perm})
	}

	if len(broadcastAxisSizes) > 0 {
		ops = append(ops, Broadcast{AxisSizes: broadcastAxisSizes})
	}

	// Now regroup as specified by the RHS expression.
	rhsGroups, err := groupDimensions(rhs)
	if err != nil {
		return nil, err
	}

	// Sizes of the original LHS axes, keyed by normalized group. When an
	// RHS group's size is not statically known but the group matches an
	// LHS group, the original axis size is the better answer, e.g.
	// "(ij)->(ji)" with a static input shape but symbolic j.
	lhsGroupSizes := make(map[string]Dim, len(lhsGroups))
	for j, group := range lhsGroups {
		lhsGroupSizes[alphabetical(group)] = inputShape[j]
	}

	outputShape := make(Shape, len(rhsGroups))
	for j, group := range rhsGroups {
		var prod Dim = Known(1)
		for _, a := range group {
			prod = Mul(prod, inferred[a])
		}
		if _, ok := prod.Static(); !ok {
			if d, ok := lhsGroupSizes[alphabetical(group)]; ok {
				prod = d
			}
		}
		outputShape[j] = prod
	}
	ops = append(ops, Reshape{Shape: outputShape})

	return ops, nil
}

func containsGroup(groups []string, want string) bool {
	for _, g := range groups {
		if g == want {
			return true
		}
	}
	return false
}

func alphabetical(group string) string {
	letters := strings.Split(group, "")
	sort.Strings(letters)
	return strings.Join(letters, "")
}
