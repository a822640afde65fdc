package engine

// Optimize returns a copy of the op plan with provably redundant ops
// removed. Two passes run in order: adjacent Reshapes collapse to the
// last of the run, then Reshapes whose target equals their statically
// known input shape are dropped. Transpose and Broadcast ops are never
// elided, even when a permutation is the identity. Optimize is
// idempotent and order-preserving for every op it keeps.
func Optimize(ops []Op, inputShape Shape) []Op {
	ops = elideIntermediateReshapes(ops)
	return elideNoopReshapes(ops, inputShape)
}

// elideIntermediateReshapes keeps only the last Reshape of any maximal
// run of contiguous Reshapes: only the final shape after the run
// matters.
func elideIntermediateReshapes(ops []Op) []Op {
	kept := make([]Op, 0, len(ops))
	for i, op := range ops {
		if isReshape(op) && i+1 < len(ops) && isReshape(ops[i+1]) {
			continue
		}
		kept = append(kept, op)
	}
	return kept
}

// elideNoopReshapes walks the plan tracking the evolving shape and
// drops Reshapes whose statically known target equals their statically
// known input.
func elideNoopReshapes(ops []Op, shape Shape) []Op {
	kept := make([]Op, 0, len(ops))
	for _, op := range ops {
		if !isNoopReshape(op, shape) {
			kept = append(kept, op)
		}
		shape = op.TransformShape(shape)
	}
	return kept
}

func isReshape(op Op) bool {
	_, ok := op.(Reshape)
	return ok
}

func isNoopReshape(op Op, inputShape Shape) bool {
	reshape, ok := op.(Reshape)
	if !ok {
		return false
	}
	in, ok := inputShape.Static()
	if !ok {
		return false
	}
	out, ok := reshape.Shape.Static()
	if !ok {
		return false
	}
	if len(in) != len(out) {
		return false
	}
	for i := range in {
		if in[i] != out[i] {
			return false
		}
	}
	return true
}
