package engine

// TilePreprocess rewrites every Broadcast in the plan into an
// equivalent Reshape?/Tile/Reshape run, for execution targets that lack
// a native axis-insert broadcast. The rewrite is semantically identical
// to Broadcast for every legal AxisSizes mapping, including multiple
// new axes collapsing onto the same insertion point and new axes
// appended past the last existing axis. It is intended as a backend's
// Preprocess hook and runs before Optimize, which then removes any
// redundant Reshapes this rewrite introduces.
func TilePreprocess(ops []Op, inputShape Shape) []Op {
	preprocessed := make([]Op, 0, len(ops))

	shape := inputShape
	for _, op := range ops {
		nextShape := op.TransformShape(shape)
		if broadcast, ok := op.(Broadcast); ok {
			// As far as possible, tile over the next existing dimension
			// instead of inserting one, and reshape to the desired shape at
			// the end. Multiple new dimensions may share the same "next
			// existing" dimension.

			// If the broadcast appends trailing dimensions there is no next
			// existing dimension, so append a size-1 axis to tile.
			if _, appends := broadcast.AxisSizes[len(nextShape)-1]; appends {
				shape = append(shape.Clone(), Known(1))
				preprocessed = append(preprocessed, Reshape{Shape: shape})
			}

			multiples := make([]Dim, len(shape))
			for i := range multiples {
				multiples[i] = Known(1)
			}
			for j, axis := range broadcast.sortedAxes() {
				originalAxis := axis - j
				multiples[originalAxis] = Mul(multiples[originalAxis], broadcast.AxisSizes[axis])
			}
			preprocessed = append(preprocessed, Tile{Multiples: multiples})

			preprocessed = append(preprocessed, Reshape{Shape: nextShape})
		} else {
			preprocessed = append(preprocessed, op)
		}

		shape = nextShape
	}

	return preprocessed
}
