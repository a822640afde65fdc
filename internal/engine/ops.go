package engine

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// Op is one primitive shape transformation in a compiled plan. The set
// of ops is closed: Reshape, Transpose, Broadcast, plus Tile which only
// appears after tile preprocessing. Ops are immutable values; backends
// dispatch on the concrete type.
type Op interface {
	// TransformShape returns the output shape of the op given its
	// input shape.
	TransformShape(input Shape) Shape
	String() string
}

// Reshape reinterprets the same element count under a new shape,
// leaving element traversal order unchanged.
type Reshape struct {
	Shape Shape
}

// TransformShape returns the target shape regardless of input.
func (op Reshape) TransformShape(Shape) Shape { return op.Shape }

func (op Reshape) String() string { return "Reshape" + op.Shape.String() }

// Transpose reorders the axes of a tensor. Perm[i] is the source axis
// feeding output axis i: for example, perm [0, 2, 1] swaps the
// inner-most two axes of a 3D tensor.
type Transpose struct {
	Perm []int
}

// TransformShape permutes the input shape per Perm.
func (op Transpose) TransformShape(input Shape) Shape {
	out := make(Shape, len(op.Perm))
	for i, src := range op.Perm {
		out[i] = input[src]
	}
	return out
}

func (op Transpose) String() string {
	parts := make([]string, len(op.Perm))
	for i, p := range op.Perm {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return "Transpose[" + strings.Join(parts, " ") + "]"
}

// Broadcast inserts new axes that repeat existing data. AxisSizes maps
// each new axis's position in the resulting tensor to its size: applying
// {1: 5, 3: 6} to a tensor of shape [2 2 2] yields shape [2 5 2 6 2].
type Broadcast struct {
	AxisSizes map[int]Dim
}

// TransformShape inserts the new axis sizes at their output positions.
func (op Broadcast) TransformShape(input Shape) Shape {
	out := input.Clone()
	for _, axis := range op.sortedAxes() {
		out = append(out, nil)
		copy(out[axis+1:], out[axis:])
		out[axis] = op.AxisSizes[axis]
	}
	return out
}

func (op Broadcast) sortedAxes() []int {
	axes := maps.Keys(op.AxisSizes)
	sort.Ints(axes)
	return axes
}

func (op Broadcast) String() string {
	parts := make([]string, 0, len(op.AxisSizes))
	for _, axis := range op.sortedAxes() {
		parts = append(parts, fmt.Sprintf("%d:%s", axis, op.AxisSizes[axis]))
	}
	return "Broadcast{" + strings.Join(parts, " ") + "}"
}

// Tile repeats data in place over existing axes, multiplying each axis
// size by the corresponding multiple. It is emitted only by
// TilePreprocess, for backends without a native axis-insert broadcast.
type Tile struct {
	Multiples []Dim
}

// TransformShape multiplies each axis size by its multiple.
func (op Tile) TransformShape(input Shape) Shape {
	out := make(Shape, len(op.Multiples))
	for i, mult := range op.Multiples {
		out[i] = Mul(input[i], mult)
	}
	return out
}

func (op Tile) String() string { return "Tile" + Shape(op.Multiples).String() }
