// Copyright 2026 The Einshape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package einshape

import (
	"github.com/google-deepmind/einshape/internal/engine"
	"github.com/google-deepmind/einshape/internal/tensor"
)

// Type aliases for the public API

// Dim is the size of one tensor axis: a Known concrete integer or an
// opaque Symbolic handle resolved at execution time. A dim whose size
// is not static must implement Symbolic.
type Dim = engine.Dim

// Known is a statically known dimension size.
type Known = engine.Known

// Symbolic is an opaque dynamic dimension size supporting the
// arithmetic the compiler needs, in both operand orders.
type Symbolic = engine.Symbolic

// Shape is an ordered sequence of dims, one per physical axis.
type Shape = engine.Shape

// Sizes maps index letters to explicitly specified dimension sizes.
type Sizes = engine.Sizes

// Op is one primitive shape transformation in a compiled plan.
type Op = engine.Op

// Reshape reinterprets the same element count under a new shape.
type Reshape = engine.Reshape

// Transpose reorders the axes of a tensor.
type Transpose = engine.Transpose

// Broadcast inserts new axes that repeat existing data.
type Broadcast = engine.Broadcast

// Tile repeats data in place over existing axes. It only appears in
// plans rewritten by TilePreprocess.
type Tile = engine.Tile

// Error types: every compilation failure is one of these, matchable
// with errors.As.

// SyntaxError reports an equation that cannot be parsed.
type SyntaxError = engine.SyntaxError

// ArityError reports an input rank not matching the equation's LHS.
type ArityError = engine.ArityError

// UnderspecifiedError reports an index size that cannot be determined.
type UnderspecifiedError = engine.UnderspecifiedError

// DivisibilityError reports a group size not dividing its input axis.
type DivisibilityError = engine.DivisibilityError

// ConsistencyError reports sizes or indices that contradict each other.
type ConsistencyError = engine.ConsistencyError

// ShapeOf builds a fully known shape from integer sizes.
func ShapeOf(sizes ...int) Shape {
	return engine.ShapeOf(sizes...)
}

// Compile compiles a Shape Equation against an input shape into an
// optimized plan of shape ops.
//
// inputShape may mix Known and Symbolic components; sizes supplies
// index sizes that cannot be inferred from inputShape (nil when all
// sizes are inferrable). The returned plan is minimal: identity
// equations compile to an empty plan.
func Compile(equation string, inputShape Shape, sizes Sizes) ([]Op, error) {
	ops, err := engine.GenerateOps(equation, inputShape, sizes)
	if err != nil {
		return nil, err
	}
	return engine.Optimize(ops, inputShape), nil
}

// Generate compiles a Shape Equation into the unoptimized plan, always
// structured [Reshape, Transpose?, Broadcast?, Reshape]. Most callers
// want Compile; Generate exposes the synthesizer alone, for runtimes
// that rewrite plans before optimizing (see Preprocessor).
func Generate(equation string, inputShape Shape, sizes Sizes) ([]Op, error) {
	return engine.GenerateOps(equation, inputShape, sizes)
}

// Optimize removes provably redundant ops from a plan. It is
// idempotent and never changes what the plan computes.
func Optimize(ops []Op, inputShape Shape) []Op {
	return engine.Optimize(ops, inputShape)
}

// TilePreprocess rewrites every Broadcast in a plan into an equivalent
// Reshape/Tile/Reshape run, for targets without a native axis-insert
// broadcast.
func TilePreprocess(ops []Op, inputShape Shape) []Op {
	return engine.TilePreprocess(ops, inputShape)
}

// CheckEquation validates a Shape Equation without an input shape,
// reporting every fault it can find rather than stopping at the first.
func CheckEquation(equation string) error {
	return engine.CheckEquation(equation)
}

// RawTensor is the dense row-major float64 tensor the bundled backends
// execute plans against.
type RawTensor = tensor.RawTensor

// FromSlice creates a tensor holding a copy of data, interpreted in
// row-major order under the given shape.
func FromSlice(data []float64, shape Shape) (*RawTensor, error) {
	sizes, ok := shape.Static()
	if !ok {
		return nil, &UnderspecifiedError{Msg: "cannot allocate a tensor with a symbolic shape: " + shape.String()}
	}
	return tensor.FromSlice(data, tensor.Shape(sizes))
}

// Dims returns the shape of a tensor as compiler dims.
func Dims(x *RawTensor) Shape {
	return engine.ShapeOf(x.Shape()...)
}
