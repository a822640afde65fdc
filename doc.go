// Copyright 2026 The Einshape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package einshape compiles Shape Equations into primitive shape ops.
//
// # Overview
//
// A Shape Equation is a compact string such as "n(hwc)->nchw" describing
// how a tensor's axes are regrouped, reordered, squeezed, expanded, or
// broadcast. It unifies reshape, squeeze, expand-dims, and transpose
// the way einsum unifies matmul and tensordot. The compiler
// turns an equation, an input shape, and optional index-size hints into
// a minimal ordered plan of three primitive ops any tensor runtime can
// execute:
//   - Reshape: reinterpret the element count under a new shape
//   - Transpose: permute axes
//   - Broadcast: insert new axes replicating existing data
//
// # Basic Usage
//
//	import (
//	    "github.com/google-deepmind/einshape"
//	    "github.com/google-deepmind/einshape/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := einshape.FromSlice([]float64{1, 2, 3, 4, 5, 6}, einshape.ShapeOf(2, 3))
//
//	    // Transpose, then flatten: [2, 3] -> [3, 2] -> [6].
//	    y, err := einshape.Exec(backend, "ij->(ji)", x, einshape.Dims(x), nil)
//	    ...
//	}
//
// # Equation Grammar
//
// Each side of the single "->" is a sequence of groups: a lower-case
// letter (one index), "1" (a singleton axis), or a parenthesized run of
// letters (several indices packed into one physical axis). At most one
// "..." wildcard stands for a variable-length run of unnamed axes.
// Indices shared between the sides express axis correspondence; an
// index appearing only on the RHS is a broadcast axis and needs an
// explicit size:
//
//	einshape.Exec(backend, "j->nj", x, einshape.Dims(x), einshape.Sizes{'n': einshape.Known(3)})
//
// # Compilation Without Execution
//
// Compile returns the optimized plan as data, suitable for logging,
// serialization, or feeding to an external runtime:
//
//	ops, err := einshape.Compile("i(jk)->k(ji)", einshape.ShapeOf(3, 35),
//	    einshape.Sizes{'j': einshape.Known(5)})
//	// ops: [Reshape[3 5 7] Transpose[2 1 0] Reshape[7 15]]
//
// # Symbolic Shapes
//
// Shape components need not be concrete: any type implementing Symbolic
// participates in size inference, and checks that cannot be decided at
// compile time are skipped. Plans containing symbolic dims compile
// normally; only execution requires every dim to be concrete.
//
// # Backends
//
// A Backend implements the three primitives for a concrete tensor type.
// A backend may additionally implement Preprocessor to rewrite plans it
// cannot execute directly before optimization; see backend/tiled for a
// target that lowers Broadcast to an in-place Tile.
package einshape
