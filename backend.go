// Copyright 2026 The Einshape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package einshape

import "github.com/google-deepmind/einshape/internal/engine"

// Backend applies primitive shape ops to a concrete tensor type T.
//
// Implementations:
//   - backend/cpu: native axis-insert broadcast
//   - backend/tiled: broadcast lowered to in-place tile via Preprocess
//
// A backend only needs the three core primitives; the Preprocessor and
// Tiler capabilities are optional.
type Backend[T any] = engine.Backend[T]

// Preprocessor is an optional backend capability: an opportunity to
// rewrite ops the target cannot execute directly, invoked once before
// the optimization pass.
type Preprocessor = engine.Preprocessor

// Tiler is an optional backend capability executing the Tile op.
type Tiler[T any] = engine.Tiler[T]

// Exec compiles the equation and runs the resulting plan against value
// on backend b: generate, backend preprocess (if any), optimize, then
// apply each op in order to the evolving tensor.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := einshape.FromSlice([]float64{1, 2, 3, 4, 5, 6}, einshape.ShapeOf(2, 3))
//	y, err := einshape.Exec(backend, "ij->ji", x, einshape.Dims(x), nil)
func Exec[T any](b Backend[T], equation string, value T, shape Shape, sizes Sizes) (T, error) {
	return engine.Exec(b, equation, value, shape, sizes)
}
