// Copyright 2026 The Einshape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the native CPU execution target for einshape.
//
// The CPU backend applies compiled shape plans to dense in-memory
// tensors, with a direct axis-insert broadcast.
package cpu

import (
	"github.com/google-deepmind/einshape"
	internalcpu "github.com/google-deepmind/einshape/internal/backend/cpu"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements einshape.Backend.
var _ einshape.Backend[*einshape.RawTensor] = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := einshape.FromSlice([]float64{1, 2, 3, 4, 5, 6}, einshape.ShapeOf(2, 3))
//	y, err := einshape.Exec(backend, "ij->ji", x, einshape.Dims(x), nil)
func New() *Backend {
	return internalcpu.New()
}
