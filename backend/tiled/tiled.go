// Copyright 2026 The Einshape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tiled provides an einshape execution target without a native
// axis-insert broadcast.
//
// It stands in for runtimes whose only replication primitive is an
// in-place tile: its preprocess hook rewrites every Broadcast op into a
// Reshape/Tile/Reshape run before optimization. Results are
// element-wise identical to the cpu backend for every legal plan.
package tiled

import (
	"github.com/google-deepmind/einshape"
	internaltiled "github.com/google-deepmind/einshape/internal/backend/tiled"
)

// Backend represents the tiled backend implementation.
type Backend = internaltiled.TiledBackend

// Compile-time checks that Backend implements einshape.Backend along
// with the Preprocessor and Tiler capabilities.
var (
	_ einshape.Backend[*einshape.RawTensor] = (*Backend)(nil)
	_ einshape.Preprocessor                 = (*Backend)(nil)
	_ einshape.Tiler[*einshape.RawTensor]   = (*Backend)(nil)
)

// New creates a new tiled backend.
func New() *Backend {
	return internaltiled.New()
}
