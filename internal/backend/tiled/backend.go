// Package tiled implements an execution target without a native
// axis-insert broadcast, standing in for runtimes whose only
// replication primitive is an in-place tile. Its preprocess hook
// rewrites every Broadcast into a Reshape/Tile/Reshape run before the
// plan is optimized.
package tiled

import (
	"github.com/pkg/errors"

	"github.com/google-deepmind/einshape/internal/engine"
	"github.com/google-deepmind/einshape/internal/tensor"
)

// TiledBackend executes shape ops against dense in-memory tensors,
// emulating broadcast with tile.
type TiledBackend struct{}

// New creates a new tiled backend.
func New() *TiledBackend {
	return &TiledBackend{}
}

// Name returns the backend name.
func (b *TiledBackend) Name() string {
	return "Tiled"
}

// Reshape reinterprets x under the op's target shape.
func (b *TiledBackend) Reshape(x *tensor.RawTensor, op engine.Reshape) (*tensor.RawTensor, error) {
	shape, err := staticShape(op.Shape)
	if err != nil {
		return nil, errors.Wrap(err, "reshape")
	}
	return tensor.Reshape(x, shape)
}

// Transpose reorders the axes of x per the op's permutation.
func (b *TiledBackend) Transpose(x *tensor.RawTensor, op engine.Transpose) (*tensor.RawTensor, error) {
	return tensor.Transpose(x, op.Perm)
}

// Broadcast is never reached: Preprocess removes Broadcast ops.
func (b *TiledBackend) Broadcast(*tensor.RawTensor, engine.Broadcast) (*tensor.RawTensor, error) {
	return nil, errors.New("tiled: Broadcast ops are removed by preprocessing")
}

// Tile repeats x's data in place by the op's multiples.
func (b *TiledBackend) Tile(x *tensor.RawTensor, op engine.Tile) (*tensor.RawTensor, error) {
	multiples, ok := engine.Shape(op.Multiples).Static()
	if !ok {
		return nil, errors.Errorf("tiled: symbolic multiples in executable plan: %s", op)
	}
	return tensor.Tile(x, multiples)
}

// Preprocess rewrites Broadcast ops into Reshape/Tile/Reshape runs.
func (b *TiledBackend) Preprocess(ops []engine.Op, inputShape engine.Shape) []engine.Op {
	return engine.TilePreprocess(ops, inputShape)
}

func staticShape(shape engine.Shape) (tensor.Shape, error) {
	sizes, ok := shape.Static()
	if !ok {
		return nil, errors.Errorf("symbolic dimension in executable plan: %s", shape)
	}
	return tensor.Shape(sizes), nil
}
