// Package cpu implements the native CPU execution target for compiled
// shape plans, with a direct axis-insert broadcast.
package cpu

import (
	"fmt"

	"github.com/google-deepmind/einshape/internal/engine"
	"github.com/google-deepmind/einshape/internal/tensor"
)

// CPUBackend executes shape ops against dense in-memory tensors.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Reshape reinterprets x under the op's target shape.
func (cpu *CPUBackend) Reshape(x *tensor.RawTensor, op engine.Reshape) (*tensor.RawTensor, error) {
	shape, err := staticShape(op.Shape)
	if err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	return tensor.Reshape(x, shape)
}

// Transpose reorders the axes of x per the op's permutation.
func (cpu *CPUBackend) Transpose(x *tensor.RawTensor, op engine.Transpose) (*tensor.RawTensor, error) {
	return tensor.Transpose(x, op.Perm)
}

// Broadcast inserts the op's new axes, replicating x's data to fill
// them: a size-1 axis is inserted at each target position and then
// expanded to the requested size.
func (cpu *CPUBackend) Broadcast(x *tensor.RawTensor, op engine.Broadcast) (*tensor.RawTensor, error) {
	input := dims(x.Shape())
	desired, err := staticShape(op.TransformShape(input))
	if err != nil {
		return nil, fmt.Errorf("broadcast: %w", err)
	}

	unsqueezed := desired.Clone()
	for axis := range op.AxisSizes {
		unsqueezed[axis] = 1
	}
	y, err := tensor.Reshape(x, unsqueezed)
	if err != nil {
		return nil, fmt.Errorf("broadcast: %w", err)
	}
	return tensor.Expand(y, desired)
}

func dims(shape tensor.Shape) engine.Shape {
	return engine.ShapeOf(shape...)
}

func staticShape(shape engine.Shape) (tensor.Shape, error) {
	sizes, ok := shape.Static()
	if !ok {
		return nil, fmt.Errorf("symbolic dimension in executable plan: %s", shape)
	}
	return tensor.Shape(sizes), nil
}
