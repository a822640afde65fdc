// Package tensor provides the minimal dense tensor the shape-op
// execution targets operate on: a row-major float64 buffer with a
// shape. It exists to exercise compiled shape plans, not to be a
// compute library.
package tensor

import "fmt"

// RawTensor is a dense row-major tensor of float64 values.
type RawTensor struct {
	data  []float64
	shape Shape
}

// NewRaw creates a zero-filled tensor with the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &RawTensor{
		data:  make([]float64, shape.NumElements()),
		shape: shape.Clone(),
	}, nil
}

// FromSlice creates a tensor holding a copy of data, interpreted in
// row-major order under the given shape.
func FromSlice(data []float64, shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	t := &RawTensor{
		data:  make([]float64, len(data)),
		shape: shape.Clone(),
	}
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Data returns the tensor's backing slice in row-major order.
func (r *RawTensor) Data() []float64 {
	return r.data
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// Clone returns a deep copy of the tensor.
func (r *RawTensor) Clone() *RawTensor {
	clone := &RawTensor{
		data:  make([]float64, len(r.data)),
		shape: r.shape.Clone(),
	}
	copy(clone.data, r.data)
	return clone
}
