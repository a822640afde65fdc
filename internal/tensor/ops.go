package tensor

import "fmt"

// Reshape reinterprets the tensor's elements under a new shape without
// reordering them.
func Reshape(x *RawTensor, newShape Shape) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Reshape: input tensor is nil")
	}
	if err := newShape.Validate(); err != nil {
		return nil, fmt.Errorf("Reshape: %w", err)
	}
	if newShape.NumElements() != x.NumElements() {
		return nil, fmt.Errorf("Reshape: cannot reshape %d elements to shape %v (%d elements)",
			x.NumElements(), newShape, newShape.NumElements())
	}

	result := x.Clone()
	result.shape = newShape.Clone()
	return result, nil
}

// Transpose reorders the tensor's axes. perm[i] is the source axis
// feeding output axis i, and every axis must appear exactly once.
func Transpose(x *RawTensor, perm []int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Transpose: input tensor is nil")
	}
	ndim := len(x.shape)
	if len(perm) != ndim {
		return nil, fmt.Errorf("Transpose: perm length %d must match tensor dimensions %d", len(perm), ndim)
	}

	seen := make([]bool, ndim)
	newShape := make(Shape, ndim)
	for i, ax := range perm {
		if ax < 0 || ax >= ndim {
			return nil, fmt.Errorf("Transpose: axis %d out of range [0, %d)", ax, ndim)
		}
		if seen[ax] {
			return nil, fmt.Errorf("Transpose: axis %d appears more than once in perm %v", ax, perm)
		}
		seen[ax] = true
		newShape[i] = x.shape[ax]
	}

	result, err := NewRaw(newShape)
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}

	oldStrides := x.shape.ComputeStrides()
	newStrides := newShape.ComputeStrides()
	total := newShape.NumElements()
	idx := make([]int, ndim)
	for i := 0; i < total; i++ {
		tmp := i
		for j := ndim - 1; j >= 0; j-- {
			idx[j] = tmp % newShape[j]
			tmp /= newShape[j]
		}
		oldFlat := 0
		for j := 0; j < ndim; j++ {
			oldFlat += idx[j] * oldStrides[perm[j]]
		}
		newFlat := 0
		for j := 0; j < ndim; j++ {
			newFlat += idx[j] * newStrides[j]
		}
		result.data[newFlat] = x.data[oldFlat]
	}
	return result, nil
}

// Expand broadcasts the tensor to targetShape, right-aligned: missing
// leading axes are treated as size 1, and each axis must either match
// the target or be size 1.
func Expand(x *RawTensor, targetShape Shape) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Expand: input tensor is nil")
	}
	if len(targetShape) < len(x.shape) {
		return nil, fmt.Errorf("Expand: target shape %v has fewer dimensions than input shape %v",
			targetShape, x.shape)
	}

	diff := len(targetShape) - len(x.shape)
	padded := make(Shape, len(targetShape))
	for i := 0; i < diff; i++ {
		padded[i] = 1
	}
	copy(padded[diff:], x.shape)

	for i := range targetShape {
		if padded[i] != 1 && padded[i] != targetShape[i] {
			return nil, fmt.Errorf("Expand: cannot expand dimension %d from %d to %d",
				i, padded[i], targetShape[i])
		}
	}

	result, err := NewRaw(targetShape)
	if err != nil {
		return nil, fmt.Errorf("Expand: %w", err)
	}

	srcStrides := padded.ComputeStrides()
	outStrides := targetShape.ComputeStrides()
	total := targetShape.NumElements()
	for outIdx := 0; outIdx < total; outIdx++ {
		inIdx := 0
		remaining := outIdx
		for i := range targetShape {
			coord := remaining / outStrides[i]
			remaining %= outStrides[i]
			if padded[i] != 1 {
				inIdx += coord * srcStrides[i]
			}
		}
		result.data[outIdx] = x.data[inIdx]
	}
	return result, nil
}

// Tile repeats the tensor's data along each axis by the corresponding
// multiple: output axis i has size shape[i]*multiples[i], and element
// [c0, c1, ...] maps to input element [c0 % shape[0], c1 % shape[1], ...].
func Tile(x *RawTensor, multiples []int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Tile: input tensor is nil")
	}
	if len(multiples) != len(x.shape) {
		return nil, fmt.Errorf("Tile: multiples length %d must match tensor dimensions %d",
			len(multiples), len(x.shape))
	}

	newShape := make(Shape, len(x.shape))
	for i, mult := range multiples {
		if mult < 1 {
			return nil, fmt.Errorf("Tile: multiple at axis %d is %d (must be >= 1)", i, mult)
		}
		newShape[i] = x.shape[i] * mult
	}

	result, err := NewRaw(newShape)
	if err != nil {
		return nil, fmt.Errorf("Tile: %w", err)
	}

	srcStrides := x.shape.ComputeStrides()
	outStrides := newShape.ComputeStrides()
	total := newShape.NumElements()
	for outIdx := 0; outIdx < total; outIdx++ {
		inIdx := 0
		remaining := outIdx
		for i := range newShape {
			coord := remaining / outStrides[i]
			remaining %= outStrides[i]
			inIdx += (coord % x.shape[i]) * srcStrides[i]
		}
		result.data[outIdx] = x.data[inIdx]
	}
	return result, nil
}
