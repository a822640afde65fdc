package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRaw(t *testing.T) {
	x, err := NewRaw(Shape{2, 3})
	require.NoError(t, err)
	assert.True(t, x.Shape().Equal(Shape{2, 3}))
	assert.Len(t, x.Data(), 6)
	assert.Equal(t, 6, x.NumElements())
}

func TestNewRawRejectsNegativeDim(t *testing.T) {
	_, err := NewRaw(Shape{2, -1})
	require.Error(t, err)
}

func TestFromSlice(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, x.Data())

	_, err = FromSlice([]float64{1, 2, 3}, Shape{2, 3})
	require.Error(t, err)
}

func TestCloneIsDeep(t *testing.T) {
	x, err := FromSlice([]float64{1, 2}, Shape{2})
	require.NoError(t, err)

	clone := x.Clone()
	clone.Data()[0] = 99
	assert.Equal(t, float64(1), x.Data()[0])
}

func TestShapeHelpers(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, 24, s.NumElements())
	assert.Equal(t, []int{12, 4, 1}, s.ComputeStrides())
	assert.True(t, s.Equal(Shape{2, 3, 4}))
	assert.False(t, s.Equal(Shape{2, 3}))
	assert.Equal(t, 1, Shape{}.NumElements())

	clone := s.Clone()
	clone[0] = 9
	assert.Equal(t, 2, s[0])
}
