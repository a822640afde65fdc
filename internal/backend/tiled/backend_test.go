package tiled

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google-deepmind/einshape/internal/backend/cpu"
	"github.com/google-deepmind/einshape/internal/engine"
	"github.com/google-deepmind/einshape/internal/tensor"
)

func TestExec(t *testing.T) {
	tests := []struct {
		name      string
		equation  string
		data      []float64
		shape     tensor.Shape
		sizes     engine.Sizes
		wantShape tensor.Shape
		wantData  []float64
	}{
		{
			name:      "reshape and transpose only",
			equation:  "i(jk)->k(ji)",
			data:      []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
			shape:     tensor.Shape{2, 6},
			sizes:     engine.Sizes{'j': engine.Known(2)},
			wantShape: tensor.Shape{3, 4},
			wantData:  []float64{0, 6, 3, 9, 1, 7, 4, 10, 2, 8, 5, 11},
		},
		{
			name:      "broadcast leading dim",
			equation:  "j->nj",
			data:      []float64{3, 5},
			shape:     tensor.Shape{2},
			sizes:     engine.Sizes{'n': engine.Known(3)},
			wantShape: tensor.Shape{3, 2},
			wantData:  []float64{3, 5, 3, 5, 3, 5},
		},
		{
			name:      "broadcast trailing dim",
			equation:  "j->jk",
			data:      []float64{3, 5},
			shape:     tensor.Shape{2},
			sizes:     engine.Sizes{'k': engine.Known(3)},
			wantShape: tensor.Shape{2, 3},
			wantData:  []float64{3, 3, 3, 5, 5, 5},
		},
		{
			name:      "broadcast multiple dims",
			equation:  "j->njm",
			data:      []float64{3, 5},
			shape:     tensor.Shape{2},
			sizes:     engine.Sizes{'n': engine.Known(3), 'm': engine.Known(4)},
			wantShape: tensor.Shape{3, 2, 4},
			wantData: []float64{
				3, 3, 3, 3, 5, 5, 5, 5,
				3, 3, 3, 3, 5, 5, 5, 5,
				3, 3, 3, 3, 5, 5, 5, 5,
			},
		},
		{
			name:      "broadcast into group",
			equation:  "j->(nj)",
			data:      []float64{3, 5},
			shape:     tensor.Shape{2},
			sizes:     engine.Sizes{'n': engine.Known(3)},
			wantShape: tensor.Shape{6},
			wantData:  []float64{3, 5, 3, 5, 3, 5},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, err := tensor.FromSlice(tc.data, tc.shape)
			require.NoError(t, err)
			y, err := engine.Exec[*tensor.RawTensor](New(), tc.equation, x, engine.ShapeOf(tc.shape...), tc.sizes)
			require.NoError(t, err)
			assert.True(t, y.Shape().Equal(tc.wantShape), "shape = %v, want %v", y.Shape(), tc.wantShape)
			assert.Equal(t, tc.wantData, y.Data())
		})
	}
}

// The tiled backend must agree with the cpu backend on every plan,
// including the ones its preprocess hook rewrites.
func TestExecMatchesCPUBackend(t *testing.T) {
	tests := []struct {
		equation string
		data     []float64
		shape    tensor.Shape
		sizes    engine.Sizes
	}{
		{"i->i1", []float64{3, 5}, tensor.Shape{2}, nil},
		{"ij->ji", []float64{7, 2, 4, 1, -3, 5}, tensor.Shape{2, 3}, nil},
		{"j->nj", []float64{3, 5}, tensor.Shape{2}, engine.Sizes{'n': engine.Known(3)}},
		{"j->jk", []float64{3, 5}, tensor.Shape{2}, engine.Sizes{'k': engine.Known(3)}},
		{"j->njm", []float64{3, 5}, tensor.Shape{2}, engine.Sizes{'n': engine.Known(3), 'm': engine.Known(4)}},
		{"ij->i(nj)", []float64{1, 2, 3, 4}, tensor.Shape{2, 2}, engine.Sizes{'n': engine.Known(2)}},
	}
	for _, tc := range tests {
		t.Run(tc.equation, func(t *testing.T) {
			x, err := tensor.FromSlice(tc.data, tc.shape)
			require.NoError(t, err)

			fromTiled, err := engine.Exec[*tensor.RawTensor](New(), tc.equation, x, engine.ShapeOf(tc.shape...), tc.sizes)
			require.NoError(t, err)
			fromCPU, err := engine.Exec[*tensor.RawTensor](cpu.New(), tc.equation, x, engine.ShapeOf(tc.shape...), tc.sizes)
			require.NoError(t, err)

			assert.True(t, fromTiled.Shape().Equal(fromCPU.Shape()))
			assert.Equal(t, fromCPU.Data(), fromTiled.Data())
		})
	}
}

func TestBroadcastIsUnreachable(t *testing.T) {
	x, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	require.NoError(t, err)
	_, err = New().Broadcast(x, engine.Broadcast{AxisSizes: map[int]engine.Dim{0: engine.Known(3)}})
	require.Error(t, err)
}
