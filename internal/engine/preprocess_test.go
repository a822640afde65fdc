package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTilePreprocess(t *testing.T) {
	tests := []struct {
		name  string
		ops   []Op
		shape Shape
		want  []Op
	}{
		{
			name:  "non-broadcast ops pass through",
			ops:   []Op{Reshape{Shape: ShapeOf(3, 5)}, Transpose{Perm: []int{1, 0}}},
			shape: ShapeOf(15),
			want:  []Op{Reshape{Shape: ShapeOf(3, 5)}, Transpose{Perm: []int{1, 0}}},
		},
		{
			name:  "leading broadcast becomes tile",
			ops:   []Op{Broadcast{AxisSizes: map[int]Dim{0: Known(3)}}},
			shape: ShapeOf(5),
			want: []Op{
				Tile{Multiples: []Dim{Known(3)}},
				Reshape{Shape: ShapeOf(3, 5)},
			},
		},
		{
			name:  "trailing broadcast appends an axis to tile",
			ops:   []Op{Broadcast{AxisSizes: map[int]Dim{1: Known(2)}}},
			shape: ShapeOf(3),
			want: []Op{
				Reshape{Shape: ShapeOf(3, 1)},
				Tile{Multiples: []Dim{Known(1), Known(2)}},
				Reshape{Shape: ShapeOf(3, 2)},
			},
		},
		{
			name:  "two new axes on distinct insertion points",
			ops:   []Op{Broadcast{AxisSizes: map[int]Dim{0: Known(3), 2: Known(4)}}},
			shape: ShapeOf(2, 5),
			want: []Op{
				Tile{Multiples: []Dim{Known(3), Known(4)}},
				Reshape{Shape: ShapeOf(3, 2, 4, 5)},
			},
		},
		{
			name:  "two new axes collapsing onto the same insertion point",
			ops:   []Op{Broadcast{AxisSizes: map[int]Dim{0: Known(3), 1: Known(4)}}},
			shape: ShapeOf(5),
			want: []Op{
				Tile{Multiples: []Dim{Known(12)}},
				Reshape{Shape: ShapeOf(3, 4, 5)},
			},
		},
		{
			name:  "leading and trailing new axes",
			ops:   []Op{Broadcast{AxisSizes: map[int]Dim{0: Known(3), 2: Known(4)}}},
			shape: ShapeOf(5),
			want: []Op{
				Reshape{Shape: ShapeOf(5, 1)},
				Tile{Multiples: []Dim{Known(3), Known(4)}},
				Reshape{Shape: ShapeOf(3, 5, 4)},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TilePreprocess(tc.ops, tc.shape)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("TilePreprocess mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// The rewrite composes with the full pipeline: generate, preprocess,
// optimize.
func TestTilePreprocessPipeline(t *testing.T) {
	shape := ShapeOf(5)
	ops := mustGenerate(t, "j->nj", shape, Sizes{'n': Known(3)})
	ops = TilePreprocess(ops, shape)
	ops = Optimize(ops, shape)

	want := []Op{
		Tile{Multiples: []Dim{Known(3)}},
		Reshape{Shape: ShapeOf(3, 5)},
	}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("pipeline mismatch (-want +got):\n%s", diff)
	}
}
