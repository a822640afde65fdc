package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptimize(t *testing.T) {
	tests := []struct {
		name  string
		ops   []Op
		shape Shape
		want  []Op
	}{
		{
			name: "redundant reshape skipped",
			ops: []Op{
				Reshape{Shape: ShapeOf(2, 3)},
				Reshape{Shape: ShapeOf(6)},
			},
			shape: ShapeOf(3, 2),
			want:  []Op{Reshape{Shape: ShapeOf(6)}},
		},
		{
			name: "nonredundant reshape retained",
			ops: []Op{
				Reshape{Shape: ShapeOf(2, 3)},
				Transpose{Perm: []int{1, 0}},
				Reshape{Shape: ShapeOf(6)},
			},
			shape: ShapeOf(3, 2),
			want: []Op{
				Reshape{Shape: ShapeOf(2, 3)},
				Transpose{Perm: []int{1, 0}},
				Reshape{Shape: ShapeOf(6)},
			},
		},
		{
			name:  "noop reshape skipped",
			ops:   []Op{Reshape{Shape: ShapeOf(3, 5)}},
			shape: ShapeOf(3, 5),
			want:  []Op{},
		},
		{
			name:  "effective reshape retained",
			ops:   []Op{Reshape{Shape: ShapeOf(5, 3)}},
			shape: ShapeOf(3, 5),
			want:  []Op{Reshape{Shape: ShapeOf(5, 3)}},
		},
		{
			name: "noop reshape after transpose skipped",
			ops: []Op{
				Transpose{Perm: []int{1, 0}},
				Reshape{Shape: ShapeOf(5, 3)},
			},
			shape: ShapeOf(3, 5),
			want:  []Op{Transpose{Perm: []int{1, 0}}},
		},
		{
			name: "noop reshape after broadcast skipped",
			ops: []Op{
				Broadcast{AxisSizes: map[int]Dim{1: Known(3)}},
				Reshape{Shape: ShapeOf(5, 3)},
			},
			shape: ShapeOf(5),
			want:  []Op{Broadcast{AxisSizes: map[int]Dim{1: Known(3)}}},
		},
		{
			name:  "nonstatic reshape retained",
			ops:   []Op{Reshape{Shape: Shape{Known(5), expr{}}}},
			shape: Shape{Known(5), expr{}},
			want:  []Op{Reshape{Shape: Shape{Known(5), expr{}}}},
		},
		{
			name:  "transpose to same shape retained",
			ops:   []Op{Transpose{Perm: []int{1, 0}}},
			shape: ShapeOf(3, 3),
			want:  []Op{Transpose{Perm: []int{1, 0}}},
		},
		{
			name:  "identity transpose retained",
			ops:   []Op{Transpose{Perm: []int{0, 1}}},
			shape: ShapeOf(3, 5),
			want:  []Op{Transpose{Perm: []int{0, 1}}},
		},
		{
			name: "noop reshape after tile skipped",
			ops: []Op{
				Tile{Multiples: []Dim{Known(3)}},
				Reshape{Shape: ShapeOf(15)},
			},
			shape: ShapeOf(5),
			want:  []Op{Tile{Multiples: []Dim{Known(3)}}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Optimize(tc.ops, tc.shape)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Optimize mismatch (-want +got):\n%s", diff)
			}

			// Optimize is idempotent.
			again := Optimize(got, tc.shape)
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("Optimize not idempotent (-once +twice):\n%s", diff)
			}
		})
	}
}

// Identity equations compile to the empty plan once optimized.
func TestOptimizeIdentityLaw(t *testing.T) {
	tests := []struct {
		equation string
		shape    Shape
	}{
		{"->", Shape{}},
		{"i->i", ShapeOf(3)},
		{"ijkl->ijkl", ShapeOf(2, 3, 5, 7)},
	}
	for _, tc := range tests {
		t.Run(tc.equation, func(t *testing.T) {
			ops := mustGenerate(t, tc.equation, tc.shape, nil)
			if got := Optimize(ops, tc.shape); len(got) != 0 {
				t.Errorf("Optimize(GenerateOps(%q)) = %v, want empty", tc.equation, got)
			}
		})
	}
}
