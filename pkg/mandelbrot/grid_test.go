package mandelbrot

import (
	"testing"
)

func TestLinspace(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		n    int
		want []float64
	}{
		{"single sample at min", Range{-2, 1}, 1, []float64{-2}},
		{"endpoints", Range{-2, 1}, 2, []float64{-2, 1}},
		{"three", Range{-2, 1}, 3, []float64{-2, -0.5, 1}},
		{"five", Range{-1, 1}, 5, []float64{-1, -0.5, 0, 0.5, 1}},
		{"degenerate range", Range{0.25, 0.25}, 3, []float64{0.25, 0.25, 0.25}},
		{"empty", Range{0, 1}, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Linspace(tt.r, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLinspace_LastSampleExact(t *testing.T) {
	r := Range{-0.7435, -0.7420}
	got := Linspace(r, 997)
	if got[0] != r.Min || got[len(got)-1] != r.Max {
		t.Errorf("ends = %v, %v, want %v, %v", got[0], got[len(got)-1], r.Min, r.Max)
	}
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("sample %d = %v is below sample %d = %v", i, got[i], i-1, got[i-1])
		}
	}
}

func TestCoordinates(t *testing.T) {
	grid := Coordinates(Range{-2, 1}, Range{-1.5, 1.5}, 3)
	if len(grid) != 3 {
		t.Fatalf("rows = %d, want 3", len(grid))
	}
	re := []float64{-2, -0.5, 1}
	im := []float64{-1.5, 0, 1.5}
	for row := range grid {
		if len(grid[row]) != 3 {
			t.Fatalf("row %d has %d cols, want 3", row, len(grid[row]))
		}
		for col, c := range grid[row] {
			want := complex(re[col], im[row])
			if c != want {
				t.Errorf("grid[%d][%d] = %v, want %v", row, col, c, want)
			}
		}
	}
}

func TestCoordinates_Single(t *testing.T) {
	grid := Coordinates(Range{0.5, 3}, Range{-4, 4}, 1)
	if len(grid) != 1 || len(grid[0]) != 1 {
		t.Fatalf("shape = %dx%d, want 1x1", len(grid), len(grid[0]))
	}
	if grid[0][0] != complex(0.5, -4) {
		t.Errorf("grid[0][0] = %v, want (0.5-4i)", grid[0][0])
	}
}
