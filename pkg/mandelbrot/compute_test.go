package mandelbrot

import (
	"errors"
	"sync"
	"testing"
)

func TestCompute_Scenario(t *testing.T) {
	res, err := Compute(validConfig())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if res.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", res.Size())
	}
	for row, r := range res.Counts {
		if len(r) != 3 {
			t.Fatalf("row %d has %d cols, want 3", row, len(r))
		}
	}
	// (re=-2, im=-1.5)
	if got := res.Counts[0][0]; got > 2 {
		t.Errorf("corner count = %d, want <= 2", got)
	}
	// (re=-0.5, im=0)
	if got := res.Counts[1][1]; got != 50 {
		t.Errorf("center count = %d, want 50", got)
	}
	if res.IterationLim != 50 || res.Real != (Range{-2, 1}) || res.Imag != (Range{-1.5, 1.5}) {
		t.Errorf("result metadata = %v %v %d", res.Real, res.Imag, res.IterationLim)
	}
}

func TestCompute_Shape(t *testing.T) {
	for _, n := range []int{1, 2, 7, 64} {
		cfg := validConfig()
		cfg.CoordinateCount = n
		res, err := Compute(cfg, WithWorkers(3))
		if err != nil {
			t.Fatalf("Compute(n=%d) failed: %v", n, err)
		}
		if len(res.Counts) != n {
			t.Fatalf("n=%d: rows = %d", n, len(res.Counts))
		}
		for row := range res.Counts {
			if len(res.Counts[row]) != n {
				t.Fatalf("n=%d: row %d has %d cols", n, row, len(res.Counts[row]))
			}
			for _, v := range res.Counts[row] {
				if v > res.IterationLim {
					t.Fatalf("n=%d: count %d exceeds limit", n, v)
				}
			}
		}
	}
}

func TestCompute_SingleCoordinate(t *testing.T) {
	cfg := Config{
		Real:            Range{-0.5, 1},
		Imag:            Range{0, 1.5},
		IterationLim:    20,
		CoordinateCount: 1,
	}
	res, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if res.Size() != 1 || len(res.Counts[0]) != 1 {
		t.Fatalf("shape = %dx%d, want 1x1", res.Size(), len(res.Counts[0]))
	}
	if want := EscapeCount(complex(-0.5, 0), 20); res.Counts[0][0] != want {
		t.Errorf("count = %d, want %d", res.Counts[0][0], want)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	cfg := Config{
		Real:            Range{-2, 1},
		Imag:            Range{-1.5, 1.5},
		IterationLim:    100,
		CoordinateCount: 48,
	}
	a, err := Compute(cfg, WithWorkers(1))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	b, err := Compute(cfg, WithWorkers(8))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	c, err := Compute(cfg, WithWorkers(8))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	for row := range a.Counts {
		for col := range a.Counts[row] {
			if a.Counts[row][col] != b.Counts[row][col] || b.Counts[row][col] != c.Counts[row][col] {
				t.Fatalf("cell (%d, %d) differs: %d %d %d", row, col,
					a.Counts[row][col], b.Counts[row][col], c.Counts[row][col])
			}
		}
	}
}

func TestCompute_ConjugateSymmetry(t *testing.T) {
	// step sizes are exact in binary so mirrored rows sample exact conjugates
	cfg := Config{
		Real:            Range{-2, 0.5},
		Imag:            Range{-1, 1},
		IterationLim:    200,
		CoordinateCount: 17,
	}
	res, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	n := res.Size()
	for row := 0; row < n/2; row++ {
		for col := 0; col < n; col++ {
			if res.Counts[row][col] != res.Counts[n-1-row][col] {
				t.Errorf("row %d col %d = %d, mirrored row = %d",
					row, col, res.Counts[row][col], res.Counts[n-1-row][col])
			}
		}
	}
}

func TestCompute_InvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.CoordinateCount = 0
	res, err := Compute(cfg)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Compute() error = %v, want ErrInvalidConfig", err)
	}
	if res != nil {
		t.Error("Compute returned a result alongside an error")
	}
}

func TestCompute_Progress(t *testing.T) {
	cfg := validConfig()
	cfg.CoordinateCount = 25

	var mu sync.Mutex
	var calls []int
	_, err := Compute(cfg, WithWorkers(4), WithProgress(func(done, rows int) {
		mu.Lock()
		defer mu.Unlock()
		if rows != 25 {
			t.Errorf("rows = %d, want 25", rows)
		}
		calls = append(calls, done)
	}))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if len(calls) != 25 {
		t.Fatalf("progress called %d times, want 25", len(calls))
	}
	for i, done := range calls {
		if done != i+1 {
			t.Errorf("call %d reported %d rows done, want %d", i, done, i+1)
		}
	}
}

func TestCompute_WorkersBelowOne(t *testing.T) {
	res, err := Compute(validConfig(), WithWorkers(0))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if res.Size() != 3 {
		t.Errorf("Size() = %d, want 3", res.Size())
	}
}

func TestResult_Bounds(t *testing.T) {
	res := &Result{Counts: [][]uint{{3, 9}, {0, 5}}}
	lo, hi := res.Bounds()
	if lo != 0 || hi != 9 {
		t.Errorf("Bounds() = %d, %d, want 0, 9", lo, hi)
	}
}
