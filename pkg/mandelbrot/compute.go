package mandelbrot

import (
	"runtime"
	"sync"

	"github.com/joshvictor1024/mandelbrotset/pkg/types"
)

// ProgressFunc is told how many rows are finished out of the total.
// Calls are serialized and rowsDone only grows.
type ProgressFunc func(rowsDone, rows int)

// Result is the escape-count grid for one Config.
type Result struct {
	// Counts is [row][col]; row i holds imaginary sample i, col j holds
	// real sample j. Every value is in [0, IterationLim].
	Counts       [][]uint
	Real         Range
	Imag         Range
	IterationLim uint
}

// Size returns the number of samples per axis.
func (r *Result) Size() int {
	return len(r.Counts)
}

// Bounds returns the smallest and largest count in the grid.
func (r *Result) Bounds() (lo, hi uint) {
	first := true
	for _, row := range r.Counts {
		for _, v := range row {
			if first || v < lo {
				lo = v
			}
			if first || v > hi {
				hi = v
			}
			first = false
		}
	}
	return lo, hi
}

type options struct {
	workers  int
	progress ProgressFunc
}

// Option tunes Compute.
type Option func(*options)

// WithWorkers sets the number of goroutines evaluating rows.
// Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithProgress registers fn to be called as rows complete.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// Compute evaluates the escape count of every sample point described by
// cfg. Rows are handed out to a pool of workers; each cell depends only on
// its own coordinate, so the result does not depend on the worker count.
func Compute(cfg Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = 1
	}

	n := cfg.CoordinateCount
	lim := uint(cfg.IterationLim)
	coords := Coordinates(cfg.Real, cfg.Imag, n)
	counts := make([][]uint, n)

	rq := types.NewControlledQueue[int]()
	for row := 0; row < n; row += 1 {
		rq.Send(row)
	}
	rq.Close()

	workers := min(o.workers, n)
	var progressMu sync.Mutex
	rowsDone := 0

	wg := new(sync.WaitGroup)
	wg.Add(workers)
	for i := 0; i < workers; i += 1 {
		go func() {
			defer wg.Done()
			for {
				row, ok := rq.Recv()
				if !ok {
					return
				}
				counts[row] = iterateRow(coords[row], lim)

				if o.progress != nil {
					progressMu.Lock()
					rowsDone += 1
					o.progress(rowsDone, n)
					progressMu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	return &Result{
		Counts:       counts,
		Real:         cfg.Real,
		Imag:         cfg.Imag,
		IterationLim: lim,
	}, nil
}

func iterateRow(coords []complex128, lim uint) []uint {
	data := make([]uint, len(coords))
	for xi, c := range coords {
		data[xi] = EscapeCount(c, lim)
	}
	return data
}
