// Package mandelbrot computes escape-time grids of the Mandelbrot set.
package mandelbrot

import (
	"fmt"
	"math"
)

// Range bounds one axis of the complex plane.
type Range struct {
	Min, Max float64
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

func (r Range) validate(field string) error {
	if math.IsNaN(r.Min) || math.IsInf(r.Min, 0) || math.IsNaN(r.Max) || math.IsInf(r.Max, 0) {
		return &ConfigError{Field: field, Message: fmt.Sprintf("bounds must be finite, got %v", r)}
	}
	if r.Min > r.Max {
		return &ConfigError{Field: field, Message: fmt.Sprintf("min %g is greater than max %g", r.Min, r.Max)}
	}
	return nil
}

// Config selects the part of the plane to sample and how hard to iterate.
// It is a plain value; Compute never modifies it.
type Config struct {
	Real Range
	Imag Range
	// IterationLim caps the escape count. Points that have not escaped
	// after IterationLim updates report exactly IterationLim.
	IterationLim int
	// CoordinateCount is the number of samples on each axis; the grid is
	// CoordinateCount x CoordinateCount.
	CoordinateCount int
}

// Validate reports the first problem with c, or nil.
func (c Config) Validate() error {
	if c.CoordinateCount < 1 {
		return &ConfigError{Field: "coordinate_count", Message: fmt.Sprintf("must be at least 1, got %d", c.CoordinateCount)}
	}
	if c.IterationLim < 1 {
		return &ConfigError{Field: "iteration_lim", Message: fmt.Sprintf("must be at least 1, got %d", c.IterationLim)}
	}
	if err := c.Real.validate("real_range"); err != nil {
		return err
	}
	return c.Imag.validate("imag_range")
}
