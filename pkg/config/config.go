// Package config loads render settings from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/joshvictor1024/mandelbrotset/pkg/colormap"
	"github.com/joshvictor1024/mandelbrotset/pkg/mandelbrot"
)

// Display modes.
const (
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"
	DisplayNone     = "none"
)

// File is the full set of settings for one render.
type File struct {
	RealRange       []float64 `toml:"real_range" yaml:"real_range"`
	ImagRange       []float64 `toml:"imag_range" yaml:"imag_range"`
	IterationLim    int       `toml:"iteration_lim" yaml:"iteration_lim"`
	CoordinateCount int       `toml:"coordinate_count" yaml:"coordinate_count"`
	Render          Render    `toml:"render" yaml:"render"`
}

// Render holds settings for the output side.
type Render struct {
	// Colormap names a scale from package colormap.
	Colormap string `toml:"colormap" yaml:"colormap"`
	// Scale is the pixel size of one grid cell in image output.
	Scale int `toml:"scale" yaml:"scale"`
	// Output is a PNG path; empty means no file is written.
	Output string `toml:"output" yaml:"output"`
	// Display is one of window, terminal or none.
	Display string `toml:"display" yaml:"display"`
	// Workers is the compute goroutine count; 0 means one per CPU.
	Workers int `toml:"workers" yaml:"workers"`
}

// Default returns the classic full view of the set.
func Default() File {
	return File{
		RealRange:       []float64{-2, 1},
		ImagRange:       []float64{-1.5, 1.5},
		IterationLim:    255,
		CoordinateCount: 800,
		Render: Render{
			Colormap: colormap.Default,
			Scale:    1,
			Display:  DisplayWindow,
		},
	}
}

// fileData mirrors File with pointers so keys missing from a file can be
// told apart from explicit zeros.
type fileData struct {
	RealRange       []float64   `toml:"real_range" yaml:"real_range"`
	ImagRange       []float64   `toml:"imag_range" yaml:"imag_range"`
	IterationLim    *int        `toml:"iteration_lim" yaml:"iteration_lim"`
	CoordinateCount *int        `toml:"coordinate_count" yaml:"coordinate_count"`
	Render          *renderData `toml:"render" yaml:"render"`
}

type renderData struct {
	Colormap *string `toml:"colormap" yaml:"colormap"`
	Scale    *int    `toml:"scale" yaml:"scale"`
	Output   *string `toml:"output" yaml:"output"`
	Display  *string `toml:"display" yaml:"display"`
	Workers  *int    `toml:"workers" yaml:"workers"`
}

// Load reads path on top of Default. The format follows the extension:
// .toml, .yaml or .yml.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes data, using the extension of name to pick the format.
func Parse(name string, data []byte) (File, error) {
	var fd fileData
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fd); err != nil {
			return File{}, tomlParseError(name, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// an empty document decodes to io.EOF
		if err := dec.Decode(&fd); err != nil && !errors.Is(err, io.EOF) {
			return File{}, &ParseError{Path: name, Message: err.Error(), Err: err}
		}
	default:
		return File{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	f := Default()
	fd.apply(&f)
	return f, nil
}

func tomlParseError(name string, err error) error {
	pe := &ParseError{Path: name, Message: err.Error(), Err: err}
	var de *toml.DecodeError
	if errors.As(err, &de) {
		pe.Line, pe.Column = de.Position()
	}
	return pe
}

func (fd *fileData) apply(f *File) {
	if fd.RealRange != nil {
		f.RealRange = fd.RealRange
	}
	if fd.ImagRange != nil {
		f.ImagRange = fd.ImagRange
	}
	if fd.IterationLim != nil {
		f.IterationLim = *fd.IterationLim
	}
	if fd.CoordinateCount != nil {
		f.CoordinateCount = *fd.CoordinateCount
	}
	if fd.Render == nil {
		return
	}
	r := fd.Render
	if r.Colormap != nil {
		f.Render.Colormap = *r.Colormap
	}
	if r.Scale != nil {
		f.Render.Scale = *r.Scale
	}
	if r.Output != nil {
		f.Render.Output = *r.Output
	}
	if r.Display != nil {
		f.Render.Display = *r.Display
	}
	if r.Workers != nil {
		f.Render.Workers = *r.Workers
	}
}

// Mandelbrot converts the compute settings. Values are not validated
// beyond the shape of the ranges; mandelbrot.Compute does that.
func (f File) Mandelbrot() (mandelbrot.Config, error) {
	re, err := toRange("real_range", f.RealRange)
	if err != nil {
		return mandelbrot.Config{}, err
	}
	im, err := toRange("imag_range", f.ImagRange)
	if err != nil {
		return mandelbrot.Config{}, err
	}
	return mandelbrot.Config{
		Real:            re,
		Imag:            im,
		IterationLim:    f.IterationLim,
		CoordinateCount: f.CoordinateCount,
	}, nil
}

// Validate checks the render settings.
func (r Render) Validate() error {
	switch r.Display {
	case DisplayWindow, DisplayTerminal, DisplayNone:
	default:
		return fmt.Errorf("invalid display %q (must be %s, %s, or %s)", r.Display, DisplayWindow, DisplayTerminal, DisplayNone)
	}
	if r.Scale < 1 {
		return fmt.Errorf("invalid scale %d (must be at least 1)", r.Scale)
	}
	if r.Workers < 0 {
		return fmt.Errorf("invalid workers %d (must not be negative)", r.Workers)
	}
	if _, err := colormap.Get(r.Colormap); err != nil {
		return err
	}
	return nil
}

func toRange(field string, v []float64) (mandelbrot.Range, error) {
	if len(v) != 2 {
		return mandelbrot.Range{}, fmt.Errorf("%s: %w, got %d", field, ErrInvalidRange, len(v))
	}
	return mandelbrot.Range{Min: v[0], Max: v[1]}, nil
}
