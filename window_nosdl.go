//go:build nosdl

package main

import (
	"errors"

	"github.com/joshvictor1024/mandelbrotset/pkg/colormap"
	"github.com/joshvictor1024/mandelbrotset/pkg/mandelbrot"
)

var errNoWindow = errors.New("window display unavailable: built with the nosdl tag")

func showWindow(res *mandelbrot.Result, cm *colormap.Colormap, scale int) error {
	return errNoWindow
}
