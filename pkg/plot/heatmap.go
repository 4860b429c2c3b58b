// Package plot turns escape-count grids into pictures: raster images,
// labelled figures written as PNG, and a terminal view.
package plot

import (
	"fmt"
	"image"

	"github.com/joshvictor1024/mandelbrotset/pkg/colormap"
	"github.com/joshvictor1024/mandelbrotset/pkg/mandelbrot"
)

// Heatmap paints each grid cell as a scale x scale block. Row 0 of the
// grid (the lowest imaginary sample) is drawn at the bottom so the image
// reads like the complex plane. Colors are normalized between the
// smallest and largest count in the grid.
func Heatmap(res *mandelbrot.Result, cm *colormap.Colormap, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	n := res.Size()
	img := image.NewRGBA(image.Rect(0, 0, n*scale, n*scale))

	lo, hi := res.Bounds()
	norm := colormap.Normalizer{Min: lo, Max: hi}

	for row := 0; row < n; row += 1 {
		y0 := (n - 1 - row) * scale
		for col := 0; col < n; col += 1 {
			c := cm.At(norm.Normalize(res.Counts[row][col]))
			x0 := col * scale
			for yi := 0; yi < scale; yi += 1 {
				for xi := 0; xi < scale; xi += 1 {
					img.SetRGBA(x0+xi, y0+yi, c)
				}
			}
		}
	}
	return img
}

// Title describes the plotted region in one line.
func Title(res *mandelbrot.Result) string {
	return fmt.Sprintf("Mandelbrot  Real %v  Imaginary %v  limit %d",
		res.Real, res.Imag, res.IterationLim)
}
