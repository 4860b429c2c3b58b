package plot

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/joshvictor1024/mandelbrotset/pkg/colormap"
	"github.com/joshvictor1024/mandelbrotset/pkg/mandelbrot"
)

const (
	RealLabel      = "Real"
	ImaginaryLabel = "Imaginary"

	pad = 4
)

var (
	face = basicfont.Face7x13
	ink  = color.RGBA{0, 0, 0, 255}
	page = color.RGBA{255, 255, 255, 255}
)

// FigureOptions controls Figure.
type FigureOptions struct {
	// Scale is the pixel size of one grid cell.
	Scale int
}

// Figure draws the heatmap inside a frame on a white page, with the axis
// titles and the range bounds as tick labels on the real (horizontal)
// and imaginary (vertical) axes.
func Figure(res *mandelbrot.Result, cm *colormap.Colormap, opts FigureOptions) *image.RGBA {
	heat := Heatmap(res, cm, opts.Scale)
	side := heat.Bounds().Dx()

	lineH := face.Metrics().Height.Ceil()
	realMin, realMax := formatBound(res.Real.Min), formatBound(res.Real.Max)
	imagMin, imagMax := formatBound(res.Imag.Min), formatBound(res.Imag.Max)
	tickW := max(textWidth(imagMin), textWidth(imagMax))

	left := pad + lineH + pad + tickW + pad
	bottom := pad + lineH + pad + lineH + pad
	top := pad + lineH/2
	right := max(pad+lineH/2, textWidth(realMax)/2+pad)

	// the page must be tall enough for the rotated title and wide enough
	// for the two real tick labels plus the title
	plotH := max(side, textWidth(ImaginaryLabel))
	plotW := max(side, textWidth(realMin)+textWidth(RealLabel)+textWidth(realMax)+2*pad)
	img := image.NewRGBA(image.Rect(0, 0, left+plotW+right, top+plotH+bottom))
	draw.Draw(img, img.Bounds(), image.NewUniform(page), image.Point{}, draw.Src)

	// heatmap sits in the bottom-left corner of the plot box
	origin := image.Pt(left, top+plotH-side)
	draw.Draw(img, heat.Bounds().Add(origin), heat, image.Point{}, draw.Src)
	frame(img, image.Rect(origin.X-1, origin.Y-1, origin.X+side+1, origin.Y+side+1))

	axisY := origin.Y + side + 1 + pad
	drawText(img, realMin, origin.X, axisY)
	drawText(img, realMax, origin.X+side-textWidth(realMax), axisY)
	drawText(img, RealLabel, origin.X+(side-textWidth(RealLabel))/2, axisY+lineH+pad)

	tickX := origin.X - 1 - pad
	drawText(img, imagMax, tickX-textWidth(imagMax), origin.Y)
	drawText(img, imagMin, tickX-textWidth(imagMin), origin.Y+side-lineH)
	drawTextUp(img, ImaginaryLabel, pad, origin.Y+(side+textWidth(ImaginaryLabel))/2)

	return img
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func textWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// drawText writes s with its top-left corner at (x, y).
func drawText(dst draw.Image, s string, x, y int) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// drawTextUp writes s rotated a quarter turn counter-clockwise, reading
// bottom to top, with the start of the text at (x, y).
func drawTextUp(dst *image.RGBA, s string, x, y int) {
	w, h := textWidth(s), face.Metrics().Height.Ceil()
	tmp := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  tmp,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	for ty := 0; ty < h; ty += 1 {
		for tx := 0; tx < w; tx += 1 {
			if tmp.AlphaAt(tx, ty).A == 0 {
				continue
			}
			dst.SetRGBA(x+ty, y-tx, ink)
		}
	}
}

func frame(img *image.RGBA, r image.Rectangle) {
	for x := r.Min.X; x < r.Max.X; x += 1 {
		img.SetRGBA(x, r.Min.Y, ink)
		img.SetRGBA(x, r.Max.Y-1, ink)
	}
	for y := r.Min.Y; y < r.Max.Y; y += 1 {
		img.SetRGBA(r.Min.X, y, ink)
		img.SetRGBA(r.Max.X-1, y, ink)
	}
}
