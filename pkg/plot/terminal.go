package plot

import (
	"github.com/gdamore/tcell/v2"

	"github.com/joshvictor1024/mandelbrotset/pkg/colormap"
	"github.com/joshvictor1024/mandelbrotset/pkg/mandelbrot"
)

// Terminal shows a result on a tcell screen, one colored cell per sample
// (or per group of samples when the grid is bigger than the screen).
type Terminal struct {
	screen tcell.Screen
	res    *mandelbrot.Result
	cm     *colormap.Colormap
}

// NewTerminal wraps an initialized screen.
func NewTerminal(screen tcell.Screen, res *mandelbrot.Result, cm *colormap.Colormap) *Terminal {
	return &Terminal{screen: screen, res: res, cm: cm}
}

// Run draws and then blocks until Escape, q or Ctrl-C is pressed,
// redrawing on resize.
func (t *Terminal) Run() {
	t.Draw()
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return
		case *tcell.EventResize:
			t.screen.Sync()
			t.Draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return
			}
		}
	}
}

// Draw paints the whole screen: title on the top row, the plot, the real
// axis on the bottom row and the imaginary axis title down the left column.
func (t *Terminal) Draw() {
	s := t.screen
	s.Clear()
	w, h := s.Size()
	text := tcell.StyleDefault

	putString(s, 0, 0, Title(t.res), text)

	x0, y0 := 2, 1
	pw, ph := w-x0, h-y0-1
	if pw > 0 && ph > 0 {
		t.drawPlot(x0, y0, pw, ph)
	}

	realMin, realMax := formatBound(t.res.Real.Min), formatBound(t.res.Real.Max)
	putString(s, x0, h-1, realMin, text)
	putString(s, x0+(pw-len(RealLabel))/2, h-1, RealLabel, text)
	putString(s, w-len(realMax), h-1, realMax, text)

	top := y0 + (ph-len(ImaginaryLabel))/2
	if top < y0 {
		top = y0
	}
	for i, r := range ImaginaryLabel {
		s.SetContent(0, top+len(ImaginaryLabel)-1-i, r, nil, text)
	}

	s.Show()
}

func (t *Terminal) drawPlot(x0, y0, pw, ph int) {
	n := t.res.Size()
	lo, hi := t.res.Bounds()
	norm := colormap.Normalizer{Min: lo, Max: hi}

	for yi := 0; yi < ph; yi += 1 {
		row := n - 1 - yi*n/ph
		for xi := 0; xi < pw; xi += 1 {
			col := xi * n / pw
			c := t.cm.At(norm.Normalize(t.res.Counts[row][col]))
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			t.screen.SetContent(x0+xi, y0+yi, ' ', nil, style)
		}
	}
}

func putString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}
