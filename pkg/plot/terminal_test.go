package plot

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func cellAt(s tcell.Screen, x, y int) (rune, tcell.Color) {
	r, _, style, _ := s.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	_, bg, _ := style.Decompose()
	return r, bg
}

func TestTerminal_Draw(t *testing.T) {
	s := simScreen(t, 40, 20)
	cm := mustColormap(t, "BrBG")
	NewTerminal(s, constantResult(8), cm).Draw()

	c := cm.At(0)
	want := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	for _, p := range [][2]int{{2, 1}, {20, 10}, {39, 18}} {
		if _, bg := cellAt(s, p[0], p[1]); bg != want {
			t.Errorf("cell %v background = %v, want %v", p, bg, want)
		}
	}

	var bottom []rune
	for x := 0; x < 40; x++ {
		r, _ := cellAt(s, x, 19)
		bottom = append(bottom, r)
	}
	if got := string(bottom); !containsAll(got, "-0.1", RealLabel, "0.1") {
		t.Errorf("bottom row = %q, want real bounds and title", got)
	}

	var left []rune
	for y := 18; y >= 1; y-- {
		r, _ := cellAt(s, 0, y)
		if r != ' ' && r != 0 {
			left = append(left, r)
		}
	}
	if string(left) != ImaginaryLabel {
		t.Errorf("left column reads %q, want %q", string(left), ImaginaryLabel)
	}
}

func TestTerminal_RunQuits(t *testing.T) {
	s := simScreen(t, 30, 12)
	term := NewTerminal(s, smallResult(), mustColormap(t, "gray"))

	done := make(chan struct{})
	go func() {
		term.Run()
		close(done)
	}()

	if err := s.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
