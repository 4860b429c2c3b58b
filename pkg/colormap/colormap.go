// Package colormap maps normalized escape counts to colors.
//
// Scales are defined by a short list of stops and interpolated in
// CIE-L*a*b* space, which keeps the perceived lightness of the ramps
// close to the matplotlib originals they are named after.
package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Default is the scale used when none is configured.
const Default = "BrBG"

// ErrUnknown is returned by Get for names that are not registered.
var ErrUnknown = errors.New("unknown colormap")

// reversedSuffix flips any scale, following the matplotlib convention.
const reversedSuffix = "_r"

var scales = map[string][]string{
	"BrBG": {
		"#543005", "#8c510a", "#bf812d", "#dfc27d", "#f6e8c3", "#f5f5f5",
		"#c7eae5", "#80cdc1", "#35978f", "#01665e", "#003c30",
	},
	"Greys": {
		"#ffffff", "#f0f0f0", "#d9d9d9", "#bdbdbd", "#969696",
		"#737373", "#525252", "#252525", "#000000",
	},
	"gray": {"#000000", "#ffffff"},
	"viridis": {
		"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
	},
	"magma": {
		"#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f",
		"#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf",
	},
}

// Colormap is an ordered set of color stops.
type Colormap struct {
	name  string
	stops []colorful.Color
}

// Get returns the named scale. Appending "_r" to a name reverses it.
func Get(name string) (*Colormap, error) {
	base, reversed := strings.CutSuffix(name, reversedSuffix)
	hexes, ok := scales[base]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
	}

	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("colormap %s: stop %d: %w", base, i, err)
		}
		stops[i] = c
	}
	if reversed {
		for i, j := 0, len(stops)-1; i < j; i, j = i+1, j-1 {
			stops[i], stops[j] = stops[j], stops[i]
		}
	}
	return &Colormap{name: name, stops: stops}, nil
}

// Names lists the registered scales without their reversed variants.
func Names() []string {
	names := make([]string, 0, len(scales))
	for name := range scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the name the colormap was requested by.
func (m *Colormap) Name() string {
	return m.name
}

// At returns the color at position t, clamped to [0, 1].
func (m *Colormap) At(t float64) color.RGBA {
	if math.IsNaN(t) || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	segments := len(m.stops) - 1
	if segments == 0 {
		return toRGBA(m.stops[0])
	}
	pos := t * float64(segments)
	i := int(pos)
	if i >= segments {
		return toRGBA(m.stops[segments])
	}
	return toRGBA(m.stops[i].BlendLab(m.stops[i+1], pos-float64(i)))
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Normalizer maps counts linearly onto [0, 1] between Min and Max.
type Normalizer struct {
	Min, Max uint
}

// Normalize returns where v sits between Min and Max. A constant grid
// (Min == Max) maps everything to 0.
func (n Normalizer) Normalize(v uint) float64 {
	if n.Max <= n.Min {
		return 0
	}
	if v <= n.Min {
		return 0
	}
	if v >= n.Max {
		return 1
	}
	return float64(v-n.Min) / float64(n.Max-n.Min)
}
