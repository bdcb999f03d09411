package theme

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Palette is a theme turned into lipgloss colors, plus the shades the table
// derives from it.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Border      lipgloss.Color
	Header      lipgloss.Color
	Warning     lipgloss.Color
	Error       lipgloss.Color

	// Dimmed is the text color of a dragged row or column.
	Dimmed lipgloss.Color
	// DropBg marks the cell under the pointer during a drag.
	DropBg lipgloss.Color

	TextOnAccent    lipgloss.Color
	TextOnSelection lipgloss.Color
	TextOnWarning   lipgloss.Color

	Modal DialogColors
}

// DialogColors are the colors of a confirmation dialog.
type DialogColors struct {
	Bg        lipgloss.Color
	Border    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Highlight lipgloss.Color
}

// NewPalette derives a Palette from t. A nil theme uses the default one.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}
	t = t.resolved()

	// Light backgrounds need less mixing for the same visual weight.
	dim, drop := 0.55, 0.75
	if luminance(t.Bg) > 0.55 {
		dim, drop = 0.45, 0.85
	}

	c := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }
	return &Palette{
		Bg:          c(t.Bg),
		BgHighlight: c(t.BgHighlight),
		BgSelection: c(t.BgSelection),
		Fg:          c(t.Fg),
		FgMuted:     c(t.FgMuted),
		Accent:      c(t.Accent),
		Border:      c(t.Border),
		Header:      c(t.Header),
		Warning:     c(t.Warning),
		Error:       c(t.Error),

		Dimmed: c(mix(t.Fg, t.Bg, dim)),
		DropBg: c(mix(t.Accent, t.Bg, drop)),

		TextOnAccent:    c(readableOn(t.Accent, t.Bg, t.Fg)),
		TextOnSelection: c(readableOn(t.BgSelection, t.Bg, t.Fg)),
		TextOnWarning:   c(readableOn(t.Warning, t.Bg, t.Fg)),

		Modal: DialogColors{
			Bg:        c(t.DialogBg),
			Border:    c(t.DialogBorder),
			Text:      c(t.Fg),
			Muted:     c(t.FgMuted),
			Highlight: c(firstSet(t.BgSelection, t.Accent)),
		},
	}
}

func firstSet(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

type rgb struct{ r, g, b float64 }

func parseRGB(hex string) (rgb, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return rgb{}, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{float64(v >> 16 & 0xff), float64(v >> 8 & 0xff), float64(v & 0xff)}, true
}

func (c rgb) String() string {
	return fmt.Sprintf("#%02x%02x%02x", int(c.r), int(c.g), int(c.b))
}

// luminance is the WCAG relative luminance of hex, or 0 for anything that is
// not a #rrggbb color.
func luminance(hex string) float64 {
	c, ok := parseRGB(hex)
	if !ok {
		return 0
	}
	linear := func(v float64) float64 {
		v /= 255
		if v <= 0.04045 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*linear(c.r) + 0.7152*linear(c.g) + 0.0722*linear(c.b)
}

func contrast(a, b string) float64 {
	hi, lo := luminance(a), luminance(b)
	if hi < lo {
		hi, lo = lo, hi
	}
	return (hi + 0.05) / (lo + 0.05)
}

// readableOn picks whichever of light and dark contrasts more with bg.
func readableOn(bg, light, dark string) string {
	if contrast(bg, light) >= contrast(bg, dark) {
		return light
	}
	return dark
}

// mix moves a towards b by ratio, clamped to [0, 1]. Inputs that are not
// #rrggbb colors return a unchanged.
func mix(a, b string, ratio float64) string {
	ca, okA := parseRGB(a)
	cb, okB := parseRGB(b)
	if !okA || !okB {
		return a
	}
	ratio = math.Max(0, math.Min(1, ratio))
	at := func(x, y float64) float64 { return x*(1-ratio) + y*ratio }
	return rgb{at(ca.r, cb.r), at(ca.g, cb.g), at(ca.b, cb.b)}.String()
}
