// Package colour parses CSS colour strings and classifies them by lightness.
package colour

import (
	"fmt"
	"math"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL represents a colour in HSL space.
// H is in degrees [0, 360); S and L are percentages [0, 100].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// String returns the HSL colour in CSS notation.
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", hsl.H, hsl.S, hsl.L)
}

// ToHSL converts RGB to HSL colour space.
func ToHSL(rgb RGB) HSL {
	hi := max(rgb.R, rgb.G, rgb.B)
	lo := min(rgb.R, rgb.G, rgb.B)

	// Lightness from the integer channel sum so exact boundaries
	// such as rgb(102, 102, 102) land on 40 without float drift.
	l := float64(int(hi)+int(lo)) * 100 / 510

	if hi == lo {
		return HSL{H: 0, S: 0, L: l}
	}

	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0
	maxVal := float64(hi) / 255.0
	minVal := float64(lo) / 255.0
	delta := maxVal - minVal

	ln := (maxVal + minVal) / 2.0
	s := delta / (1 - math.Abs(2*ln-1))

	var h float64
	switch maxVal {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	return HSL{H: h, S: s * 100, L: l}
}
