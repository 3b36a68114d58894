// Package palette maps calendar position to color.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Map linearly remaps v from [start1, stop1] to [start2, stop2].
// The result is not clamped.
func Map(v, start1, stop1, start2, stop2 float64) float64 {
	return start2 + (stop2-start2)*((v-start1)/(stop1-start1))
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// MonthHue returns the hue, in degrees, for month index m in [0, 12).
// The curve follows the first half of a sine wave, so hues start at 180
// in January, fall to 0 mid-year and climb back toward 180.
func MonthHue(m float64) float64 {
	scaled := Map(m, 0, 12, 0, 1)
	deg := math.Floor(scaled * 180)
	return 360 - Map(math.Sin(Radians(deg)), 0, 1, 180, 360)
}

// HSB is a hue/saturation/brightness triple. H is in degrees, S and B are
// percentages. Components are kept as computed; Color clamps them.
type HSB struct {
	H, S, B float64
}

func (c HSB) String() string {
	return fmt.Sprintf("hsb(%.1f, %.1f%%, %.1f%%)", c.H, c.S, c.B)
}

// Colorful converts c to a go-colorful color, clamping S and B to [0, 100]
// and wrapping H into [0, 360).
func (c HSB) Colorful() colorful.Color {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s := clamp(c.S, 0, 100) / 100
	v := clamp(c.B, 0, 100) / 100
	return colorful.Hsv(h, s, v)
}

// RGBA implements color.Color through the clamped RGB value.
func (c HSB) RGBA() (r, g, b, a uint32) {
	return c.RGBA8().RGBA()
}

// RGBA8 returns the clamped color as 8-bit RGBA.
func (c HSB) RGBA8() color.RGBA {
	r, g, b := c.Colorful().Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Hex returns the clamped color as #rrggbb.
func (c HSB) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// Lipgloss returns the clamped color for terminal styles.
func (c HSB) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

var named = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"gray":      "#808080",
	"grey":      "#808080",
	"silver":    "#c0c0c0",
	"dimgray":   "#696969",
	"darkgray":  "#a9a9a9",
	"lightgray": "#d3d3d3",
	"navy":      "#000080",
	"teal":      "#008080",
}

// ParseColor accepts a CSS color name from a small set or a #rgb / #rrggbb hex.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := named[s]; ok {
		s = hex
	}
	if len(s) == 4 && strings.HasPrefix(s, "#") {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// HexOf formats an 8-bit color as #rrggbb.
func HexOf(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
