// Package chart turns one bird's weekly abundance into colored bars.
package chart

import (
	"image/color"

	"github.com/willibrandon/rainbow/internal/birds"
	"github.com/willibrandon/rainbow/internal/palette"
)

// Surface is a 2D drawing target. Coordinates have the origin at the top
// left with y growing downward. Rect accepts negative heights, which extend
// upward from y.
type Surface interface {
	Size() (width, height float64)
	Background(c color.RGBA)
	Fill(c palette.HSB)
	Rect(x, y, w, h float64)
}

// Options tunes the renderer.
type Options struct {
	// Background clears the surface before bars are drawn.
	Background color.RGBA
	// Gap is subtracted from every bar's drawn width.
	Gap float64
	// SaturationBoost multiplies the mapped saturation. Results above 100
	// are left to the surface to clamp.
	SaturationBoost float64
	// SmoothHue uses the fractional month (cell/4.0) for the hue instead
	// of the whole month bucket.
	SmoothHue bool
}

// DefaultBackground is CSS gray.
var DefaultBackground = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// DefaultOptions returns the stock chart look.
func DefaultOptions() Options {
	return Options{
		Background:      DefaultBackground,
		Gap:             2,
		SaturationBoost: 1.5,
	}
}

// Bar is the geometry and color computed for a single value cell.
type Bar struct {
	Cell  int
	Month int
	Value float64
	Color palette.HSB
	X     float64
	Y     float64
	W     float64
	H     float64
}

// Renderer computes bars and issues them to a surface. It holds no
// per-row state and may be reused for any number of rows.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer with opts.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Options returns the renderer's configuration.
func (r *Renderer) Options() Options {
	return r.opts
}

// Bars lays out row on a width x height canvas.
//
// A row of n cells yields n-2 bars for cells 1..n-2; the final value column
// is not drawn. Each bar gets width/(n-2) of horizontal space, less the gap,
// starts at cell × that width and rises from the bottom edge in proportion
// to its value. The slot left of cell 1 stays empty and the last bar runs
// past the right edge.
func (r *Renderer) Bars(row birds.Row, width, height float64) []Bar {
	count := row.Cells() - 2
	if count <= 0 {
		return nil
	}

	slot := width / float64(count)
	bars := make([]Bar, 0, count)
	for c := 1; c <= count; c++ {
		v := row.Value(c)
		month := birds.Month(c)

		hueMonth := float64(month)
		if r.opts.SmoothHue {
			hueMonth = float64(c) / birds.WeeksPerMonth
		}

		bars = append(bars, Bar{
			Cell:  c,
			Month: month,
			Value: v,
			Color: palette.HSB{
				H: palette.MonthHue(hueMonth),
				S: palette.Map(v, 0, 1, 0, 100) * r.opts.SaturationBoost,
				B: 100,
			},
			X: float64(c) * slot,
			Y: height,
			W: slot - r.opts.Gap,
			H: -height * v,
		})
	}
	return bars
}

// Render clears s and draws row onto it. It returns the bars drawn.
func (r *Renderer) Render(s Surface, row birds.Row) []Bar {
	s.Background(r.opts.Background)

	w, h := s.Size()
	bars := r.Bars(row, w, h)
	for _, b := range bars {
		s.Fill(b.Color)
		s.Rect(b.X, b.Y, b.W, b.H)
	}
	return bars
}
