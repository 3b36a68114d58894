package components

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/rainbow/internal/chart"
	"github.com/willibrandon/rainbow/internal/palette"
)

// SubCellsX is the number of horizontal canvas pixels per terminal column.
// Each column is sampled at its center, so thin gaps survive as blank cells
// when they cover a column center and vanish otherwise.
const SubCellsX = 4

// TermCanvas is a chart.Surface drawn with half-block characters. Every
// terminal cell shows two vertical pixels: the top one as foreground of
// "▀" and the bottom one as background.
type TermCanvas struct {
	cols, rows int
	raster     *chart.Raster
}

// NewTermCanvas creates a canvas covering cols x rows terminal cells.
func NewTermCanvas(cols, rows int) *TermCanvas {
	cols, rows = max(cols, 1), max(rows, 1)
	return &TermCanvas{
		cols:   cols,
		rows:   rows,
		raster: chart.NewRaster(cols*SubCellsX, rows*2),
	}
}

// Cells returns the canvas size in terminal cells.
func (c *TermCanvas) Cells() (cols, rows int) { return c.cols, c.rows }

func (c *TermCanvas) Size() (float64, float64)  { return c.raster.Size() }
func (c *TermCanvas) Background(col color.RGBA) { c.raster.Background(col) }
func (c *TermCanvas) Fill(col palette.HSB)      { c.raster.Fill(col) }
func (c *TermCanvas) Rect(x, y, w, h float64)   { c.raster.Rect(x, y, w, h) }

// Pixel returns the sampled color of the top (half 0) or bottom (half 1)
// of cell (col, row).
func (c *TermCanvas) Pixel(col, row, half int) color.RGBA {
	return c.raster.Image().RGBAAt(col*SubCellsX+SubCellsX/2, row*2+half)
}

// String renders the canvas. Runs of identical cells share one style.
func (c *TermCanvas) String() string {
	var b strings.Builder
	for y := 0; y < c.rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		runStart := 0
		for x := 1; x <= c.cols; x++ {
			if x < c.cols && c.sameCell(x, runStart, y) {
				continue
			}
			top, bottom := c.Pixel(runStart, y, 0), c.Pixel(runStart, y, 1)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(palette.HexOf(top))).
				Background(lipgloss.Color(palette.HexOf(bottom)))
			b.WriteString(style.Render(strings.Repeat("▀", x-runStart)))
			runStart = x
		}
	}
	return b.String()
}

func (c *TermCanvas) sameCell(a, b, row int) bool {
	return c.Pixel(a, row, 0) == c.Pixel(b, row, 0) && c.Pixel(a, row, 1) == c.Pixel(b, row, 1)
}
