// Package components provides reusable UI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/rainbow/internal/birds"
	"github.com/willibrandon/rainbow/internal/chart"
	"github.com/willibrandon/rainbow/internal/ui/styles"
)

// BarChartConfig configures a BarChart.
type BarChartConfig struct {
	Width  int // Total width available, in cells
	Height int // Total height available, in cells, including the title
	Chart  chart.Options
}

// DefaultBarChartConfig returns sensible defaults.
func DefaultBarChartConfig() BarChartConfig {
	return BarChartConfig{
		Width:  80,
		Height: 20,
		Chart:  chart.DefaultOptions(),
	}
}

// BarChart shows one bird's year on a TermCanvas. The canvas is redrawn
// only when the row or size changes.
type BarChart struct {
	config   BarChartConfig
	renderer *chart.Renderer
	canvas   *TermCanvas

	row     birds.Row
	hasRow  bool
	bars    []chart.Bar
	renders int
}

// NewBarChart creates a new bar chart component.
func NewBarChart(config BarChartConfig) *BarChart {
	if config.Width < 20 {
		config.Width = 20
	}
	if config.Height < 4 {
		config.Height = 4
	}
	c := &BarChart{
		config:   config,
		renderer: chart.NewRenderer(config.Chart),
	}
	c.canvas = NewTermCanvas(c.canvasSize())
	return c
}

func (c *BarChart) canvasSize() (int, int) {
	// title + subtitle
	return c.config.Width, c.config.Height - 2
}

// SetRow replaces the displayed row and redraws.
func (c *BarChart) SetRow(row birds.Row) {
	c.row = row
	c.hasRow = true
	c.redraw()
}

// SetSize updates the chart dimensions and redraws if they changed.
func (c *BarChart) SetSize(width, height int) {
	width, height = max(width, 20), max(height, 4)
	if width == c.config.Width && height == c.config.Height {
		return
	}
	c.config.Width = width
	c.config.Height = height
	c.canvas = NewTermCanvas(c.canvasSize())
	if c.hasRow {
		c.redraw()
	}
}

func (c *BarChart) redraw() {
	c.bars = c.renderer.Render(c.canvas, c.row)
	c.renders++
}

// Bars returns the bars from the last draw.
func (c *BarChart) Bars() []chart.Bar { return c.bars }

// Renders counts draws since creation.
func (c *BarChart) Renders() int { return c.renders }

// Canvas exposes the drawing surface.
func (c *BarChart) Canvas() *TermCanvas { return c.canvas }

// View renders the bar chart.
func (c *BarChart) View() string {
	if !c.hasRow {
		return c.renderEmpty()
	}

	title := styles.ChartTitleStyle.Render(truncateLabel(c.row.DisplayName(), c.config.Width))
	sub := styles.ChartSubtitleStyle.Render(truncateLabel(c.subtitle(), c.config.Width))
	return lipgloss.JoinVertical(lipgloss.Left, title, sub, c.canvas.String())
}

func (c *BarChart) subtitle() string {
	sci := birds.ScientificName(c.row.Name)
	weeks := fmt.Sprintf("%d weeks", len(c.bars))
	if sci == "" {
		return weeks
	}
	return sci + " · " + weeks
}

// renderEmpty shows a placeholder when no row is selected.
func (c *BarChart) renderEmpty() string {
	return lipgloss.NewStyle().
		Width(c.config.Width).
		Height(c.config.Height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(styles.ColorMuted).
		Render("No bird selected")
}
