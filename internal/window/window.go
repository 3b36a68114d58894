//go:build cgo

package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/willibrandon/rainbow/internal/birds"
	"github.com/willibrandon/rainbow/internal/chart"
	"github.com/willibrandon/rainbow/internal/config"
	"github.com/willibrandon/rainbow/internal/logger"
)

// page is the color around the canvas.
var page = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}

// Run opens a window showing row selected of table and blocks until it is
// closed. Arrow keys step through the rows in menu order.
func Run(cfg *config.Config, table *birds.Table, selected int) error {
	opts, err := cfg.ChartOptions()
	if err != nil {
		return err
	}

	g := &game{
		table:    table,
		renderer: chart.NewRenderer(opts),
		cycler:   NewCycler(birds.SortForMenu(table.Rows(), cfg.SortKey()), selected),
		marginX:  cfg.Canvas.MarginX,
		marginY:  cfg.Canvas.MarginY,
		dirty:    true,
	}

	ebiten.SetWindowSize(cfg.Canvas.Width+g.marginX, cfg.Canvas.Height+g.marginY)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	g.updateTitle()

	logger.Info("window opened", "row", g.cycler.Selected(), "width", cfg.Canvas.Width, "height", cfg.Canvas.Height)
	return ebiten.RunGame(g)
}

type game struct {
	table    *birds.Table
	renderer *chart.Renderer
	cycler   *Cycler

	marginX, marginY int

	raster *chart.Raster
	img    *ebiten.Image

	// dirty is set when the selection or canvas size changes; the raster
	// is redrawn only then.
	dirty bool
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.cycler.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.cycler.Prev()
	default:
		return nil
	}
	g.dirty = true
	g.updateTitle()
	logger.Debug("window selection changed", "row", g.cycler.Selected())
	return nil
}

func (g *game) updateTitle() {
	title := "rainbow"
	if row, ok := g.table.Row(g.cycler.Selected()); ok {
		title += " · " + row.DisplayName()
	}
	ebiten.SetWindowTitle(title)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(page)
	if g.raster == nil {
		return
	}

	if g.dirty {
		if row, ok := g.table.Row(g.cycler.Selected()); ok {
			g.renderer.Render(g.raster, row)
		}
		g.img.WritePixels(g.raster.Image().Pix)
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(CanvasOffset(g.marginX, g.marginY))
	screen.DrawImage(g.img, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := CanvasSize(outsideWidth, outsideHeight, g.marginX, g.marginY)
	if g.raster == nil || g.raster.Image().Bounds().Dx() != w || g.raster.Image().Bounds().Dy() != h {
		g.raster = chart.NewRaster(w, h)
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}
