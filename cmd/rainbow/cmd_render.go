package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/willibrandon/rainbow/internal/app"
	"github.com/willibrandon/rainbow/internal/chart"
	"github.com/willibrandon/rainbow/internal/logger"
)

// newRenderCmd creates the render subcommand
func newRenderCmd() *cobra.Command {
	var out string
	var width, height int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the selected bird to a PNG",
		Long: `Render the selected bird's chart to a PNG file.

Examples:
  rainbow render --bird "American Robin" -o robin.png
  rainbow render --row 3 --width 1920 --height 1080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			table, err := loadTable(ctx)
			if err != nil {
				return err
			}
			row := selectedRow(table)

			if !cmd.Flags().Changed("width") {
				width = cfg.Canvas.Width
			}
			if !cmd.Flags().Changed("height") {
				height = cfg.Canvas.Height
			}
			if width <= 0 || height <= 0 {
				return fmt.Errorf("invalid size %dx%d", width, height)
			}
			if out == "" {
				out = app.ExportFilename(row)
			}

			opts, err := cfg.ChartOptions()
			if err != nil {
				return err
			}
			raster := chart.NewRaster(width, height)
			bars := chart.NewRenderer(opts).Render(raster, row)
			if err := raster.SavePNG(out); err != nil {
				return err
			}

			logger.Info("chart rendered", "path", out, "row", row.Index, "bars", len(bars))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %d bars, %s\n",
				out, row.DisplayName(), len(bars), humanize.Comma(int64(width*height))+" px")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <bird-name>.png)")
	cmd.Flags().IntVar(&width, "width", 1280, "image width in pixels (default canvas.width)")
	cmd.Flags().IntVar(&height, "height", 720, "image height in pixels (default canvas.height)")
	return cmd
}
