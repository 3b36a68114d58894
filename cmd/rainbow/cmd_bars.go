package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/willibrandon/rainbow/internal/birds"
	"github.com/willibrandon/rainbow/internal/chart"
)

// newBarsCmd creates the bars subcommand
func newBarsCmd() *cobra.Command {
	var width, height float64

	cmd := &cobra.Command{
		Use:   "bars",
		Short: "Print the bars drawn for the selected bird",
		Long: `Print one line per bar: week, month, value, HSB color and rectangle,
as they would be drawn on a canvas of --width by --height.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			table, err := loadTable(ctx)
			if err != nil {
				return err
			}
			opts, err := cfg.ChartOptions()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				width = float64(cfg.Canvas.Width)
			}
			if !cmd.Flags().Changed("height") {
				height = float64(cfg.Canvas.Height)
			}

			row := selectedRow(table)
			bars := chart.NewRenderer(opts).Bars(row, width, height)

			fmt.Fprintf(cmd.OutOrStdout(), "%s (row %d), %d bars on %gx%g\n",
				row.DisplayName(), row.Index, len(bars), width, height)
			out, err := pterm.DefaultTable.
				WithHasHeader().
				WithBoxed().
				WithData(barsTable(bars)).
				Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().Float64Var(&width, "width", 1280, "canvas width (default canvas.width)")
	cmd.Flags().Float64Var(&height, "height", 720, "canvas height (default canvas.height)")
	return cmd
}

// barsTable lays bars out as table rows under a header.
func barsTable(bars []chart.Bar) pterm.TableData {
	data := pterm.TableData{
		{"Week", "Month", "Value", "Color", "HSB", "X", "Y", "W", "H"},
	}
	for _, b := range bars {
		rgb := b.Color.RGBA8()
		swatch := pterm.NewRGB(rgb.R, rgb.G, rgb.B).Sprint("██ ") + b.Color.Hex()
		data = append(data, []string{
			fmt.Sprint(b.Cell),
			monthName(b.Month),
			fmt.Sprintf("%.3f", b.Value),
			swatch,
			b.Color.String(),
			fmt.Sprintf("%.1f", b.X),
			fmt.Sprintf("%.1f", b.Y),
			fmt.Sprintf("%.1f", b.W),
			fmt.Sprintf("%.1f", b.H),
		})
	}
	return data
}

// monthName abbreviates a zero-based month bucket. Buckets past December
// only occur for rows longer than a year.
func monthName(m int) string {
	names := [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	if m >= 0 && m < len(names) {
		return names[m]
	}
	return fmt.Sprintf("M%d", m+1)
}

// weekCells returns the value cells that become bars.
func weekCells(row birds.Row) []int {
	n := row.Cells()
	if n < 3 {
		return nil
	}
	cells := make([]int, 0, n-2)
	for c := 1; c <= n-2; c++ {
		cells = append(cells, c)
	}
	return cells
}
