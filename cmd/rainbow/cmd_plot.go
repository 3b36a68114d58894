package main

import (
	"fmt"
	"os"

	"github.com/VividCortex/ewma"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/willibrandon/rainbow/internal/birds"
)

// newPlotCmd creates the plot subcommand
func newPlotCmd() *cobra.Command {
	var height int
	var smooth bool

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot the selected bird's year as a line",
		Long: `Plot weekly abundance for the selected bird as a line graph sized to
the terminal. --smooth adds an exponentially weighted moving average.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			table, err := loadTable(ctx)
			if err != nil {
				return err
			}
			row := selectedRow(table)
			if len(weekCells(row)) == 0 {
				return fmt.Errorf("%s has no weeks to plot", row.DisplayName())
			}

			width := 80
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
				width = w
			}
			fmt.Fprintln(cmd.OutOrStdout(), plotRow(row, width-10, height, smooth))
			return nil
		},
	}
	cmd.Flags().IntVar(&height, "height", 12, "graph height in lines")
	cmd.Flags().BoolVar(&smooth, "smooth", false, "overlay an EWMA of the weekly values")
	return cmd
}

// weekValues returns the values drawn as bars.
func weekValues(row birds.Row) []float64 {
	cells := weekCells(row)
	values := make([]float64, len(cells))
	for i, c := range cells {
		values[i] = row.Value(c)
	}
	return values
}

// smoothed returns the running EWMA of values.
func smoothed(values []float64) []float64 {
	avg := ewma.NewMovingAverage()
	out := make([]float64, len(values))
	for i, v := range values {
		avg.Add(v)
		out[i] = avg.Value()
	}
	return out
}

func plotRow(row birds.Row, width, height int, smooth bool) string {
	series := [][]float64{weekValues(row)}
	colors := []asciigraph.AnsiColor{asciigraph.Green}
	caption := row.DisplayName()
	if smooth {
		series = append(series, smoothed(series[0]))
		colors = append(colors, asciigraph.Yellow)
		caption += " (smoothed in yellow)"
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(max(height, 2)),
		asciigraph.Width(max(width, len(series[0]))),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
	)
}
