package main

import (
	"github.com/spf13/cobra"

	"github.com/willibrandon/rainbow/internal/app"
	"github.com/willibrandon/rainbow/internal/window"
)

// newWindowCmd creates the window subcommand
func newWindowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Show the chart in a desktop window",
		Long: `Open a desktop window showing the selected bird. The canvas is the window
less canvas.margin_x across and canvas.margin_y down, centered.

Keys: ↑/↓ (or ←/→) step through birds in menu order, q or esc closes.
Requires a cgo build.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			table, err := loadTable(ctx)
			if err != nil {
				return err
			}
			selected := app.ResolveDefaultRow(table, cfg.Menu.DefaultRow, birdName)
			return window.Run(cfg, table, selected)
		},
	}
}
