package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/willibrandon/rainbow/internal/app"
	"github.com/willibrandon/rainbow/internal/logger"
)

// newViewCmd creates the view subcommand
func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse birds in the terminal",
		Long: `Browse birds in the terminal. The menu on the left lists every bird;
moving the highlight redraws the chart on the right.

Press ? inside the browser for key bindings.`,
		Args: cobra.NoArgs,
		RunE: runView,
	}
	addExportDirFlag(cmd)
	return cmd
}

// exportDir receives PNGs saved from the browser with 'p'.
var exportDir string

func addExportDirFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&exportDir, "export-dir", ".", "directory for PNG exports")
}

// runView runs the interactive browser.
func runView(cmd *cobra.Command, _ []string) error {
	// Create the application model
	model, err := app.New(cfg, app.Options{
		Row:       cfg.Menu.DefaultRow,
		Bird:      birdName,
		ExportDir: exportDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	// Create the Bubbletea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("rainbow exited")
	return nil
}
