package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/willibrandon/rainbow/internal/app"
	"github.com/willibrandon/rainbow/internal/birds"
	"github.com/willibrandon/rainbow/internal/config"
	"github.com/willibrandon/rainbow/internal/logger"
)

var (
	// Version info (set by ldflags)
	version = "dev"

	// Flags
	configPath string
	dataPath   string
	debug      bool
	rowIndex   int
	birdName   string

	// cfg is loaded before any subcommand runs
	cfg *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rainbow",
		Short: "Seasonal bird abundance as a rainbow of weekly bars",
		Long: `rainbow charts a year of bird sightings, one bar per week, colored by month.

Rows come from a tab separated table: the bird's name, then weekly
abundance values between 0 and 1. Run without a subcommand to browse
birds in the terminal.

Output:
  rainbow                      Interactive browser (same as 'rainbow view')
  rainbow window               Desktop window
  rainbow render -o chart.png  Write a PNG
  rainbow bars | list | plot   Print to the terminal`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(*cobra.Command, []string) { logger.Close() },
		RunE:              runView,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/rainbow/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "abundance table (.tsv, optionally .gz, .zst or .lz4)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&rowIndex, "row", birds.DefaultRowIndex, "initial row index")
	rootCmd.PersistentFlags().StringVar(&birdName, "bird", "", "initial bird by name, overrides --row")
	addExportDirFlag(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(
		newViewCmd(),
		newWindowCmd(),
		newRenderCmd(),
		newBarsCmd(),
		newListCmd(),
		newPlotCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and starts logging.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Dataset.Path = dataPath
	}
	if flags.Changed("row") {
		cfg.Menu.DefaultRow = rowIndex
	}
	if debug {
		cfg.Debug = true
	}

	level := logger.LevelInfo
	if cfg.Debug {
		level = logger.LevelDebug
	}
	logger.Init(level, cfg.Log.Path)
	if cfg.Debug {
		fmt.Fprintf(os.Stderr, "Debug mode: Logs written to %s\n", logger.Path)
	}
	logger.Debug("rainbow starting", "version", version, "command", cmd.Name(), "config", cfg.File)
	return nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// loadTable reads the configured dataset for the non-interactive commands.
func loadTable(ctx context.Context) (*birds.Table, error) {
	table, err := birds.LoadFile(ctx, cfg.Dataset.Path, cfg.LoadOptions())
	if err != nil {
		logger.Error("dataset load failed", "path", cfg.Dataset.Path, "error", err)
		return nil, errors.New(app.FormatLoadError(err, cfg.Dataset.Path))
	}
	logger.Info("dataset loaded", "path", table.Source(), "rows", table.Len())
	return table, nil
}

// selectedRow applies --row and --bird to table.
func selectedRow(table *birds.Table) birds.Row {
	row, _ := table.Row(app.ResolveDefaultRow(table, cfg.Menu.DefaultRow, birdName))
	return row
}

// newVersionCmd creates the version subcommand
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rainbow %s\n", version)
		},
	}
}
