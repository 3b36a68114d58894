package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/willibrandon/rainbow/internal/ui/highlight"
	"github.com/willibrandon/rainbow/internal/ui/styles"
)

// newConfigCmd creates the config subcommand
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file, RAINBOW_*
environment variables and flags have been applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := cfg.YAML()
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}

			text := string(out)
			if cfg.File != "" {
				text = "# " + cfg.File + "\n" + text
			}
			if term.IsTerminal(int(os.Stdout.Fd())) {
				text = highlight.YAML(text, styles.ThemeNamed(cfg.UI.Theme).SyntaxStyle)
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
