package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/willibrandon/rainbow/internal/birds"
	"github.com/willibrandon/rainbow/internal/ui/components"
)

var (
	selectedFormat = color.New(color.FgHiYellow, color.Bold).SprintFunc()
	indexFormat    = color.New(color.FgHiBlack).SprintFunc()
	sciFormat      = color.New(color.FgCyan, color.Italic).SprintFunc()
)

// newListCmd creates the list subcommand
func newListCmd() *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List birds in menu order",
		Long: `List every bird in the order the menu shows them, with its row index.
The initial selection is highlighted.

With --tree, print the selected bird's weeks grouped by month instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			table, err := loadTable(ctx)
			if err != nil {
				return err
			}
			row := selectedRow(table)

			if tree {
				fmt.Fprint(cmd.OutOrStdout(), monthTree(row))
				return nil
			}
			printOptions(cmd.OutOrStdout(), components.MenuOptions(table, cfg.SortKey()), row.Index)
			return nil
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "show the selected bird's weeks grouped by month")
	return cmd
}

func printOptions(w io.Writer, options []components.MenuOption, selected int) {
	for _, o := range options {
		label := o.Label
		marker := "  "
		if o.Row == selected {
			label = selectedFormat(label)
			marker = selectedFormat("▸ ")
		}
		line := fmt.Sprintf("%s%s %s", marker, indexFormat(fmt.Sprintf("%3d", o.Row)), label)
		if o.Scientific != "" {
			line += " " + sciFormat(o.Scientific)
		}
		fmt.Fprintln(w, line)
	}
}

// monthTree groups row's bar cells by month.
func monthTree(row birds.Row) string {
	tree := treeprint.NewWithRoot(fmt.Sprintf("%s (row %d)", row.DisplayName(), row.Index))

	var branch treeprint.Tree
	month := -1
	for _, c := range weekCells(row) {
		if m := birds.Month(c); m != month || branch == nil {
			month = m
			branch = tree.AddBranch(monthName(m))
		}
		branch.AddNode(fmt.Sprintf("week %2d  %.3f", c, row.Value(c)))
	}
	return tree.String()
}
