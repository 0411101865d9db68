package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adidesxdi/sudoku-cli-ai-orchestration/internal/board"
)

func init() {
	validateCmd := &cobra.Command{
		Use:   "validate <grid>",
		Short: "Check a grid for rule violations",
		Long: `Check a grid for duplicate digits in any row, column, or box.
All violations are reported, not just the first; a grid that is not
exactly 81 cells reports a single size violation instead.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cells, err := readCellsArg(args[0])
	if err != nil {
		return err
	}

	res := board.ValidateCells(cells)
	if res.Valid {
		fmt.Fprintln(cmd.OutOrStdout(), "valid")
		return nil
	}
	for _, v := range res.Violations {
		fmt.Fprintln(cmd.OutOrStdout(), v.Message)
	}
	return fmt.Errorf("invalid grid: %d violation(s)", len(res.Violations))
}
