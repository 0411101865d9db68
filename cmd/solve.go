package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/adidesxdi/sudoku-cli-ai-orchestration/internal/solver"
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <grid>",
		Short: "Solve a puzzle",
		Long: `Solve a puzzle given as an 81-character string or a path to a file
containing one.

Examples:
  sudoku solve 530070000600195000098000060800060003400803001700020006060000280000419005000080079
  sudoku solve puzzle.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := readGridArg(args[0])
	if err != nil {
		return err
	}

	start := time.Now()
	solved, err := solver.Solve(g)
	if err != nil {
		var re *solver.RuleError
		if errors.As(err, &re) {
			for _, v := range re.Violations {
				fmt.Fprintln(cmd.ErrOrStderr(), v.Message)
			}
		}
		return err
	}

	logger.Debug("solved puzzle",
		zap.Int("clues", g.ClueCount()),
		zap.Duration("elapsed", time.Since(start)))

	fmt.Fprintln(cmd.OutOrStdout(), solved.Format())
	return nil
}
