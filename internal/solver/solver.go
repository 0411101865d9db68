package solver

import (
	"errors"
	"fmt"

	"github.com/adidesxdi/sudoku-cli-ai-orchestration/internal/board"
)

var (
	ErrNoSolution    = errors.New("puzzle has no solution")
	ErrInvalidPuzzle = errors.New("puzzle violates Sudoku constraints")
)

// RuleError reports the rule violations that made a puzzle unsolvable
// before any search was attempted. It unwraps to ErrInvalidPuzzle.
type RuleError struct {
	Violations []board.Violation
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%v: %d violation(s)", ErrInvalidPuzzle, len(e.Violations))
}

func (e *RuleError) Unwrap() error {
	return ErrInvalidPuzzle
}

// Solve completes the given grid by recursive backtracking and returns
// the solved grid. The input is validated first; an invalid grid returns
// a *RuleError carrying its violations, and a valid but uncompletable
// grid returns ErrNoSolution. The caller's grid is never mutated.
//
// The search is fully deterministic: blank cells are filled in ascending
// flat-index order and digits are tried ascending 1-9. That ordering is
// part of the contract — callers may rely on identical inputs producing
// identical search behavior.
func Solve(g board.Grid) (board.Grid, error) {
	if res := g.Validate(); !res.Valid {
		return board.Grid{}, &RuleError{Violations: res.Violations}
	}
	work := g.Clone()
	if !search(&work) {
		return board.Grid{}, ErrNoSolution
	}
	return work, nil
}

// search fills the first empty cell with each legal digit in turn,
// recursing on success and undoing the placement on failure. A full grid
// is the solved terminal state.
func search(g *board.Grid) bool {
	pos, ok := g.FirstEmpty()
	if !ok {
		return true
	}
	for v := 1; v <= 9; v++ {
		if g.Allows(pos, v) {
			g[pos] = v
			if search(g) {
				return true
			}
			g[pos] = board.EmptyCell
		}
	}
	return false
}

// CountSolutions counts complete solutions of the grid, pruning the
// search as soon as limit is reached. A return of 0 means unsolvable,
// 1 certifies a unique solution when called with limit 2.
//
// Unlike Solve, no validity pre-check is performed — callers invoke this
// on grids derived from a known-valid solution.
func CountSolutions(g board.Grid, limit int) int {
	work := g.Clone()
	count := 0

	var dfs func() bool // true = stop searching
	dfs = func() bool {
		pos, ok := work.FirstEmpty()
		if !ok {
			count++
			return count >= limit
		}
		for v := 1; v <= 9; v++ {
			if work.Allows(pos, v) {
				work[pos] = v
				if dfs() {
					return true
				}
				work[pos] = board.EmptyCell
			}
		}
		return false
	}
	dfs()
	return count
}
