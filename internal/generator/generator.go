package generator

import (
	"fmt"

	"github.com/adidesxdi/sudoku-cli-ai-orchestration/internal/board"
	"github.com/adidesxdi/sudoku-cli-ai-orchestration/internal/rng"
	"github.com/adidesxdi/sudoku-cli-ai-orchestration/internal/solver"
)

// Puzzle pairs a generated puzzle with the full solution it was carved
// from. Every non-empty puzzle cell equals the corresponding solution
// cell, and the puzzle always has exactly one solution.
type Puzzle struct {
	Puzzle     board.Grid
	Solution   board.Grid
	Difficulty Difficulty
	Seed       uint32
	Clues      int
}

// Generate creates a puzzle/solution pair, deterministic in
// (difficulty, seed): the same arguments always yield the identical
// pair. The only error is an unsupported difficulty label.
//
// A fresh rng.Source is built per call from the seed combined with a
// per-difficulty offset, so the same numeric seed produces a different
// puzzle on each tier and concurrent calls share no state.
func Generate(d Difficulty, seed uint32) (*Puzzle, error) {
	t, ok := tiers[d]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	src := rng.New(seed + t.seedOffset)

	var solution board.Grid
	fill(&solution, src, 0)
	if !solution.IsValid() {
		// A freshly constructed solution failing validation is a logic
		// defect, not an input condition; there is no recovery.
		panic("generator: constructed solution failed validation: " + solution.String())
	}

	target := src.Int(t.minClues, t.maxClues)
	puzzle, clues := carve(solution, src, target)

	return &Puzzle{
		Puzzle:     puzzle,
		Solution:   solution,
		Difficulty: d,
		Seed:       seed,
		Clues:      clues,
	}, nil
}

// fill completes the grid from pos onward, trying digits in an order
// shuffled freshly at each cell. From an empty grid a legal completion
// always exists, so the top-level call always returns true.
func fill(g *board.Grid, src *rng.Source, pos int) bool {
	if pos == board.CellCount {
		return true
	}
	digits := [9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	src.Shuffle(9, func(i, j int) {
		digits[i], digits[j] = digits[j], digits[i]
	})
	for _, v := range digits {
		if g.Allows(pos, v) {
			g[pos] = v
			if fill(g, src, pos+1) {
				return true
			}
			g[pos] = board.EmptyCell
		}
	}
	return false
}

// carve blanks cells of the solution in a shuffled order, keeping each
// removal only if the puzzle still has exactly one solution. The walk
// stops at the target clue count or after visiting every cell; a tier
// may plateau above its target when further removal would break
// uniqueness.
func carve(solution board.Grid, src *rng.Source, target int) (board.Grid, int) {
	puzzle := solution.Clone()
	clues := board.CellCount

	for _, pos := range src.Perm(board.CellCount) {
		if clues <= target {
			break
		}
		if puzzle[pos] == board.EmptyCell {
			continue
		}
		old := puzzle[pos]
		puzzle[pos] = board.EmptyCell
		if solver.CountSolutions(puzzle, 2) == 1 {
			clues--
		} else {
			puzzle[pos] = old
		}
	}

	return puzzle, clues
}
