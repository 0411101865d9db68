package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adidesxdi/sudoku-cli-ai-orchestration/internal/board"
)

const (
	classic       = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	classicSolved = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func mustParse(t *testing.T, s string) board.Grid {
	t.Helper()
	g, err := board.Parse(s)
	require.NoError(t, err)
	return g
}

func TestSolveClassic(t *testing.T) {
	g := mustParse(t, classic)

	solved, err := Solve(g)
	require.NoError(t, err)

	assert.Equal(t, [9]int{5, 3, 4, 6, 7, 8, 9, 1, 2}, solved.Row(0))
	assert.Equal(t, [9]int{3, 4, 5, 2, 8, 6, 1, 7, 9}, solved.Row(8))
	assert.Equal(t, mustParse(t, classicSolved), solved)

	_, empty := solved.FirstEmpty()
	assert.False(t, empty)
	assert.True(t, solved.IsValid())

	// Given clues survive untouched.
	for pos, v := range g {
		if v != board.EmptyCell {
			assert.Equal(t, v, solved[pos], "clue at position %d changed", pos)
		}
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	g := mustParse(t, classic)
	before := g

	_, err := Solve(g)
	require.NoError(t, err)
	assert.Equal(t, before, g)
}

func TestSolveIdempotentOnSolvedGrid(t *testing.T) {
	g := mustParse(t, classicSolved)

	solved, err := Solve(g)
	require.NoError(t, err)
	assert.Equal(t, g, solved)
}

func TestSolveInvalidGrid(t *testing.T) {
	g := mustParse(t, classic)
	g[2] = 5 // second 5 in row 0

	_, err := Solve(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPuzzle)

	var re *RuleError
	require.ErrorAs(t, err, &re)
	assert.NotEmpty(t, re.Violations)
	assert.Equal(t, board.KindRow, re.Violations[0].Kind)
}

// A grid can pass every duplicate check yet admit no completion: here
// box 0 holds 1-8 and the 9 needed at (2,2) already sits in row 2.
func TestSolveUnsolvableGrid(t *testing.T) {
	g := mustParse(t, "123......456......78...9..."+strings.Repeat(".", 54))
	require.True(t, g.IsValid())

	_, err := Solve(g)
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestCountSolutions(t *testing.T) {
	t.Run("unique puzzle", func(t *testing.T) {
		assert.Equal(t, 1, CountSolutions(mustParse(t, classic), 2))
	})

	t.Run("solved grid", func(t *testing.T) {
		assert.Equal(t, 1, CountSolutions(mustParse(t, classicSolved), 2))
	})

	t.Run("unsolvable grid", func(t *testing.T) {
		g := mustParse(t, "123......456......78...9..."+strings.Repeat(".", 54))
		assert.Equal(t, 0, CountSolutions(g, 2))
	})

	t.Run("many solutions prune at limit", func(t *testing.T) {
		var empty board.Grid
		assert.Equal(t, 2, CountSolutions(empty, 2))
		assert.Equal(t, 5, CountSolutions(empty, 5))
	})

	t.Run("input not mutated", func(t *testing.T) {
		g := mustParse(t, classic)
		before := g
		CountSolutions(g, 2)
		assert.Equal(t, before, g)
	})
}

func TestSolveDeterministic(t *testing.T) {
	// Two independent solves of a multi-solution grid pick the same
	// completion because cell and digit order are fixed.
	g := mustParse(t, classic)
	g[board.MakePos(0, 0)] = board.EmptyCell

	first, err := Solve(g)
	require.NoError(t, err)
	second, err := Solve(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
