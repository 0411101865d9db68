package generator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adidesxdi/sudoku-cli-ai-orchestration/internal/board"
	"github.com/adidesxdi/sudoku-cli-ai-orchestration/internal/solver"
)

func TestParseDifficulty(t *testing.T) {
	for _, label := range []string{"easy", "medium", "hard"} {
		d, err := ParseDifficulty(label)
		require.NoError(t, err)
		assert.Equal(t, label, d.String())
	}

	for _, label := range []string{"", "expert", "EASY", "impossible"} {
		_, err := ParseDifficulty(label)
		assert.ErrorIs(t, err, ErrUnknownDifficulty, "label %q", label)
	}
}

func TestClueRanges(t *testing.T) {
	cases := []struct {
		diff     Difficulty
		min, max int
	}{
		{Easy, 36, 45},
		{Medium, 27, 35},
		{Hard, 22, 26},
	}
	for _, tc := range cases {
		min, max := tc.diff.ClueRange()
		assert.Equal(t, tc.min, min)
		assert.Equal(t, tc.max, max)
	}
}

func TestGenerateRejectsUnknownDifficulty(t *testing.T) {
	_, err := Generate(Difficulty("nightmare"), 1)
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := Generate(Easy, 42)
	require.NoError(t, err)
	second, err := Generate(Easy, 42)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same (difficulty, seed) produced different puzzles (-first +second):\n%s", diff)
	}
	assert.Equal(t, first.Puzzle.String(), second.Puzzle.String())
}

func TestGenerateDifficultiesDiverge(t *testing.T) {
	easy, err := Generate(Easy, 42)
	require.NoError(t, err)
	medium, err := Generate(Medium, 42)
	require.NoError(t, err)

	assert.NotEqual(t, easy.Puzzle.String(), medium.Puzzle.String())
}

func TestGenerateInvariants(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		t.Run(d.String(), func(t *testing.T) {
			for seed := uint32(1); seed <= 3; seed++ {
				p, err := Generate(d, seed)
				require.NoError(t, err)

				// Solution is complete and valid.
				_, empty := p.Solution.FirstEmpty()
				assert.False(t, empty)
				assert.True(t, p.Solution.IsValid())

				// Puzzle is a subset of the solution.
				for pos, v := range p.Puzzle {
					if v != board.EmptyCell {
						assert.Equal(t, p.Solution[pos], v, "puzzle cell %d disagrees with solution", pos)
					}
				}

				// Exactly one completion exists.
				assert.Equal(t, 1, solver.CountSolutions(p.Puzzle, 2))

				// The solver recovers the original solution.
				solved, err := solver.Solve(p.Puzzle)
				require.NoError(t, err)
				assert.Equal(t, p.Solution, solved)

				assert.Equal(t, p.Puzzle.ClueCount(), p.Clues)
				min, _ := d.ClueRange()
				assert.GreaterOrEqual(t, p.Clues, min,
					"carving never removes below the drawn target")
			}
		})
	}
}

func TestGenerateEasyHitsClueRange(t *testing.T) {
	// Digging from 81 down to the easy band never plateaus in practice;
	// harder tiers may legitimately stop above their target.
	for seed := uint32(1); seed <= 5; seed++ {
		p, err := Generate(Easy, seed)
		require.NoError(t, err)
		min, max := Easy.ClueRange()
		assert.GreaterOrEqual(t, p.Clues, min)
		assert.LessOrEqual(t, p.Clues, max)
	}
}

func TestGenerateSeedOffsetsAreDistinct(t *testing.T) {
	seen := map[uint32]Difficulty{}
	for d, tier := range tiers {
		prev, dup := seen[tier.seedOffset]
		require.False(t, dup, "tiers %s and %s share a seed offset", prev, d)
		seen[tier.seedOffset] = d
	}
}
