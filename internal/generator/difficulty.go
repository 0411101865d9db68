package generator

import (
	"errors"
	"fmt"
)

// ErrUnknownDifficulty is returned for difficulty labels outside
// easy/medium/hard.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects how many clues a generated puzzle keeps.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// tiers maps each difficulty to its inclusive clue-count range and the
// seed offset that separates its random stream from the other tiers.
var tiers = map[Difficulty]struct {
	minClues   int
	maxClues   int
	seedOffset uint32
}{
	Easy:   {36, 45, 0},
	Medium: {27, 35, 1},
	Hard:   {22, 26, 2},
}

// ParseDifficulty maps a label to its Difficulty, rejecting anything
// other than easy, medium, or hard.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := tiers[d]; !ok {
		return "", fmt.Errorf("%w: %q (want easy, medium, or hard)", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// ClueRange returns the inclusive clue-count range targeted by this
// difficulty.
func (d Difficulty) ClueRange() (min, max int) {
	t := tiers[d]
	return t.minClues, t.maxClues
}

func (d Difficulty) String() string {
	return string(d)
}
