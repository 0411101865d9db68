package board

import (
	"errors"
	"fmt"
)

var (
	ErrBadLength = errors.New("grid must contain exactly 81 cells")
	ErrBadCell   = errors.New("cell values must be between 0-9")
)

// Kind classifies a rule violation by the unit it occurred in.
type Kind string

const (
	KindSize   Kind = "size"
	KindRow    Kind = "row"
	KindColumn Kind = "column"
	KindBox    Kind = "box"
)

// Violation describes one broken Sudoku rule. For row/column/box kinds,
// Index is the 0-based unit index and Digit the duplicated value; a size
// violation carries Index -1 and Digit 0.
type Violation struct {
	Kind    Kind
	Index   int
	Digit   int
	Message string
}

// Result is the outcome of validating a grid. Valid is true iff
// Violations is empty.
type Result struct {
	Valid      bool
	Violations []Violation
}

// ValidateCells validates a raw cell slice. A wrong length yields a single
// size violation and suppresses all further checks.
func ValidateCells(cells []int) Result {
	if len(cells) != CellCount {
		return Result{Violations: []Violation{{
			Kind:    KindSize,
			Index:   -1,
			Message: fmt.Sprintf("grid has %d cells, expected %d", len(cells), CellCount),
		}}}
	}
	var g Grid
	copy(g[:], cells)
	return g.Validate()
}

// Validate checks every row, column, and box for duplicate digits.
// Units are scanned in a fixed order (rows 0-8, columns 0-8, boxes 0-8)
// and each unit reports at most its first duplicate. Empty cells are
// ignored.
func (g *Grid) Validate() Result {
	violations := make([]Violation, 0, 4)

	for r := 0; r < 9; r++ {
		if d, ok := firstDuplicate(g.Row(r)); ok {
			violations = append(violations, Violation{
				Kind:    KindRow,
				Index:   r,
				Digit:   d,
				Message: fmt.Sprintf("duplicate digit %d in row %d", d, r),
			})
		}
	}
	for c := 0; c < 9; c++ {
		if d, ok := firstDuplicate(g.Column(c)); ok {
			violations = append(violations, Violation{
				Kind:    KindColumn,
				Index:   c,
				Digit:   d,
				Message: fmt.Sprintf("duplicate digit %d in column %d", d, c),
			})
		}
	}
	for b := 0; b < 9; b++ {
		if d, ok := firstDuplicate(g.Box(b)); ok {
			violations = append(violations, Violation{
				Kind:    KindBox,
				Index:   b,
				Digit:   d,
				Message: fmt.Sprintf("duplicate digit %d in box %d", d, b),
			})
		}
	}

	return Result{Valid: len(violations) == 0, Violations: violations}
}

// IsValid reports whether the grid satisfies all Sudoku constraints.
func (g *Grid) IsValid() bool {
	return g.Validate().Valid
}

// firstDuplicate scans one unit for its first repeated non-zero digit
// using a bitmask membership check. Bit i represents digit i+1.
func firstDuplicate(unit [9]int) (int, bool) {
	seen := uint(0)
	for _, v := range unit {
		if v == EmptyCell {
			continue
		}
		mask := uint(1 << (v - 1))
		if seen&mask != 0 {
			return v, true
		}
		seen |= mask
	}
	return 0, false
}
