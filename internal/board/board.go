package board

import (
	"fmt"
	"strings"
)

// Special cell values
const (
	EmptyCell = 0
	CellCount = 81
)

// Grid is a 9×9 Sudoku grid stored row-major: index = 9*row + col.
// EmptyCell marks a blank. Grid is a value type; assignment copies it,
// so callers never share mutable state.
type Grid [CellCount]int

// Parse builds a Grid from an 81-character string.
// Use '.' or '0' for empty cells, '1'-'9' for filled cells.
func Parse(s string) (Grid, error) {
	var g Grid
	if len(s) != CellCount {
		return g, fmt.Errorf("%w: got %d characters", ErrBadLength, len(s))
	}
	for pos := 0; pos < CellCount; pos++ {
		ch := s[pos]
		switch {
		case ch == '.' || ch == '0':
			// Empty cell, already zero
		case ch >= '1' && ch <= '9':
			g[pos] = int(ch - '0')
		default:
			return Grid{}, fmt.Errorf("%w: character '%c' at position %d", ErrBadCell, ch, pos)
		}
	}
	return g, nil
}

// FromCells builds a Grid from a raw cell slice, rejecting wrong lengths
// and out-of-range values.
func FromCells(cells []int) (Grid, error) {
	var g Grid
	if len(cells) != CellCount {
		return g, fmt.Errorf("%w: got %d cells", ErrBadLength, len(cells))
	}
	for pos, v := range cells {
		if v < 0 || v > 9 {
			return Grid{}, fmt.Errorf("%w: value %d at position %d", ErrBadCell, v, pos)
		}
		g[pos] = v
	}
	return g, nil
}

// Row returns the 9 values of row r in column order.
func (g *Grid) Row(r int) [9]int {
	var out [9]int
	for c := 0; c < 9; c++ {
		out[c] = g[9*r+c]
	}
	return out
}

// Column returns the 9 values of column c in row order.
func (g *Grid) Column(c int) [9]int {
	var out [9]int
	for r := 0; r < 9; r++ {
		out[r] = g[9*r+c]
	}
	return out
}

// Box returns the 9 values of box b, row-major within the box.
// Boxes tile the grid row-major: box 0 covers rows 0-2/cols 0-2,
// box 1 covers rows 0-2/cols 3-5, box 8 covers rows 6-8/cols 6-8.
func (g *Grid) Box(b int) [9]int {
	var out [9]int
	r0, c0 := 3*(b/3), 3*(b%3)
	for i := 0; i < 9; i++ {
		out[i] = g[9*(r0+i/3)+c0+i%3]
	}
	return out
}

// Allows reports whether placing val at pos keeps the grid legal:
// val must be absent from the cell's row, column, and box.
// The cell itself is not inspected; callers place into empty cells.
func (g *Grid) Allows(pos, val int) bool {
	for _, v := range g.Row(posToRow[pos]) {
		if v == val {
			return false
		}
	}
	for _, v := range g.Column(posToCol[pos]) {
		if v == val {
			return false
		}
	}
	for _, v := range g.Box(posToBox[pos]) {
		if v == val {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the Grid.
func (g *Grid) Clone() Grid {
	return *g
}

// ClueCount returns the number of filled cells.
func (g *Grid) ClueCount() int {
	n := 0
	for _, v := range g {
		if v != EmptyCell {
			n++
		}
	}
	return n
}

// FirstEmpty returns the lowest position holding EmptyCell.
// The second return is false when the grid is full.
func (g *Grid) FirstEmpty() (int, bool) {
	for pos, v := range g {
		if v == EmptyCell {
			return pos, true
		}
	}
	return 0, false
}

// String returns the grid as an 81-character string.
// Empty cells are represented as '.', filled cells as '1'-'9'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range g {
		if cell == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(cell))
		}
	}

	return sb.String()
}

// Format returns a human-readable grid representation with box borders.
func (g *Grid) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for row := 0; row < 9; row++ {
		sb.WriteString("| ")
		for col := 0; col < 9; col++ {
			val := g[MakePos(row, col)]
			if val == EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(val))
			}
			sb.WriteByte(' ')

			if (col+1)%3 == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%3 == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}

// Precomputed lookup tables mapping a linear position to its row, column,
// and box. The box formula matches the row-major 3×3 tiling.
var (
	posToRow [CellCount]int
	posToCol [CellCount]int
	posToBox [CellCount]int
)

// MakePos transforms a row and column into a linear position.
func MakePos(row, col int) int {
	return 9*row + col
}

func init() {
	for pos := 0; pos < CellCount; pos++ {
		posToRow[pos] = pos / 9
		posToCol[pos] = pos % 9
		posToBox[pos] = 3*(pos/27) + (pos%9)/3
	}
}
