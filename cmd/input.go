package cmd

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/adidesxdi/sudoku-cli-ai-orchestration/internal/board"
)

// readCellsArg interprets arg as a file path when a regular file exists
// there, otherwise as a literal grid string. Whitespace is stripped so
// files may break the grid across lines; '.' and '0' both mean blank.
// Length is not checked here — the validator owns that.
func readCellsArg(arg string) ([]int, error) {
	s := arg
	if info, err := os.Stat(arg); err == nil && info.Mode().IsRegular() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("read grid file: %w", err)
		}
		s = string(data)
	}
	s = stripSpace(s)

	cells := make([]int, 0, len(s))
	for pos, ch := range s {
		switch {
		case ch == '.' || ch == '0':
			cells = append(cells, board.EmptyCell)
		case ch >= '1' && ch <= '9':
			cells = append(cells, int(ch-'0'))
		default:
			return nil, fmt.Errorf("%w: character %q at position %d", board.ErrBadCell, ch, pos)
		}
	}
	return cells, nil
}

// readGridArg is readCellsArg plus the 81-cell length check.
func readGridArg(arg string) (board.Grid, error) {
	cells, err := readCellsArg(arg)
	if err != nil {
		return board.Grid{}, err
	}
	return board.FromCells(cells)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
