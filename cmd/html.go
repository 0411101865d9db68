package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adidesxdi/sudoku-cli-ai-orchestration/internal/board"
	"github.com/adidesxdi/sudoku-cli-ai-orchestration/internal/generator"
)

// writeHTML creates a printable HTML file with one puzzle per page,
// each followed by its solution.
func writeHTML(filename string, puzzles []*generator.Puzzle) error {
	if filepath.Ext(filename) != ".html" {
		filename += ".html"
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	_, err = fmt.Fprint(file, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Sudoku Puzzles</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .page {
            page-break-after: always;
            background-color: white;
            padding: 40px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .page:last-child {
            page-break-after: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 30px;
            text-align: center;
        }
        h2 {
            color: #666;
            margin-top: 20px;
            margin-bottom: 15px;
            font-size: 1.2em;
        }
        .sudoku-grid {
            display: inline-block;
            border: 3px solid #000;
            margin: 20px auto;
            font-family: 'Courier New', monospace;
            font-size: 24px;
            line-height: 1.5;
        }
        .sudoku-grid table {
            border-collapse: collapse;
            margin: 0 auto;
        }
        .sudoku-grid td {
            width: 40px;
            height: 40px;
            text-align: center;
            vertical-align: middle;
            border: 1px solid #333;
            padding: 0;
        }
        .sudoku-grid td.empty {
            color: #ccc;
        }
        .sudoku-grid tr:nth-child(3n) td {
            border-bottom: 2px solid #000;
        }
        .sudoku-grid td:nth-child(3n) {
            border-right: 2px solid #000;
        }
        @media print {
            body {
                background-color: white;
            }
            .page {
                margin-bottom: 0;
                box-shadow: none;
            }
        }
    </style>
</head>
<body>
`)
	if err != nil {
		return err
	}

	for i, p := range puzzles {
		_, err = fmt.Fprintf(file, `    <div class="page">
        <h1>Sudoku Puzzle #%d (%s)</h1>
        <h2>Puzzle</h2>
        %s
        <h2>Solution</h2>
        %s
    </div>
`, i+1, p.Difficulty, gridToHTML(p.Puzzle), gridToHTML(p.Solution))
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprint(file, `</body>
</html>
`)
	return err
}

// gridToHTML converts a grid to an HTML table representation.
func gridToHTML(g board.Grid) string {
	var sb strings.Builder
	sb.WriteString("<div class=\"sudoku-grid\"><table>")

	for row := 0; row < 9; row++ {
		sb.WriteString("<tr>")
		for col := 0; col < 9; col++ {
			val := g[board.MakePos(row, col)]
			cellClass := ""
			cellContent := ""

			if val == board.EmptyCell {
				cellClass = "empty"
				cellContent = "·"
			} else {
				cellContent = fmt.Sprintf("%d", val)
			}

			sb.WriteString(fmt.Sprintf("<td class=\"%s\">%s</td>", cellClass, cellContent))
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table></div>")
	return sb.String()
}
