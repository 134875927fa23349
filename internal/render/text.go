// Package render turns grids into text: a plain tab-separated form for the
// line-based shell and a lipgloss board for the full-screen shell.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// EmptyCell is printed for cells without a tile.
const EmptyCell = "."

// Text writes the grid surrounded by blank lines, one row per line,
// every cell followed by a tab.
func Text(w io.Writer, g engine.Grid) error {
	var sb strings.Builder
	sb.WriteByte('\n')
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				sb.WriteString(EmptyCell)
			} else {
				sb.WriteString(strconv.Itoa(v))
			}
			sb.WriteByte('\t')
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// Score writes the score line.
func Score(w io.Writer, score int) error {
	_, err := fmt.Fprintf(w, "SCORE : %d\n", score)
	return err
}
