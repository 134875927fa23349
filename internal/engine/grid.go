// Package engine implements the rules of the 2048 sliding-tile game.
// Every operation is a pure function over Grid values: grids are arrays,
// so callers always receive fresh copies and never share cells with the engine.
package engine

import (
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// SpawnValue is the value of every tile added after an effective move.
const SpawnValue = 2

// Line is a single row (or transposed column) of the grid.
type Line [Size]int

// Grid is the 4x4 board. A zero cell is empty; any other value is a tile.
type Grid [Size]Line

// Cell addresses one square of the grid.
type Cell struct {
	Row, Col int
}

// EmptyCells returns the empty cells in row-major order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// MaxTile returns the largest tile value on the grid.
func MaxTile(g Grid) int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] > maxVal {
				maxVal = g[r][c]
			}
		}
	}
	return maxVal
}

// String renders the grid as space separated rows, "." for empty cells.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if g[r][c] == 0 {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(strconv.Itoa(g[r][c]))
		}
	}
	return sb.String()
}
