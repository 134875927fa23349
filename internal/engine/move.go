package engine

import "fmt"

// Direction is the side tiles slide towards.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every valid direction.
var Directions = [...]Direction{Left, Right, Up, Down}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// reverseLine flips a line end to end.
func reverseLine(line Line) Line {
	var result Line
	for i := range Size {
		result[i] = line[Size-1-i]
	}
	return result
}

// ReverseRows flips every row left to right.
func ReverseRows(g Grid) Grid {
	var result Grid
	for r := range Size {
		result[r] = reverseLine(g[r])
	}
	return result
}

// Transpose swaps rows and columns.
func Transpose(g Grid) Grid {
	var result Grid
	for r := range Size {
		for c := range Size {
			result[r][c] = g[c][r]
		}
	}
	return result
}

// MoveLeft reduces every row and returns the new grid with the points scored.
func MoveLeft(g Grid) (Grid, int) {
	var result Grid
	total := 0
	for r := range Size {
		line, points := ReduceLine(g[r])
		result[r] = line
		total += points
	}
	return result, total
}

// MoveRight is MoveLeft on the mirrored grid.
func MoveRight(g Grid) (Grid, int) {
	moved, points := MoveLeft(ReverseRows(g))
	return ReverseRows(moved), points
}

// MoveUp is MoveLeft on the transposed grid.
func MoveUp(g Grid) (Grid, int) {
	moved, points := MoveLeft(Transpose(g))
	return Transpose(moved), points
}

// MoveDown is MoveRight on the transposed grid.
func MoveDown(g Grid) (Grid, int) {
	moved, points := MoveRight(Transpose(g))
	return Transpose(moved), points
}

// Slide applies the move for d without spawning.
// It panics if d is not a valid direction.
func Slide(g Grid, d Direction) (Grid, int) {
	switch d {
	case Left:
		return MoveLeft(g)
	case Right:
		return MoveRight(g)
	case Up:
		return MoveUp(g)
	case Down:
		return MoveDown(g)
	default:
		panic(fmt.Sprintf("engine: invalid direction %d", int(d)))
	}
}
