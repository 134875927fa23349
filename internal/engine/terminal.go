package engine

// IsTerminal reports whether no move can change the grid:
// no empty cell and no equal neighbours in any row or column.
func IsTerminal(g Grid) bool {
	if len(EmptyCells(g)) != 0 {
		return false
	}

	for r := range Size {
		if canMerge(g[r]) {
			return false
		}
	}

	columns := Transpose(g)
	for c := range Size {
		if canMerge(columns[c]) {
			return false
		}
	}

	return true
}
