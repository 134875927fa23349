package engine

// compact drops empty cells, keeping tile order.
func compact(line Line) []int {
	tiles := make([]int, 0, Size)
	for _, v := range line {
		if v != 0 {
			tiles = append(tiles, v)
		}
	}
	return tiles
}

// merge combines equal neighbours left to right. A merged tile is never
// merged again in the same pass, so [2 2 2 2] gives [4 4] and not [8].
// Returns the merged tiles and the sum of the created tiles.
func merge(tiles []int) ([]int, int) {
	merged := make([]int, 0, len(tiles))
	points := 0

	for i := 0; i < len(tiles); i++ {
		if i+1 < len(tiles) && tiles[i] == tiles[i+1] {
			v := tiles[i] * 2
			merged = append(merged, v)
			points += v
			i++
			continue
		}
		merged = append(merged, tiles[i])
	}

	return merged, points
}

// pad fills the remaining width with empty cells.
func pad(tiles []int) Line {
	var line Line
	copy(line[:], tiles)
	return line
}

// ReduceLine slides a line towards index 0 and merges it.
// Returns the reduced line and the points scored.
func ReduceLine(line Line) (Line, int) {
	merged, points := merge(compact(line))
	return pad(merged), points
}

// canMerge reports whether reducing the line would merge anything.
func canMerge(line Line) bool {
	_, points := merge(compact(line))
	return points != 0
}
