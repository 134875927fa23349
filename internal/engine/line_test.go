package engine

import "testing"

func TestReduceLine(t *testing.T) {
	tests := []struct {
		name     string
		input    Line
		expected Line
		points   int
	}{
		{
			name:     "four equal tiles merge pairwise",
			input:    Line{2, 2, 2, 2},
			expected: Line{4, 4, 0, 0},
			points:   8,
		},
		{
			name:     "three equal tiles",
			input:    Line{2, 2, 2, 0},
			expected: Line{4, 2, 0, 0},
			points:   4,
		},
		{
			name:     "gaps between equal tiles",
			input:    Line{2, 0, 2, 0},
			expected: Line{4, 0, 0, 0},
			points:   4,
		},
		{
			name:     "merged tile does not merge again",
			input:    Line{4, 2, 2, 4},
			expected: Line{4, 4, 4, 0},
			points:   4,
		},
		{
			name:     "two different pairs",
			input:    Line{2, 2, 4, 4},
			expected: Line{4, 8, 0, 0},
			points:   12,
		},
		{
			name:     "no merge possible",
			input:    Line{2, 4, 8, 16},
			expected: Line{2, 4, 8, 16},
			points:   0,
		},
		{
			name:     "slide only",
			input:    Line{0, 0, 4, 2},
			expected: Line{4, 2, 0, 0},
			points:   0,
		},
		{
			name:     "outer tiles merge across gaps",
			input:    Line{8, 0, 0, 8},
			expected: Line{16, 0, 0, 0},
			points:   16,
		},
		{
			name:     "empty line",
			input:    Line{},
			expected: Line{},
			points:   0,
		},
		{
			name:     "single tile",
			input:    Line{0, 0, 0, 32},
			expected: Line{32, 0, 0, 0},
			points:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, points := ReduceLine(tt.input)
			if result != tt.expected {
				t.Errorf("ReduceLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if points != tt.points {
				t.Errorf("ReduceLine(%v) points = %d, want %d", tt.input, points, tt.points)
			}
		})
	}
}

func TestMergeCompactedTiles(t *testing.T) {
	merged, points := merge([]int{2, 2, 2})
	if len(merged) != 2 || merged[0] != 4 || merged[1] != 2 {
		t.Errorf("merge([2 2 2]) = %v, want [4 2]", merged)
	}
	if points != 4 {
		t.Errorf("merge([2 2 2]) points = %d, want 4", points)
	}

	merged, points = merge(nil)
	if len(merged) != 0 || points != 0 {
		t.Errorf("merge(nil) = %v, %d, want empty, 0", merged, points)
	}
}

func TestReduceLineDoesNotModifyInput(t *testing.T) {
	input := Line{2, 2, 0, 4}
	ReduceLine(input)
	if input != (Line{2, 2, 0, 4}) {
		t.Errorf("input line changed to %v", input)
	}
}
