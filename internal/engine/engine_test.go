package engine

import "testing"

// fixedRand returns the queued indexes in order, wrapping each into [0, n).
type fixedRand struct {
	picks []int
	calls []int // n passed to each IntN call
}

func (r *fixedRand) IntN(n int) int {
	r.calls = append(r.calls, n)
	if len(r.picks) == 0 {
		return 0
	}
	v := r.picks[0]
	r.picks = r.picks[1:]
	return v % n
}

func TestNewGame(t *testing.T) {
	rng := &fixedRand{picks: []int{0, 0}}
	e := New(rng)

	g, score := e.NewGame()

	if score != 0 {
		t.Errorf("NewGame score = %d, want 0", score)
	}
	if countTiles(g) != 2 {
		t.Fatalf("NewGame should have 2 tiles, got %d:\n%v", countTiles(g), g)
	}
	if g[0][0] != 2 || g[0][1] != 2 {
		t.Errorf("NewGame tiles misplaced:\n%v", g)
	}

	// The second spawn sees one fewer empty cell.
	if len(rng.calls) != 2 || rng.calls[0] != 16 || rng.calls[1] != 15 {
		t.Errorf("IntN calls = %v, want [16 15]", rng.calls)
	}
}

func TestNewGameTilesAreTwos(t *testing.T) {
	e := NewSeeded(42)
	for i := 0; i < 50; i++ {
		g, _ := e.NewGame()
		if countTiles(g) != 2 {
			t.Fatalf("game %d has %d tiles", i, countTiles(g))
		}
		if sum(g) != 4 {
			t.Fatalf("game %d tiles are not both 2:\n%v", i, g)
		}
	}
}

func TestNewSeededIsDeterministic(t *testing.T) {
	a, _ := NewSeeded(7).NewGame()
	b, _ := NewSeeded(7).NewGame()
	if a != b {
		t.Errorf("same seed gave different grids:\n%v\n\n%v", a, b)
	}
}

func TestSpawnDoesNotModifyInput(t *testing.T) {
	e := New(&fixedRand{})
	var g Grid
	spawned := e.Spawn(g)

	if countTiles(g) != 0 {
		t.Errorf("input grid was modified:\n%v", g)
	}
	if countTiles(spawned) != 1 || spawned[0][0] != SpawnValue {
		t.Errorf("Spawn result:\n%v", spawned)
	}
}

func TestSpawnPicksAmongEmptyCells(t *testing.T) {
	g := Grid{
		{2, 4, 2, 4},
		{4, 0, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 0, 2},
	}
	rng := &fixedRand{picks: []int{1}}
	spawned := New(rng).Spawn(g)

	if rng.calls[0] != 2 {
		t.Errorf("IntN called with %d, want 2 empty cells", rng.calls[0])
	}
	if spawned[3][2] != 2 || spawned[1][1] != 0 {
		t.Errorf("Spawn should fill the second empty cell:\n%v", spawned)
	}
}

func TestSpawnIsUniform(t *testing.T) {
	e := NewSeeded(1234)
	counts := make(map[Cell]int)
	const rounds = 16000

	var empty Grid
	for i := 0; i < rounds; i++ {
		g := e.Spawn(empty)
		for r := range Size {
			for c := range Size {
				if g[r][c] != 0 {
					counts[Cell{r, c}]++
				}
			}
		}
	}

	want := rounds / (Size * Size)
	for r := range Size {
		for c := range Size {
			got := counts[Cell{r, c}]
			if got < want-200 || got > want+200 {
				t.Errorf("cell (%d,%d) chosen %d times, want about %d", r, c, got, want)
			}
		}
	}
}

func TestSpawnPanicsOnFullGrid(t *testing.T) {
	full := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	defer func() {
		if recover() == nil {
			t.Error("Spawn on a full grid should panic")
		}
	}()
	New(&fixedRand{}).Spawn(full)
}

func TestApplyMoveNullMove(t *testing.T) {
	g := Grid{
		{2, 4, 0, 0},
		{8, 0, 0, 0},
		{16, 2, 8, 0},
		{0, 0, 0, 0},
	}
	rng := &fixedRand{}
	e := New(rng)

	result, points, finished := e.ApplyMove(g, Left)

	if result != g {
		t.Errorf("null move changed the grid:\n%v", result)
	}
	if points != 0 {
		t.Errorf("null move points = %d, want 0", points)
	}
	if finished {
		t.Error("grid with empty cells reported finished")
	}
	if len(rng.calls) != 0 {
		t.Errorf("null move must not spawn, IntN called %d times", len(rng.calls))
	}
}

func TestApplyMoveSpawnsOneTile(t *testing.T) {
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			e := NewSeeded(99)
			moved, _ := Slide(sample, d)

			result, points, finished := e.ApplyMove(sample, d)

			if finished {
				t.Error("finished should be false")
			}
			if countTiles(result) != countTiles(moved)+1 {
				t.Errorf("tiles = %d, want %d", countTiles(result), countTiles(moved)+1)
			}
			if sum(result) != sum(sample)+SpawnValue {
				t.Errorf("sum = %d, want %d", sum(result), sum(sample)+SpawnValue)
			}

			diff := 0
			for r := range Size {
				for c := range Size {
					if result[r][c] != moved[r][c] {
						diff++
						if moved[r][c] != 0 || result[r][c] != SpawnValue {
							t.Errorf("cell (%d,%d) = %d over %d", r, c, result[r][c], moved[r][c])
						}
					}
				}
			}
			if diff != 1 {
				t.Errorf("%d cells differ from the slid grid, want 1", diff)
			}

			if _, wantPoints := Slide(sample, d); points != wantPoints {
				t.Errorf("points = %d, want %d", points, wantPoints)
			}
		})
	}
}

func TestApplyMoveDoesNotModifyInput(t *testing.T) {
	g := sample
	New(&fixedRand{}).ApplyMove(g, Right)
	if g != sample {
		t.Errorf("input grid was modified:\n%v", g)
	}
}

func TestApplyMoveFinishedReflectsPreMoveGrid(t *testing.T) {
	g := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{0, 8, 16, 4},
	}
	e := New(&fixedRand{})

	result, points, finished := e.ApplyMove(g, Left)
	if finished {
		t.Error("pre-move grid had an empty cell, finished should be false")
	}
	if points != 0 {
		t.Errorf("points = %d, want 0", points)
	}
	want := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{8, 16, 4, 2},
	}
	if result != want {
		t.Fatalf("got\n%v\nwant\n%v", result, want)
	}
	if !IsTerminal(result) {
		t.Fatal("resulting grid should be terminal")
	}

	for _, d := range Directions {
		again, points, finished := e.ApplyMove(result, d)
		if !finished {
			t.Errorf("%v on terminal grid: finished = false", d)
		}
		if again != result || points != 0 {
			t.Errorf("%v on terminal grid changed it", d)
		}
	}
}

func TestApplyMovePanicsOnInvalidDirection(t *testing.T) {
	for _, d := range []Direction{-1, 4, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ApplyMove(%d) should panic", int(d))
				}
			}()
			New(&fixedRand{}).ApplyMove(sample, d)
		}()
	}
}

func TestGridHelpers(t *testing.T) {
	g := Grid{
		{2, 0, 0, 0},
		{0, 2048, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
	}

	if countTiles(g) != 3 {
		t.Errorf("countTiles = %d, want 3", countTiles(g))
	}
	if sum(g) != 2054 {
		t.Errorf("sum = %d, want 2054", sum(g))
	}
	if MaxTile(g) != 2048 {
		t.Errorf("MaxTile = %d, want 2048", MaxTile(g))
	}
	if n := len(EmptyCells(g)); n != 13 {
		t.Errorf("EmptyCells = %d cells, want 13", n)
	}
	if first := EmptyCells(g)[0]; first != (Cell{0, 1}) {
		t.Errorf("first empty cell = %v, want {0 1}", first)
	}

	want := "2 . . .\n. 2048 . .\n. . 4 .\n. . . ."
	if g.String() != want {
		t.Errorf("String() = %q, want %q", g.String(), want)
	}
}

func countTiles(g Grid) int {
	return Size*Size - len(EmptyCells(g))
}

func sum(g Grid) int {
	total := 0
	for r := range Size {
		for c := range Size {
			total += g[r][c]
		}
	}
	return total
}
