package engine

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Rand is the random source used for tile placement.
// *rand.Rand from math/rand/v2 satisfies it; tests inject fixed sequences.
type Rand interface {
	IntN(n int) int
}

// Engine applies moves and spawns tiles.
// It is not safe for concurrent use because its random source is not.
type Engine struct {
	rng Rand
}

// New creates an engine drawing spawn positions from rng.
func New(rng Rand) *Engine {
	return &Engine{rng: rng}
}

// NewSeeded creates an engine with a PCG source.
// A zero seed uses the current time.
func NewSeeded(seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)))
}

// NewGame returns a grid holding two spawned tiles and a zero score.
func (e *Engine) NewGame() (Grid, int) {
	var g Grid
	g = e.Spawn(g)
	g = e.Spawn(g)
	return g, 0
}

// Spawn places a SpawnValue tile on an empty cell chosen uniformly at random.
// The input grid is left untouched. Spawn panics if the grid is full.
func (e *Engine) Spawn(g Grid) Grid {
	empty := EmptyCells(g)
	if len(empty) == 0 {
		panic("engine: spawn on a full grid")
	}

	cell := empty[e.rng.IntN(len(empty))]
	g[cell.Row][cell.Col] = SpawnValue
	return g
}

// ApplyMove slides g towards d. When the grid changes a tile is spawned.
// Returns the resulting grid, the points scored by merges and whether g
// was already terminal before the move.
// ApplyMove panics if d is not a valid direction.
func (e *Engine) ApplyMove(g Grid, d Direction) (Grid, int, bool) {
	if !d.Valid() {
		panic(fmt.Sprintf("engine: invalid direction %d", int(d)))
	}

	moved, points := Slide(g, d)
	finished := IsTerminal(g)

	if moved == g {
		return g, 0, finished
	}
	return e.Spawn(moved), points, finished
}
