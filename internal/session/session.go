// Package session pairs a grid with its running score and drives the engine
// move by move. It is the caller-side loop state shared by every shell.
package session

import (
	"errors"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// ErrFinished is returned by Move once the finished flag has been observed.
var ErrFinished = errors.New("session: game is finished")

// Session holds one game in progress.
type Session struct {
	engine   *engine.Engine
	grid     engine.Grid
	score    int
	moves    int
	finished bool
}

// New starts a game on the given engine.
func New(e *engine.Engine) *Session {
	s := &Session{engine: e}
	s.Reset()
	return s
}

// Reset discards the current game and starts a fresh one.
func (s *Session) Reset() {
	s.grid, s.score = s.engine.NewGame()
	s.moves = 0
	s.finished = false
}

// Move applies d and accumulates the points it scored.
// The finished flag is the one reported by the engine for this move.
func (s *Session) Move(d engine.Direction) (int, error) {
	if s.finished {
		return 0, ErrFinished
	}

	grid, points, finished := s.engine.ApplyMove(s.grid, d)
	if grid != s.grid {
		s.moves++
	}

	s.grid = grid
	s.score += points
	s.finished = finished
	return points, nil
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() engine.Grid {
	return s.grid
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	return s.score
}

// Moves returns the number of moves that changed the grid.
func (s *Session) Moves() int {
	return s.moves
}

// Finished reports whether the engine has flagged the game as over.
func (s *Session) Finished() bool {
	return s.finished
}

// MaxTile returns the largest tile reached so far.
func (s *Session) MaxTile() int {
	return engine.MaxTile(s.grid)
}
