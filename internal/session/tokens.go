package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// ErrUnknownToken is returned by Parse for input that maps to nothing.
var ErrUnknownToken = errors.New("session: unknown token")

// Input is a parsed player command: either a direction or a quit request.
type Input struct {
	Direction engine.Direction
	Quit      bool
}

// TokenMap translates typed tokens into player commands.
// Tokens are matched after trimming and lowercasing.
type TokenMap struct {
	directions map[string]engine.Direction
	quit       map[string]bool
	byDir      map[engine.Direction][]string
	quitTokens []string
}

// DefaultTokens returns the single-letter tokens of the text shell:
// g (gauche), d (droite), h (haut), b (bas) and q to quit.
func DefaultTokens() *TokenMap {
	m, err := NewTokenMap(map[engine.Direction][]string{
		engine.Left:  {"g"},
		engine.Right: {"d"},
		engine.Up:    {"h"},
		engine.Down:  {"b"},
	}, []string{"q"})
	if err != nil {
		panic(err)
	}
	return m
}

// NewTokenMap builds a token map. Every direction needs at least one token
// and a token may only be bound once.
func NewTokenMap(directions map[engine.Direction][]string, quit []string) (*TokenMap, error) {
	m := &TokenMap{
		directions: make(map[string]engine.Direction),
		quit:       make(map[string]bool),
		byDir:      make(map[engine.Direction][]string),
	}
	seen := make(map[string]bool)

	bind := func(raw string) (string, error) {
		tok := normalize(raw)
		if tok == "" {
			return "", errors.New("session: empty token")
		}
		if seen[tok] {
			return "", fmt.Errorf("session: token %q bound twice", tok)
		}
		seen[tok] = true
		return tok, nil
	}

	for _, d := range engine.Directions {
		if len(directions[d]) == 0 {
			return nil, fmt.Errorf("session: no token for %s", d)
		}
		for _, raw := range directions[d] {
			tok, err := bind(raw)
			if err != nil {
				return nil, err
			}
			m.directions[tok] = d
			m.byDir[d] = append(m.byDir[d], tok)
		}
	}

	if len(quit) == 0 {
		return nil, errors.New("session: no quit token")
	}
	for _, raw := range quit {
		tok, err := bind(raw)
		if err != nil {
			return nil, err
		}
		m.quit[tok] = true
		m.quitTokens = append(m.quitTokens, tok)
	}

	return m, nil
}

// Parse maps raw input to a command.
func (m *TokenMap) Parse(raw string) (Input, error) {
	tok := normalize(raw)
	if m.quit[tok] {
		return Input{Quit: true}, nil
	}
	if d, ok := m.directions[tok]; ok {
		return Input{Direction: d}, nil
	}
	return Input{}, fmt.Errorf("%w: %q", ErrUnknownToken, tok)
}

// Tokens returns the tokens bound to d.
func (m *TokenMap) Tokens(d engine.Direction) []string {
	return m.byDir[d]
}

// QuitTokens returns the tokens that end the game.
func (m *TokenMap) QuitTokens() []string {
	return m.quitTokens
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
