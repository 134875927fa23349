// Package tui provides the Bubble Tea front end for 2048 and the SSH server
// that serves it to remote terminals.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/render"
	"github.com/vovakirdan/tui-2048/internal/session"
)

// styles groups the non-board styles of the view.
type styles struct {
	title    lipgloss.Style
	hud      lipgloss.Style
	gameOver lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		hud:      r.NewStyle().Foreground(lipgloss.Color("250")),
		gameOver: r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

// Model is the Bubble Tea model for one game.
type Model struct {
	sess     *session.Session
	keys     KeyMap
	board    *render.Board
	help     help.Model
	styles   styles
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for the given session.
// A nil renderer uses lipgloss' default; a nil logger uses log.Default().
func NewModel(sess *session.Session, cfg config.TUIConfig, r *lipgloss.Renderer, logger *log.Logger) Model {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		sess:   sess,
		keys:   NewKeyMap(cfg.Keys),
		board:  render.NewBoard(cfg.Theme, r),
		help:   help.New(),
		styles: newStyles(r),
		logger: logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Debug("quit", "score", m.sess.Score(), "moves", m.sess.Moves())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if m.sess.Finished() {
			m.logger.Debug("restart", "score", m.sess.Score())
			m.sess.Reset()
		}
		return m, nil
	}

	if m.sess.Finished() {
		return m, nil
	}

	dir, ok := m.keys.Direction(msg)
	if !ok {
		return m, nil
	}

	points, err := m.sess.Move(dir)
	if err != nil {
		m.logger.Error("move rejected", "direction", dir, "error", err)
		return m, nil
	}
	m.logger.Debug("move", "direction", dir, "points", points, "score", m.sess.Score())
	if m.sess.Finished() {
		m.logger.Debug("game over", "score", m.sess.Score(), "max_tile", m.sess.MaxTile(), "moves", m.sess.Moves())
	}

	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := " "
	if m.sess.Finished() {
		status = m.styles.gameOver.Render("No move left: game over. Press r to restart.")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.title.Render("2048"),
		m.styles.hud.Render(fmt.Sprintf("Score: %d   Max: %d   Moves: %d",
			m.sess.Score(), m.sess.MaxTile(), m.sess.Moves())),
		m.board.Render(m.sess.Grid()),
		status,
		m.help.View(m.keys),
	)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Session returns the session driven by the model.
func (m Model) Session() *session.Session {
	return m.sess
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
