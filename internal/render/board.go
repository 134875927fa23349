package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	cellWidth  = 6
	cellHeight = 3
)

// Board renders grids as coloured tiles.
type Board struct {
	theme    config.ThemeConfig
	renderer *lipgloss.Renderer
	frame    lipgloss.Style
	styles   map[int]lipgloss.Style
}

// NewBoard creates a board renderer. A nil renderer uses lipgloss' default,
// SSH sessions pass the renderer bound to their own terminal.
func NewBoard(theme config.ThemeConfig, r *lipgloss.Renderer) *Board {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Board{
		theme:    theme,
		renderer: r,
		frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)),
		styles: make(map[int]lipgloss.Style),
	}
}

// style returns the cached style for a tile value.
func (b *Board) style(value int) lipgloss.Style {
	if s, ok := b.styles[value]; ok {
		return s
	}

	c := b.theme.TileColor(value)
	s := b.renderer.NewStyle().
		Width(cellWidth).
		Height(cellHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(lipgloss.Color(c.Foreground)).
		Background(lipgloss.Color(c.Background))
	if value >= 8 {
		s = s.Bold(true)
	}

	b.styles[value] = s
	return s
}

// Cell renders a single tile.
func (b *Board) Cell(value int) string {
	label := EmptyCell
	if value != 0 {
		label = strconv.Itoa(value)
	}
	return b.style(value).Render(label)
}

// Render draws the whole grid inside a rounded frame.
func (b *Board) Render(g engine.Grid) string {
	rows := make([]string, 0, engine.Size)
	for _, row := range g {
		cells := make([]string, 0, engine.Size)
		for _, v := range row {
			cells = append(cells, b.Cell(v))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return b.frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
