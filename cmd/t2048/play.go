package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/session"
)

// playLogFile receives the model's debug log when --verbose is set.
const playLogFile = "t2048-debug.log"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in full-screen mode",
	Long: `Start a full-screen game.

Controls (configurable under tui.keys):
  Arrows/WASD  - Slide tiles
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

With --verbose, debug output goes to ` + playLogFile + ` in the current
directory; the terminal belongs to the game.

Examples:
  t2048 play
  t2048 --seed 7 play`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs a terminal; use 't2048 text' instead")
	}

	logger, closeLog, err := playLogger(flagVerbose, playLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	sess := session.New(engine.NewSeeded(cfg.Seed))
	model := tui.NewModel(sess, cfg.TUI, nil, logger)

	if err := tui.Run(model); err != nil {
		return err
	}

	logger.Debug("game ended", "score", sess.Score(), "moves", sess.Moves(), "max_tile", sess.MaxTile())
	return nil
}

// playLogger returns the logger handed to the full-screen model. Bubble Tea
// owns the terminal, so nothing may reach stderr: the logger discards
// everything unless verbose, in which case it writes to path.
func playLogger(verbose bool, path string) (*log.Logger, func(), error) {
	if !verbose {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := tea.LogToFile(path, "t2048")
	if err != nil {
		return nil, nil, fmt.Errorf("opening debug log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
	})
	return logger, func() { _ = f.Close() }, nil
}
