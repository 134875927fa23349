package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/platform/plain"
	"github.com/vovakirdan/tui-2048/internal/session"
)

var flagNoClear bool

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Play in line-based text mode",
	Long: `Start a line-based game: the board is printed after every move and
one command is read per line.

Commands (configurable under text.tokens):
  g = left | d = right | h = up | b = down | q = quit

The terminal is cleared before each redraw unless --no-clear is given
or standard output is not a terminal.

Examples:
  t2048 text
  t2048 text --no-clear
  printf 'g\nh\nq\n' | t2048 --seed 1 text`,
	Args: cobra.NoArgs,
	RunE: runText,
}

func init() {
	textCmd.Flags().BoolVar(&flagNoClear, "no-clear", false, "Do not clear the terminal between moves")
}

func runText(_ *cobra.Command, _ []string) error {
	tokens, err := tokenMap(cfg.Text.Tokens)
	if err != nil {
		return err
	}

	clearScreen := cfg.Text.Clear && !flagNoClear && term.IsTerminal(int(os.Stdout.Fd()))

	sess := session.New(engine.NewSeeded(cfg.Seed))
	shell := plain.New(sess, os.Stdin, os.Stdout, plain.Options{
		Clear:  clearScreen,
		Tokens: tokens,
		Logger: log.Default(),
	})
	return shell.Run()
}

// tokenMap converts configured tokens into a session.TokenMap.
func tokenMap(tc config.TokenConfig) (*session.TokenMap, error) {
	return session.NewTokenMap(map[engine.Direction][]string{
		engine.Left:  tc.Left,
		engine.Right: tc.Right,
		engine.Up:    tc.Up,
		engine.Down:  tc.Down,
	}, tc.Quit)
}
