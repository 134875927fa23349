// Package plain implements the line-based text shell: it prints the score
// and the grid, reads one token per line and feeds it to the session.
package plain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/render"
	"github.com/vovakirdan/tui-2048/internal/session"
)

// clearSequence moves the cursor home and erases the display.
const clearSequence = "\033[H\033[2J"

// Messages printed by the shell.
const (
	MsgGameOver = "No empty cell and no merge left: game over."
	MsgQuit     = "Quitting the game."
	MsgInvalid  = "Invalid input."
)

// Options configures a Shell.
type Options struct {
	Clear  bool              // Clear the terminal before each redraw
	Tokens *session.TokenMap // nil = session.DefaultTokens()
	Logger *log.Logger       // nil = log.Default()
}

// Shell runs one game over a reader/writer pair.
type Shell struct {
	sess   *session.Session
	in     *bufio.Reader
	out    io.Writer
	clear  bool
	tokens *session.TokenMap
	logger *log.Logger
}

// New creates a shell for the given session.
func New(sess *session.Session, in io.Reader, out io.Writer, opts Options) *Shell {
	if opts.Tokens == nil {
		opts.Tokens = session.DefaultTokens()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Shell{
		sess:   sess,
		in:     bufio.NewReader(in),
		out:    out,
		clear:  opts.Clear,
		tokens: opts.Tokens,
		logger: opts.Logger,
	}
}

// Run loops until the game is finished, the player quits or input ends.
func (s *Shell) Run() error {
	for {
		if err := s.draw(); err != nil {
			return err
		}
		if err := s.prompt(); err != nil {
			return err
		}

		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("plain: read input: %w", err)
		}
		if err != nil && line == "" {
			s.logger.Debug("input closed", "score", s.sess.Score())
			return nil
		}

		input, err := s.tokens.Parse(line)
		if errors.Is(err, session.ErrUnknownToken) {
			if err := s.println(MsgInvalid); err != nil {
				return err
			}
			continue
		}

		if input.Quit {
			return s.println(MsgQuit)
		}

		points, err := s.sess.Move(input.Direction)
		if err != nil {
			return err
		}
		s.logger.Debug("move",
			"direction", input.Direction,
			"points", points,
			"score", s.sess.Score(),
			"finished", s.sess.Finished(),
		)

		if s.sess.Finished() {
			if err := s.draw(); err != nil {
				return err
			}
			return s.println(MsgGameOver)
		}
	}
}

// draw prints the score and the grid.
func (s *Shell) draw() error {
	if s.clear {
		if _, err := io.WriteString(s.out, clearSequence); err != nil {
			return err
		}
	}
	if err := render.Score(s.out, s.sess.Score()); err != nil {
		return err
	}
	return render.Text(s.out, s.sess.Grid())
}

// prompt lists the commands and asks for one.
func (s *Shell) prompt() error {
	parts := make([]string, 0, len(engine.Directions)+1)
	for _, d := range engine.Directions {
		parts = append(parts, fmt.Sprintf("%s = %s", strings.Join(s.tokens.Tokens(d), "/"), d))
	}
	parts = append(parts, fmt.Sprintf("%s = quit", strings.Join(s.tokens.QuitTokens(), "/")))

	_, err := fmt.Fprintf(s.out, "Commands:\n  %s\nYour choice: ", strings.Join(parts, " | "))
	return err
}

func (s *Shell) println(msg string) error {
	_, err := fmt.Fprintln(s.out, msg)
	return err
}
