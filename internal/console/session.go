package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/vancomm/minesweeper/internal/mines"
)

var ErrInvalidSquare = errors.New("invalid square coordinates")

type Option func(*Session)

func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.rnd = r
	}
}

// WithTimer sets the clock shared by every game of the session.
func WithTimer(t mines.Timer) Option {
	return func(s *Session) {
		s.timer = t
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// Session drives one game at a time from text commands and writes the
// board after every command.
type Session struct {
	mu     sync.Mutex
	out    io.Writer
	params mines.GameParams
	game   *mines.Game
	rnd    *rand.Rand
	timer  mines.Timer
	log    *slog.Logger
}

func NewSession(params mines.GameParams, out io.Writer, opts ...Option) (*Session, error) {
	s := &Session{
		out:    out,
		params: params,
		log:    mines.Log,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.timer == nil {
		s.timer = mines.NewStopwatch()
	}
	if err := s.start(params); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) start(params mines.GameParams) error {
	opts := []mines.Option{mines.WithLogger(s.log), mines.WithTimer(s.timer)}
	if s.rnd != nil {
		opts = append(opts, mines.WithRand(s.rnd))
	}
	game, err := mines.NewGame(params, opts...)
	if err != nil {
		return fmt.Errorf("unable to start game %s: %w", params, err)
	}
	if s.game != nil {
		s.game.Close()
	}
	s.timer.Reset()
	s.game = game
	s.params = params
	return nil
}

// Game returns the game currently in play.
func (s *Session) Game() *mines.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game
}

// Execute runs a single command line. Blank lines are ignored.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	cmd, err := parseCommand(line)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch cmd.name {
	case "o", "f", "c":
		p, err := parsePoint(cmd.args)
		if err != nil {
			return err
		}
		if !s.game.Params().PointInBounds(p.Row, p.Col) {
			return fmt.Errorf("%w %s", ErrInvalidSquare, p)
		}
		switch cmd.name {
		case "o":
			res := s.game.Reveal(p.Row, p.Col)
			s.log.Debug("reveal", "point", p, "outcome", res.Outcome, "count", res.Count)
		case "f":
			s.game.ToggleFlag(p.Row, p.Col)
		case "c":
			res := s.game.Chord(p.Row, p.Col)
			s.log.Debug("chord", "point", p, "outcome", res.Outcome, "count", res.Count)
		}
	case "n":
		var arg string
		if len(cmd.args) > 0 {
			arg = cmd.args[0]
		}
		params, err := parseNewGame(arg, s.params)
		if err != nil {
			return err
		}
		if err := s.start(params); err != nil {
			return err
		}
	case "g":
	case "r":
		s.game.Forfeit()
	case "q":
		return ErrQuit
	case "h":
		_, err := io.WriteString(s.out, helpText)
		return err
	}
	return s.render()
}

// Serve executes lines until the channel closes, the context is done, or
// a q command arrives, in which case ErrQuit is returned. Command errors
// are reported to the player and do not stop the session.
func (s *Session) Serve(ctx context.Context, lines <-chan string) error {
	s.mu.Lock()
	err := s.render()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case text, ok := <-lines:
			if !ok {
				return nil
			}
			for _, line := range byPiece(text, "\n") {
				err := s.Execute(line)
				if errors.Is(err, ErrQuit) {
					return err
				}
				if err != nil {
					s.log.Debug("command", "line", line, "error", err)
					if _, err := fmt.Fprintf(s.out, "error: %s\n", err); err != nil {
						return err
					}
				}
			}
		}
	}
}

// Close stops the clock of the game in play.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Close()
	return nil
}
