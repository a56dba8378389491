package console

import (
	"fmt"
	"io"

	"github.com/vancomm/minesweeper/internal/mines"
)

const maxCounter = 999

// Counters formats the flag counter and the clock the way a three digit
// seven segment display shows them.
func Counters(g *mines.Game) (flags string, clock string) {
	flags = fmt.Sprintf("%03d", clamp(g.FlagsRemaining(), 0, maxCounter))
	clock = fmt.Sprintf("%03d", clamp(g.Elapsed(), 0, maxCounter))
	return
}

func banner(status mines.Status) string {
	switch status {
	case mines.Won:
		return "you win!"
	case mines.Lost:
		return "game over"
	default:
		return status.String()
	}
}

// Render writes a status line followed by the board.
func Render(w io.Writer, g *mines.Game) error {
	flags, clock := Counters(g)
	_, err := fmt.Fprintf(w, "%s  %s  %s  %s\n%s",
		flags, banner(g.Status()), clock, g.Params(),
		g.Grid().ToString(g.Width()),
	)
	return err
}

func (s *Session) render() error {
	return Render(s.out, s.game)
}
