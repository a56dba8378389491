package mines

import (
	"hash/maphash"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
)

var Log *slog.Logger = slog.Default()

type Status int8

const (
	Ready Status = iota
	Running
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game accepts no further moves.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

type Option func(*Game)

func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rnd = r
	}
}

func WithTimer(t Timer) Option {
	return func(g *Game) {
		g.timer = t
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		g.log = l
	}
}

// Game is a single round of play. It is not safe for concurrent use: all
// moves are expected to come from one goroutine.
type Game struct {
	id             string
	board          *Board
	status         Status
	flagsRemaining int
	opened         int /* safe cells opened so far */
	exploded       int /* index of the mine that ended the game, or -1 */
	timer          Timer
	rnd            *rand.Rand
	log            *slog.Logger
}

// NewGame returns a game in the Ready state. Mines are laid out on the first
// reveal so that the first opened cell is always safe.
func NewGame(params GameParams, opts ...Option) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return newGame(newBoard(params), opts...), nil
}

// NewGameFromBoard starts a game on a copy of b. If b already has its mines,
// the first reveal does not move them.
func NewGameFromBoard(b *Board, opts ...Option) *Game {
	board := &Board{
		GameParams: b.GameParams,
		cells:      append([]Cell(nil), b.cells...),
		placed:     b.placed,
	}
	return newGame(board, opts...)
}

func newGame(board *Board, opts ...Option) *Game {
	g := &Game{
		id:             uuid.NewString(),
		board:          board,
		flagsRemaining: board.MineCount,
		exploded:       -1,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.timer == nil {
		g.timer = NewStopwatch()
	}
	if g.rnd == nil {
		g.rnd = createRand()
	}
	if g.log == nil {
		g.log = Log
	}
	g.log = g.log.With(slog.String("game_id", g.id))

	for _, c := range board.cells {
		switch {
		case c.State == Flagged:
			g.flagsRemaining--
		case c.State == Open && !c.Mine:
			g.opened++
		}
	}

	g.log.Debug("new game", slog.String("params", board.GameParams.String()))
	return g
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Params() GameParams {
	return g.board.GameParams
}

func (g *Game) Width() int {
	return g.board.Width
}

func (g *Game) Height() int {
	return g.board.Height
}

// FlagsRemaining is the mine count minus placed flags. It goes negative when
// the player flags more cells than there are mines.
func (g *Game) FlagsRemaining() int {
	return g.flagsRemaining
}

func (g *Game) Elapsed() int {
	return g.timer.Elapsed()
}

// Opened is the number of safe cells opened so far.
func (g *Game) Opened() int {
	return g.opened
}

// CellView is the part of a cell the presentation layer may show.
type CellView struct {
	State    CellState
	Mine     bool // set once the cell is open or the game is over
	Adjacent int  // set for open cells only
}

func (g *Game) Cell(row, col int) (CellView, bool) {
	c, ok := g.board.Cell(row, col)
	if !ok {
		return CellView{}, false
	}
	v := CellView{State: c.State}
	if c.State == Open || g.status.Terminal() {
		v.Mine = c.Mine
	}
	if c.State == Open && !c.Mine {
		v.Adjacent = int(c.Adjacent)
	}
	return v, true
}

// Exploded returns the mine that ended the game, if any.
func (g *Game) Exploded() (Point, bool) {
	if g.exploded < 0 {
		return Point{}, false
	}
	return g.board.point(g.exploded), true
}

// Grid renders player knowledge. Once the game is over every mine is shown
// and flags are marked right or wrong.
func (g *Game) Grid() Grid {
	over := g.status.Terminal()
	grid := make(Grid, len(g.board.cells))
	for i, c := range g.board.cells {
		switch c.State {
		case Open:
			if c.Mine {
				grid[i] = Exploded
			} else {
				grid[i] = Square(c.Adjacent)
			}
		case Flagged:
			switch {
			case !over:
				grid[i] = Marked
			case c.Mine:
				grid[i] = CorrectMark
			default:
				grid[i] = WrongMark
			}
		default:
			switch {
			case over && c.Mine && g.status == Won:
				grid[i] = Marked
			case over && c.Mine:
				grid[i] = HiddenMine
			default:
				grid[i] = Covered
			}
		}
	}
	return grid
}

// Forfeit ends a running game as lost. A game nobody has opened a cell in
// yet cannot be given up.
func (g *Game) Forfeit() {
	if g.status != Running {
		return
	}
	g.log.Info("forfeit")
	g.finish(Lost)
}

// Close stops the clock. The game must not be used afterwards.
func (g *Game) Close() {
	g.timer.Stop()
}

func (g *Game) finish(status Status) {
	g.status = status
	g.timer.Stop()
	g.log.Info(
		"game over",
		slog.String("status", status.String()),
		slog.Int("elapsed", g.timer.Elapsed()),
		slog.Int("opened", g.opened),
	)
}
