package mines

import "log/slog"

type Outcome int8

const (
	NoOp Outcome = iota
	Opened
	HitMine
)

func (o Outcome) String() string {
	switch o {
	case NoOp:
		return "noop"
	case Opened:
		return "opened"
	case HitMine:
		return "hit mine"
	default:
		return "unknown"
	}
}

// RevealResult tells what a move did. Count is the number of safe cells it
// opened.
type RevealResult struct {
	Outcome Outcome
	Count   int
}

// Reveal opens the cell at row, col. Moves on a finished game, outside the
// board, or on an open or flagged cell do nothing.
func (g *Game) Reveal(row, col int) RevealResult {
	if g.status.Terminal() || !g.board.PointInBounds(row, col) {
		return RevealResult{}
	}
	i := g.board.index(row, col)
	if g.board.cells[i].State != Closed {
		return RevealResult{}
	}
	if g.status == Ready {
		g.begin(i)
	}
	return g.open(i)
}

// Chord opens every closed neighbour of an open number once the player has
// placed as many flags around it as the number says.
func (g *Game) Chord(row, col int) RevealResult {
	if g.status != Running || !g.board.PointInBounds(row, col) {
		return RevealResult{}
	}
	cells := g.board.cells
	i := g.board.index(row, col)
	if cells[i].State != Open || cells[i].Mine || cells[i].Adjacent == 0 {
		return RevealResult{}
	}

	flags := 0
	todo := make([]int, 0, 8)
	g.board.neighbours(i, func(j int) {
		switch cells[j].State {
		case Flagged:
			flags++
		case Closed:
			todo = append(todo, j)
		}
	})
	if flags != int(cells[i].Adjacent) || len(todo) == 0 {
		return RevealResult{}
	}

	res := RevealResult{Outcome: Opened}
	for _, j := range todo {
		/* an earlier cascade may already have reached it */
		if cells[j].State != Closed {
			continue
		}
		r := g.open(j)
		res.Count += r.Count
		if r.Outcome == HitMine {
			res.Outcome = HitMine
		}
		if g.status.Terminal() {
			break
		}
	}
	return res
}

// begin moves a Ready game to Running, laying out mines around the first
// cell if that has not happened yet.
func (g *Game) begin(first int) {
	if !g.board.placed {
		start := g.board.point(first)
		g.board.placeMines(&start, g.rnd)
		g.log.Debug("mines placed", slog.String("start", start.String()))
	}
	g.status = Running
	g.timer.Start()
}

func (g *Game) open(i int) RevealResult {
	if g.board.cells[i].Mine {
		g.board.cells[i].State = Open
		g.exploded = i
		g.finish(Lost)
		return RevealResult{Outcome: HitMine}
	}

	n := g.flood(i)
	g.opened += n
	if g.opened == g.board.Cells()-g.board.MineCount {
		g.finish(Won)
	}
	return RevealResult{Outcome: Opened, Count: n}
}

// flood opens the safe cell at start and, while it keeps finding cells with
// no mined neighbours, everything around them. A cell is pushed only when it
// goes from Closed to Open, so Open doubles as the visited set. Flagged cells
// are never opened.
func (g *Game) flood(start int) int {
	cells := g.board.cells
	cells[start].State = Open
	count := 1

	var stack []int
	if cells[start].Adjacent == 0 {
		stack = append(stack, start)
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		g.board.neighbours(i, func(j int) {
			if cells[j].State != Closed || cells[j].Mine {
				return
			}
			cells[j].State = Open
			count++
			if cells[j].Adjacent == 0 {
				stack = append(stack, j)
			}
		})
	}
	return count
}
