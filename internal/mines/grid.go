package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

type CellState int8

const (
	Closed CellState = iota
	Open
	Flagged
)

func (s CellState) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Flagged:
		return "flagged"
	default:
		return "CellState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Cell is one square of a [Board]. Adjacent is only meaningful when Mine is
// false.
type Cell struct {
	Mine     bool
	Adjacent int8
	State    CellState
}

// Square is what a player is allowed to know about a cell.
type Square int8

const (
	Covered     Square = -2
	Marked      Square = -1
	CorrectMark Square = 64 // post-game-over
	Exploded    Square = 65
	WrongMark   Square = 66
	HiddenMine  Square = 67
	// 0-8 for an open cell with given number of mined neighbours
)

func (s Square) String() string {
	switch {
	case s == Covered:
		return "."
	case s == Marked, s == CorrectMark:
		return "F"
	case s == Exploded:
		return "X"
	case s == WrongMark:
		return "x"
	case s == HiddenMine:
		return "*"
	case s == 0:
		return " "
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

type Grid []Square

// ToString lays the squares out width to a row, each followed by a space.
func (g Grid) ToString(width int) string {
	if width < 1 {
		return ""
	}
	var b strings.Builder
	b.Grow(2*len(g) + len(g)/width)
	for i := range g[:len(g)/width*width] {
		b.WriteString(g[i].String())
		b.WriteByte(' ')
		if (i+1)%width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
