package mines

import "fmt"

// Board is a fixed-size grid of cells stored row by row.
type Board struct {
	GameParams
	cells  []Cell
	placed bool /* mines have been laid out */
}

func newBoard(params GameParams) *Board {
	return &Board{
		GameParams: params,
		cells:      make([]Cell, params.Cells()),
	}
}

// NewBoard builds a board with mines at exactly the given points.
func NewBoard(width, height int, mines []Point) (*Board, error) {
	params := GameParams{Width: width, Height: height, MineCount: len(mines)}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := newBoard(params)
	for _, p := range mines {
		if !b.PointInBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: mine %s out of bounds", ErrInvalidConfiguration, p)
		}
		i := b.index(p.Row, p.Col)
		if b.cells[i].Mine {
			return nil, fmt.Errorf("%w: duplicate mine at %s", ErrInvalidConfiguration, p)
		}
		b.cells[i].Mine = true
	}
	b.countAdjacent()
	b.placed = true
	return b, nil
}

func (b *Board) index(row, col int) int {
	return row*b.Width + col
}

func (b *Board) point(i int) Point {
	return Point{Row: i / b.Width, Col: i % b.Width}
}

// Cell returns a copy of the cell at row, col. ok is false when the point
// lies outside the board.
func (b *Board) Cell(row, col int) (c Cell, ok bool) {
	if !b.PointInBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[b.index(row, col)], true
}

// Placed reports whether the mine layout is final.
func (b *Board) Placed() bool {
	return b.placed
}

func (b *Board) Mines() (count int) {
	for _, c := range b.cells {
		if c.Mine {
			count++
		}
	}
	return
}

// neighbours calls fn with the index of every cell touching i, clipped at the
// board edges.
func (b *Board) neighbours(i int, fn func(j int)) {
	y, x := i/b.Width, i%b.Width
	for dy := -1; dy <= 1; dy++ {
		yy := y + dy
		if yy < 0 || yy >= b.Height {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			xx := x + dx
			if xx < 0 || xx >= b.Width || (dx == 0 && dy == 0) {
				continue
			}
			fn(yy*b.Width + xx)
		}
	}
}

// countAdjacent fills in Adjacent for every safe cell in one pass over the
// finished layout.
func (b *Board) countAdjacent() {
	for i := range b.cells {
		if b.cells[i].Mine {
			b.cells[i].Adjacent = 0
			continue
		}
		var n int8
		b.neighbours(i, func(j int) {
			if b.cells[j].Mine {
				n++
			}
		})
		b.cells[i].Adjacent = n
	}
}
