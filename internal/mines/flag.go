package mines

// ToggleFlag flips a closed cell to flagged and back. Flags are not capped
// by the mine count.
func (g *Game) ToggleFlag(row, col int) {
	if g.status.Terminal() || !g.board.PointInBounds(row, col) {
		return
	}
	c := &g.board.cells[g.board.index(row, col)]
	switch c.State {
	case Closed:
		c.State = Flagged
		g.flagsRemaining--
	case Flagged:
		c.State = Closed
		g.flagsRemaining++
	}
}
