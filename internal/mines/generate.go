package mines

import (
	"fmt"
	"math/rand/v2"
)

// Generate lays out params.MineCount mines uniformly at random. When exclude
// is set, that cell never holds a mine and neither do its neighbours, unless
// the board is too crowded to keep them clear.
func Generate(params GameParams, exclude *Point, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if exclude != nil && !params.PointInBounds(exclude.Row, exclude.Col) {
		return nil, fmt.Errorf(
			"%w: excluded cell %s out of bounds", ErrInvalidConfiguration, *exclude,
		)
	}
	b := newBoard(params)
	b.placeMines(exclude, r)
	return b, nil
}

func (b *Board) placeMines(exclude *Point, r *rand.Rand) {
	width, height, mineCount := b.Unpack()

	/*
	 * Write down the list of possible mine locations: everything at
	 * least two squares away from the excluded cell.
	 */
	candidates := make([]int, 0, width*height)
	for y := range height {
		for x := range width {
			if exclude == nil ||
				absDiff(exclude.Row, y) > 1 || absDiff(exclude.Col, x) > 1 {
				candidates = append(candidates, y*width+x)
			}
		}
	}

	/*
	 * Too crowded for a clear 3x3: only the cell itself stays safe.
	 */
	if len(candidates) < mineCount {
		start := b.index(exclude.Row, exclude.Col)
		candidates = candidates[:0]
		for i := range width * height {
			if i != start {
				candidates = append(candidates, i)
			}
		}
	}

	/*
	 * Now pick n off the list at random.
	 */
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		b.cells[candidates[i]].Mine = true
		k--
		candidates[i] = candidates[k]
	}

	b.countAdjacent()
	b.placed = true
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
