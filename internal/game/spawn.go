package game

// coord addresses a single cell.
type coord struct {
	Row, Col int
}

// emptyCells returns the coordinates of every empty cell in row-major order.
func emptyCells(b Board) []coord {
	var cells []coord
	for r, row := range b {
		for c, v := range row {
			if v == 0 {
				cells = append(cells, coord{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Spawn places one new tile in a uniformly chosen empty cell and returns
// the resulting board. The tile is 4 with probability fourProb, else 2.
// ok is false when the board has no empty cell; that is a distinct
// condition from an unchanged move and callers must branch on it.
// The input board is never mutated.
func Spawn(rng Rand, b Board, fourProb float64) (out Board, ok bool) {
	empties := emptyCells(b)
	if len(empties) == 0 {
		return nil, false
	}

	cell := empties[rng.Intn(len(empties))]
	value := 2
	if rng.Float64() < fourProb {
		value = 4
	}

	out = b.Clone()
	out[cell.Row][cell.Col] = value
	return out, true
}

// NewBoard produces a starting board: rows×cols empties, then a random
// count of value-2 tiles in [minTiles, rows*cols] placed at distinct
// random positions. minTiles 0 matches the original rule, where an
// all-empty start is legal; the shipped config clamps it to 2.
func NewBoard(rng Rand, rows, cols, minTiles int) Board {
	total := rows * cols
	if minTiles < 0 {
		minTiles = 0
	}
	if minTiles > total {
		minTiles = total
	}

	count := minTiles + rng.Intn(total-minTiles+1)
	b := NewEmptyBoard(rows, cols)
	for _, idx := range rng.Perm(total)[:count] {
		b[idx/cols][idx%cols] = 2
	}
	return b
}
