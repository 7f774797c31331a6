package game

import "fmt"

// Direction is one of the four slide directions.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a direction name to its enum value.
// Anything outside the four names is rejected; callers that receive
// directions from external collaborators must branch on the error.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// MoveResult is the outcome of applying a direction to a board.
type MoveResult struct {
	Board   Board
	Changed bool // false means Board is cell-for-cell the input
	Points  int  // sum of merged tile values produced by this move
}

// slideRow compacts and merges a single row toward index 0.
// Merging is decided over the compacted tiles in their original order:
// each source tile merges at most once, so a tile produced by a merge
// never absorbs the next tile in the same pass ([2 2 4] -> [4 4], not [8]).
func slideRow(row []int) (out []int, points int, changed bool) {
	tiles := make([]int, 0, len(row))
	for _, v := range row {
		if v != 0 {
			tiles = append(tiles, v)
		}
	}

	out = make([]int, len(row))
	w := 0
	for i := 0; i < len(tiles); i++ {
		if i+1 < len(tiles) && tiles[i] == tiles[i+1] {
			out[w] = tiles[i] * 2
			points += out[w]
			i++ // consume both source tiles
			changed = true
		} else {
			out[w] = tiles[i]
		}
		w++
	}

	if !changed {
		for i, v := range row {
			if v != out[i] {
				changed = true
				break
			}
		}
	}
	return out, points, changed
}

// slideLeft runs slideRow independently over every row.
func slideLeft(b Board) MoveResult {
	res := MoveResult{Board: make(Board, len(b))}
	for r, row := range b {
		newRow, points, changed := slideRow(row)
		res.Board[r] = newRow
		res.Points += points
		res.Changed = res.Changed || changed
	}
	return res
}

// slideRight reverses each row, slides left, and reverses back.
func slideRight(b Board) MoveResult {
	res := MoveResult{Board: make(Board, len(b))}
	for r, row := range b {
		newRow, points, changed := slideRow(reverseRow(row))
		res.Board[r] = reverseRow(newRow)
		res.Points += points
		res.Changed = res.Changed || changed
	}
	return res
}

// Apply slides the board in the given direction and reports whether
// anything moved or merged. The input board is never mutated; the
// result always carries a fresh value. Malformed boards and directions
// outside the enumeration are contract violations and return an error.
func Apply(b Board, dir Direction) (MoveResult, error) {
	if err := b.Validate(); err != nil {
		return MoveResult{}, err
	}

	switch dir {
	case Left:
		return slideLeft(b), nil
	case Right:
		return slideRight(b), nil
	case Up:
		res := slideLeft(b.Transpose())
		res.Board = res.Board.Transpose()
		return res, nil
	case Down:
		res := slideRight(b.Transpose())
		res.Board = res.Board.Transpose()
		return res, nil
	default:
		return MoveResult{}, fmt.Errorf("%w: %d", ErrUnknownDirection, int(dir))
	}
}
