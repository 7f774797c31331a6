// Package game implements the 2048 board engine: sliding, merging,
// tile spawning, and win/loss evaluation. All operations are pure and
// return fresh board values; callers own sequencing and the single
// authoritative board reference. Randomness is injected through the
// Rand interface so tests can drive deterministic sequences.
package game

import (
	"errors"
	"fmt"
)

// Cells hold 0 for empty or a power-of-two tile value (2, 4, 8, ...).
// Boards are row-major: board[row][col]. The engine works for any R×C
// rectangle; the shipped game uses 4×4.
type Board [][]int

// DefaultSize is the classic board dimension.
const DefaultSize = 4

// DefaultGoal is the tile value that wins the game.
const DefaultGoal = 2048

var (
	// ErrMalformedBoard signals a board that violates the data model:
	// no rows, ragged rows, or a cell that is not 0 or a tile value.
	ErrMalformedBoard = errors.New("game: malformed board")

	// ErrUnknownDirection signals a direction outside the enumeration.
	ErrUnknownDirection = errors.New("game: unknown direction")
)

// Rand is the subset of math/rand.Rand the engine draws from.
// Injecting it keeps spawning and initialization deterministic under test.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Perm(n int) []int
}

// NewEmptyBoard returns an all-empty rows×cols board.
func NewEmptyBoard(rows, cols int) Board {
	b := make(Board, rows)
	for r := range b {
		b[r] = make([]int, cols)
	}
	return b
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return len(b)
}

// Cols returns the number of columns, 0 for an empty board.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for r, row := range b {
		out[r] = make([]int, len(row))
		copy(out[r], row)
	}
	return out
}

// Equal reports whether two boards hold identical cells.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for r, row := range b {
		if len(row) != len(other[r]) {
			return false
		}
		for c, v := range row {
			if v != other[r][c] {
				return false
			}
		}
	}
	return true
}

// MaxTile returns the largest tile value on the board, 0 if none.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, row := range b {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for _, row := range b {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Validate checks the board invariants: at least one row and column,
// rectangular shape, and every cell either empty or a tile value.
// The engine fails fast on malformed input rather than coercing it.
func (b Board) Validate() error {
	if len(b) == 0 || len(b[0]) == 0 {
		return fmt.Errorf("%w: no cells", ErrMalformedBoard)
	}
	cols := len(b[0])
	for r, row := range b {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, r, len(row), cols)
		}
		for c, v := range row {
			if !validCell(v) {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrMalformedBoard, r, c, v)
			}
		}
	}
	return nil
}

// validCell accepts 0 (empty) or any power of two from 2 upward.
func validCell(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// reverseRow returns a new slice in opposite order.
func reverseRow(row []int) []int {
	out := make([]int, len(row))
	for i, v := range row {
		out[len(row)-1-i] = v
	}
	return out
}

// Transpose returns a new board with rows and columns swapped:
// result[c][r] = b[r][c]. Works for non-square boards.
func (b Board) Transpose() Board {
	rows, cols := b.Rows(), b.Cols()
	out := make(Board, cols)
	for c := range out {
		out[c] = make([]int, rows)
		for r := range b {
			out[c][r] = b[r][c]
		}
	}
	return out
}
