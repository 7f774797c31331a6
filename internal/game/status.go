package game

// Status is the lifecycle state of a game. Won and Lost are absorbing:
// the session stops accepting moves once either is reached.
type Status string

const (
	Playing Status = "playing"
	Won     Status = "won"
	Lost    Status = "lost"
)

// HasWon reports whether any cell holds at least the goal value.
func HasWon(b Board, goal int) bool {
	for _, row := range b {
		for _, v := range row {
			if v >= goal {
				return true
			}
		}
	}
	return false
}

// IsFull reports whether the board has no empty cell.
func IsFull(b Board) bool {
	for _, row := range b {
		for _, v := range row {
			if v == 0 {
				return false
			}
		}
	}
	return true
}

// HasAdjacentEqualPair reports whether any two horizontally or
// vertically adjacent cells hold equal non-empty values.
func HasAdjacentEqualPair(b Board) bool {
	rows, cols := b.Rows(), b.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := b[r][c]
			if v == 0 {
				continue
			}
			if c+1 < cols && b[r][c+1] == v {
				return true
			}
			if r+1 < rows && b[r+1][c] == v {
				return true
			}
		}
	}
	return false
}

// HasLost reports the loss condition: board full with no mergeable pair.
// A non-full board is never a loss under this rule.
func HasLost(b Board) bool {
	return IsFull(b) && !HasAdjacentEqualPair(b)
}

// CanMove reports whether at least one direction would change the board.
// Equivalent to !HasLost for any valid board (an empty cell always leaves
// some slide open), but stated in the stronger four-direction form.
func CanMove(b Board) bool {
	return !IsFull(b) || HasAdjacentEqualPair(b)
}
