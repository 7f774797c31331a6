package game

import (
	"errors"
	"testing"
)

func TestSlideRow(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		want    []int
		points  int
		changed bool
	}{
		{
			name:    "simple merge",
			input:   []int{2, 2, 0, 0},
			want:    []int{4, 0, 0, 0},
			points:  4,
			changed: true,
		},
		{
			name:    "merge with trailing tile",
			input:   []int{2, 2, 2, 0},
			want:    []int{4, 2, 0, 0},
			points:  4,
			changed: true,
		},
		{
			name:    "merged tile never re-merges",
			input:   []int{2, 2, 4, 0},
			want:    []int{4, 4, 0, 0},
			points:  4,
			changed: true,
		},
		{
			name:    "all equal merge pairwise",
			input:   []int{4, 4, 4, 4},
			want:    []int{8, 8, 0, 0},
			points:  16,
			changed: true,
		},
		{
			name:    "pure slide with no merge",
			input:   []int{0, 2, 0, 4},
			want:    []int{2, 4, 0, 0},
			points:  0,
			changed: true,
		},
		{
			name:    "merge across gap",
			input:   []int{2, 0, 0, 2},
			want:    []int{4, 0, 0, 0},
			points:  4,
			changed: true,
		},
		{
			name:    "compacted and non-mergeable",
			input:   []int{2, 4, 8, 16},
			want:    []int{2, 4, 8, 16},
			points:  0,
			changed: false,
		},
		{
			name:    "already left-aligned",
			input:   []int{4, 2, 0, 0},
			want:    []int{4, 2, 0, 0},
			points:  0,
			changed: false,
		},
		{
			name:    "empty row",
			input:   []int{0, 0, 0, 0},
			want:    []int{0, 0, 0, 0},
			points:  0,
			changed: false,
		},
		{
			name:    "single tile already home",
			input:   []int{8, 0, 0, 0},
			want:    []int{8, 0, 0, 0},
			points:  0,
			changed: false,
		},
		{
			name:    "longer row generalizes",
			input:   []int{2, 2, 4, 4, 8, 0},
			want:    []int{4, 8, 8, 0, 0, 0},
			points:  12,
			changed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, points, changed := slideRow(tt.input)
			if !equalInts(out, tt.want) {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, out, tt.want)
			}
			if points != tt.points {
				t.Errorf("slideRow(%v) points = %d, want %d", tt.input, points, tt.points)
			}
			if changed != tt.changed {
				t.Errorf("slideRow(%v) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestApplyDirections(t *testing.T) {
	input := Board{
		{0, 8, 2, 2},
		{4, 2, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 2},
	}

	tests := []struct {
		name string
		dir  Direction
		want Board
	}{
		{
			name: "left",
			dir:  Left,
			want: Board{
				{8, 4, 0, 0},
				{4, 4, 0, 0},
				{0, 0, 0, 0},
				{2, 0, 0, 0},
			},
		},
		{
			name: "right",
			dir:  Right,
			want: Board{
				{0, 0, 8, 4},
				{0, 0, 4, 4},
				{0, 0, 0, 0},
				{0, 0, 0, 2},
			},
		},
		{
			name: "up",
			dir:  Up,
			want: Board{
				{4, 8, 2, 4},
				{0, 2, 0, 2},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "down",
			dir:  Down,
			want: Board{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 8, 0, 2},
				{4, 2, 2, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Apply(input, tt.dir)
			if err != nil {
				t.Fatalf("Apply(%v) error: %v", tt.dir, err)
			}
			if !res.Board.Equal(tt.want) {
				t.Errorf("Apply(%v) = %v, want %v", tt.dir, res.Board, tt.want)
			}
			if !res.Changed {
				t.Errorf("Apply(%v) should report a change", tt.dir)
			}
		})
	}
}

func TestApplyMergesNearestTrailingEdge(t *testing.T) {
	// Three equal tiles in a column: the pair nearest the edge being
	// slid toward merges, the leftover tile stays behind it.
	input := Board{
		{0, 0, 0, 2},
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 2},
	}

	res, err := Apply(input, Down)
	if err != nil {
		t.Fatalf("Apply(down) error: %v", err)
	}
	want := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 2},
		{0, 0, 0, 4},
	}
	if !res.Board.Equal(want) {
		t.Errorf("Apply(down) = %v, want %v", res.Board, want)
	}
	if res.Points != 4 {
		t.Errorf("points = %d, want 4", res.Points)
	}

	res, err = Apply(input, Up)
	if err != nil {
		t.Fatalf("Apply(up) error: %v", err)
	}
	want = Board{
		{0, 0, 0, 4},
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if !res.Board.Equal(want) {
		t.Errorf("Apply(up) = %v, want %v", res.Board, want)
	}
}

func TestApplyNeverMutatesInput(t *testing.T) {
	input := Board{
		{2, 2, 0, 0},
		{0, 4, 4, 0},
		{0, 0, 0, 0},
		{2, 0, 0, 2},
	}
	snapshot := input.Clone()

	for _, dir := range []Direction{Left, Right, Up, Down} {
		if _, err := Apply(input, dir); err != nil {
			t.Fatalf("Apply(%v) error: %v", dir, err)
		}
		if !input.Equal(snapshot) {
			t.Fatalf("Apply(%v) mutated its input: %v", dir, input)
		}
	}
}

func TestApplyNoOpIsIdentity(t *testing.T) {
	board := Board{
		{4, 2, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	res, err := Apply(board, Left)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if res.Changed {
		t.Error("left-aligned board should not change on a left slide")
	}
	if !res.Board.Equal(board) {
		t.Errorf("unchanged move must return an identical board: %v", res.Board)
	}

	// Reapplying yields the same answer.
	again, err := Apply(res.Board, Left)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if again.Changed || !again.Board.Equal(board) {
		t.Error("no-op move is not idempotent")
	}
}

func TestApplyPreservesTileSum(t *testing.T) {
	board := Board{
		{2, 2, 4, 8},
		{0, 4, 4, 0},
		{16, 16, 2, 2},
		{0, 0, 32, 32},
	}
	sum := board.Sum()

	for _, dir := range []Direction{Left, Right, Up, Down} {
		res, err := Apply(board, dir)
		if err != nil {
			t.Fatalf("Apply(%v) error: %v", dir, err)
		}
		if got := res.Board.Sum(); got != sum {
			t.Errorf("Apply(%v) changed tile sum: got %d, want %d", dir, got, sum)
		}
	}
}

func TestDirectionalSymmetry(t *testing.T) {
	board := Board{
		{2, 0, 2, 4},
		{4, 4, 0, 2},
		{0, 8, 8, 0},
		{2, 0, 0, 2},
	}

	reverseRows := func(b Board) Board {
		out := make(Board, len(b))
		for r, row := range b {
			out[r] = reverseRow(row)
		}
		return out
	}

	t.Run("right is mirrored left", func(t *testing.T) {
		right, _ := Apply(board, Right)
		left, _ := Apply(reverseRows(board), Left)
		if !right.Board.Equal(reverseRows(left.Board)) {
			t.Error("moveRight != reverse(moveLeft(reverse))")
		}
	})

	t.Run("up is transposed left", func(t *testing.T) {
		up, _ := Apply(board, Up)
		left, _ := Apply(board.Transpose(), Left)
		if !up.Board.Equal(left.Board.Transpose()) {
			t.Error("moveUp != transpose(moveLeft(transpose))")
		}
	})

	t.Run("down is transposed right", func(t *testing.T) {
		down, _ := Apply(board, Down)
		right, _ := Apply(board.Transpose(), Right)
		if !down.Board.Equal(right.Board.Transpose()) {
			t.Error("moveDown != transpose(moveRight(transpose))")
		}
	})
}

func TestApplyRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		dir   Direction
		want  error
	}{
		{
			name:  "ragged board",
			board: Board{{2, 0}, {2, 0, 0}},
			dir:   Left,
			want:  ErrMalformedBoard,
		},
		{
			name:  "non power of two tile",
			board: Board{{3, 0}, {0, 0}},
			dir:   Left,
			want:  ErrMalformedBoard,
		},
		{
			name:  "negative cell",
			board: Board{{-2, 0}, {0, 0}},
			dir:   Left,
			want:  ErrMalformedBoard,
		},
		{
			name:  "empty board",
			board: Board{},
			dir:   Left,
			want:  ErrMalformedBoard,
		},
		{
			name:  "direction outside enumeration",
			board: Board{{2, 0}, {0, 0}},
			dir:   Direction(9),
			want:  ErrUnknownDirection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(tt.board, tt.dir)
			if !errors.Is(err, tt.want) {
				t.Errorf("Apply error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, dir := range []Direction{Left, Right, Up, Down} {
		got, err := ParseDirection(dir.String())
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", dir.String(), err)
		}
		if got != dir {
			t.Errorf("ParseDirection(%q) = %v, want %v", dir.String(), got, dir)
		}
	}

	if _, err := ParseDirection("diagonal"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("ParseDirection(diagonal) error = %v, want ErrUnknownDirection", err)
	}
}

func TestTransposeNonSquare(t *testing.T) {
	board := Board{
		{2, 4, 8},
		{16, 0, 32},
	}
	want := Board{
		{2, 16},
		{4, 0},
		{8, 32},
	}

	got := board.Transpose()
	if !got.Equal(want) {
		t.Errorf("Transpose = %v, want %v", got, want)
	}
	if !got.Transpose().Equal(board) {
		t.Error("double transpose should restore the board")
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
