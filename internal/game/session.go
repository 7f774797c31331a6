package game

// Rules bundle the tunable parameters of a game.
type Rules struct {
	Rows     int
	Cols     int
	Goal     int     // tile value that wins
	FourProb float64 // probability that a spawned tile is 4 rather than 2
	MinStart int     // lower clamp on the random starting tile count
}

// DefaultRules returns the classic 4×4 game with a fair 2/4 spawn coin.
func DefaultRules() Rules {
	return Rules{
		Rows:     DefaultSize,
		Cols:     DefaultSize,
		Goal:     DefaultGoal,
		FourProb: 0.5,
		MinStart: 2,
	}
}

// Session owns one game: the authoritative board, the status state
// machine, and the score. It sequences the move cycle the engine
// functions compose: apply move, check win, spawn, check loss.
// Sessions are not safe for concurrent use; callers apply one move
// at a time.
type Session struct {
	rules  Rules
	rng    Rand
	board  Board
	status Status
	score  int
	moves  int
}

// NewSession starts a game with a freshly initialized board.
func NewSession(rules Rules, rng Rand) *Session {
	return &Session{
		rules:  rules,
		rng:    rng,
		board:  NewBoard(rng, rules.Rows, rules.Cols, rules.MinStart),
		status: Playing,
	}
}

// Board returns a copy of the current board.
func (s *Session) Board() Board {
	return s.board.Clone()
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Score returns the accumulated merge points.
func (s *Session) Score() int {
	return s.score
}

// Moves returns the number of accepted (board-changing) moves.
func (s *Session) Moves() int {
	return s.moves
}

// Rules returns the session's rule set.
func (s *Session) Rules() Rules {
	return s.rules
}

// Move runs one full move cycle in the given direction. Moves are
// ignored once the status is terminal, and a move that does not change
// the board spawns nothing. Returns whether the board changed.
func (s *Session) Move(dir Direction) (bool, error) {
	if s.status != Playing {
		return false, nil
	}

	res, err := Apply(s.board, dir)
	if err != nil {
		return false, err
	}
	if !res.Changed {
		return false, nil
	}

	s.board = res.Board
	s.score += res.Points
	s.moves++

	if HasWon(s.board, s.rules.Goal) {
		s.status = Won
		return true, nil
	}

	if spawned, ok := Spawn(s.rng, s.board, s.rules.FourProb); ok {
		s.board = spawned
	}

	if HasLost(s.board) {
		s.status = Lost
	}
	return true, nil
}
