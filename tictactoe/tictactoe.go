package tictactoe

// NewBoard returns the starting position: all cells empty.
func NewBoard() Board {
	return Board{}
}

// Player returns the mark whose turn it is. X moves first, so X is to
// move whenever both players have placed the same number of marks.
//
// Complexity: O(1) — nine cells.
func (b Board) Player() Mark {
	var numX, numO int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			switch b[i][j] {
			case X:
				numX++
			case O:
				numO++
			}
		}
	}
	if numX > numO {
		return O
	}

	return X
}

// Actions returns every empty cell, in row-major order for
// deterministic search.
func (b Board) Actions() []Action {
	moves := make([]Action, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if b[i][j] == Empty {
				moves = append(moves, Action{Row: i, Col: j})
			}
		}
	}

	return moves
}

// Result returns the board after the current player marks cell a.
// The receiver is unchanged. Returns ErrInvalidAction if the cell is
// out of range or occupied.
func (b Board) Result(a Action) (Board, error) {
	if a.Row < 0 || a.Row > 2 || a.Col < 0 || a.Col > 2 {
		return b, ErrInvalidAction
	}
	if b[a.Row][a.Col] != Empty {
		return b, ErrInvalidAction
	}
	next := b
	next[a.Row][a.Col] = b.Player()

	return next, nil
}

// Winner returns the winning mark and true if either player has three
// in a row, column, or diagonal.
func (b Board) Winner() (Mark, bool) {
	for i := 0; i < 3; i++ {
		if b[i][0] != Empty && b[i][0] == b[i][1] && b[i][1] == b[i][2] {
			return b[i][0], true
		}
		if b[0][i] != Empty && b[0][i] == b[1][i] && b[1][i] == b[2][i] {
			return b[0][i], true
		}
	}
	if b[0][0] != Empty && b[0][0] == b[1][1] && b[1][1] == b[2][2] {
		return b[0][0], true
	}
	if b[2][0] != Empty && b[2][0] == b[1][1] && b[1][1] == b[0][2] {
		return b[2][0], true
	}

	return Empty, false
}

// Terminal reports whether the game is over: someone won, or no empty
// cell remains.
func (b Board) Terminal() bool {
	if _, won := b.Winner(); won {
		return true
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if b[i][j] == Empty {
				return false
			}
		}
	}

	return true
}

// Utility returns 1 if X has won, -1 if O has won, 0 otherwise.
// Only meaningful on terminal boards.
func (b Board) Utility() int {
	switch w, _ := b.Winner(); w {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}
