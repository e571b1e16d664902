package tictactoe

import "errors"

// Sentinel errors for game operations.
var (
	// ErrInvalidAction indicates a move into an occupied or out-of-range cell.
	ErrInvalidAction = errors.New("tictactoe: invalid action")

	// ErrTerminalBoard indicates a move was requested on a finished game.
	ErrTerminalBoard = errors.New("tictactoe: board is terminal")
)

// Mark is the content of one board cell.
type Mark byte

// Cell marks. Empty is the zero value so a zero Board is the start state.
const (
	Empty Mark = iota
	X
	O
)

// String renders the mark for board display.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Board is a 3×3 tic-tac-toe position. It is a value type: Result
// returns a modified copy and never mutates the receiver.
type Board [3][3]Mark

// Action identifies the cell a player marks on their turn.
type Action struct {
	Row, Col int
}

// utility bounds used as initial cutoff values by minimax; outside the
// reachable range [-1, 1].
const (
	belowMin = -2
	aboveMax = 2
)
