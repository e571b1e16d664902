package nim

import (
	"errors"
	"sort"
)

// Sentinel errors for game play.
var (
	// ErrInvalidAction indicates a move with a bad pile index or count.
	ErrInvalidAction = errors.New("nim: invalid action")

	// ErrGameOver indicates a move attempted after the game ended.
	ErrGameOver = errors.New("nim: game is over")

	// ErrNoActions indicates an action request in a terminal state.
	ErrNoActions = errors.New("nim: no actions available")
)

// Action removes Count objects from pile index Pile.
type Action struct {
	Pile, Count int
}

// Game is one Nim match in progress. Winner is -1 until decided.
type Game struct {
	Piles  []int
	Player int
	Winner int
}

// NewGame starts a match with the given piles, defaulting to the
// course configuration 1, 3, 5, 7.
func NewGame(piles ...int) *Game {
	if len(piles) == 0 {
		piles = []int{1, 3, 5, 7}
	}
	owned := make([]int, len(piles))
	copy(owned, piles)

	return &Game{Piles: owned, Player: 0, Winner: -1}
}

// AvailableActions lists every legal move on the given piles, sorted
// by pile then count.
func AvailableActions(piles []int) []Action {
	var actions []Action
	for i, n := range piles {
		for count := 1; count <= n; count++ {
			actions = append(actions, Action{Pile: i, Count: count})
		}
	}
	sort.Slice(actions, func(i, j int) bool {
		if actions[i].Pile != actions[j].Pile {
			return actions[i].Pile < actions[j].Pile
		}

		return actions[i].Count < actions[j].Count
	})

	return actions
}

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.Winner != -1 }

// Move applies a for the current player, switches turns, and declares
// the new current player the winner when the piles empty — whoever
// took the last object loses.
func (g *Game) Move(a Action) error {
	if g.Over() {
		return ErrGameOver
	}
	if a.Pile < 0 || a.Pile >= len(g.Piles) || a.Count < 1 || a.Count > g.Piles[a.Pile] {
		return ErrInvalidAction
	}

	g.Piles[a.Pile] -= a.Count
	g.Player = 1 - g.Player

	remaining := 0
	for _, n := range g.Piles {
		remaining += n
	}
	if remaining == 0 {
		g.Winner = g.Player
	}

	return nil
}
