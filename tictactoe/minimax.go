package tictactoe

// Minimax returns an optimal action for the player to move on b.
// Returns ErrTerminalBoard if the game is already over.
//
// The search passes the best value found so far down each branch: a
// minimizing node abandons its remaining children as soon as any child
// falls below the bound, and symmetrically for maximizing nodes.
//
// Complexity: O(b^d) worst case over the game tree (b ≤ 9, d ≤ 9);
// the cutoff prunes most of it in practice.
func Minimax(b Board) (Action, error) {
	if b.Terminal() {
		return Action{}, ErrTerminalBoard
	}

	var best Action
	if b.Player() == X {
		// choose the action with the highest min-value
		v := belowMin
		for _, a := range b.Actions() {
			next, _ := b.Result(a)
			if va := minValue(next, v); va > v {
				v = va
				best = a
			}
		}
	} else {
		// choose the action with the lowest max-value
		v := aboveMax
		for _, a := range b.Actions() {
			next, _ := b.Result(a)
			if va := maxValue(next, v); va < v {
				v = va
				best = a
			}
		}
	}

	return best, nil
}

// minValue returns the value of b assuming the minimizer moves,
// abandoning the branch once any child value drops below bound.
func minValue(b Board, bound int) int {
	if b.Terminal() {
		return b.Utility()
	}
	v := aboveMax
	for _, a := range b.Actions() {
		next, _ := b.Result(a)
		if va := maxValue(next, bound); va < v {
			v = va
		}
		if v < bound {
			return v
		}
	}

	return v
}

// maxValue returns the value of b assuming the maximizer moves,
// abandoning the branch once any child value rises above bound.
func maxValue(b Board, bound int) int {
	if b.Terminal() {
		return b.Utility()
	}
	v := belowMin
	for _, a := range b.Actions() {
		next, _ := b.Result(a)
		if va := minValue(next, bound); va > v {
			v = va
		}
		if v > bound {
			return v
		}
	}

	return v
}
