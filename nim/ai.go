package nim

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// AI is a Q-learning Nim player.
type AI struct {
	cfg Config
	q   map[string]map[Action]float64
	rng *rand.Rand
}

// NewAI creates an untrained agent. A nil rng means time-seeded.
func NewAI(cfg Config, rng *rand.Rand) (*AI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &AI{cfg: cfg, q: make(map[string]map[Action]float64), rng: rng}, nil
}

// stateKey canonicalizes piles for Q-table lookup.
func stateKey(piles []int) string {
	parts := make([]string, len(piles))
	for i, n := range piles {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, ",")
}

// QValue returns the learned value of taking a in the given state,
// zero if unseen.
func (ai *AI) QValue(piles []int, a Action) float64 {
	return ai.q[stateKey(piles)][a]
}

// setQ writes a Q-value, allocating the state row as needed.
func (ai *AI) setQ(key string, a Action, v float64) {
	row, ok := ai.q[key]
	if !ok {
		row = make(map[Action]float64)
		ai.q[key] = row
	}
	row[a] = v
}

// BestFutureReward returns the highest Q-value over the actions
// available in the state, zero when none are. Unseen pairs count as
// zero, so the result can be negative only when every available
// action has a learned negative value.
func (ai *AI) BestFutureReward(piles []int) float64 {
	actions := AvailableActions(piles)
	if len(actions) == 0 {
		return 0
	}

	key := stateKey(piles)
	best := ai.q[key][actions[0]]
	for _, a := range actions[1:] {
		if v := ai.q[key][a]; v > best {
			best = v
		}
	}

	return best
}

// Update applies the Q-learning rule for taking a in oldPiles,
// landing in newPiles with the given reward:
//
//	Q(s,a) ← Q(s,a) + α·(reward + max Q(s′,·) − Q(s,a))
func (ai *AI) Update(oldPiles []int, a Action, newPiles []int, reward float64) {
	key := stateKey(oldPiles)
	old := ai.q[key][a]
	future := ai.BestFutureReward(newPiles)
	ai.setQ(key, a, old+ai.cfg.Alpha*(reward+future-old))
}

// ChooseAction picks a move for the state. With explore set, the agent
// plays a uniformly random action with probability ε; otherwise it
// plays the highest-valued action (ties resolve to the first in
// AvailableActions order). Returns ErrNoActions in a terminal state.
func (ai *AI) ChooseAction(piles []int, explore bool) (Action, error) {
	actions := AvailableActions(piles)
	if len(actions) == 0 {
		return Action{}, ErrNoActions
	}
	if explore && ai.rng.Float64() < ai.cfg.Epsilon {
		return actions[ai.rng.Intn(len(actions))], nil
	}

	key := stateKey(piles)
	best := actions[0]
	bestV := ai.q[key][best]
	for _, a := range actions[1:] {
		if v := ai.q[key][a]; v > bestV {
			best, bestV = a, v
		}
	}

	return best, nil
}

// Train creates an agent and improves it over cfg.Games self-play
// matches. After each game the final move earns −1 (its player lost)
// and the opponent's preceding move +1; intermediate moves earn 0 once
// their consequences are known.
func Train(cfg Config, rng *rand.Rand) (*AI, error) {
	ai, err := NewAI(cfg, rng)
	if err != nil {
		return nil, err
	}

	type lastMove struct {
		piles  []int
		action Action
		seen   bool
	}
	for i := 0; i < cfg.Games; i++ {
		game := NewGame()
		last := [2]lastMove{}

		for {
			state := append([]int(nil), game.Piles...)
			action, err := ai.ChooseAction(state, true)
			if err != nil {
				return nil, fmt.Errorf("nim: training game %d: %w", i, err)
			}
			player := game.Player
			last[player] = lastMove{piles: state, action: action, seen: true}

			if err := game.Move(action); err != nil {
				return nil, fmt.Errorf("nim: training game %d: %w", i, err)
			}
			newState := append([]int(nil), game.Piles...)

			if game.Over() {
				ai.Update(state, action, newState, -1)
				winner := last[game.Winner]
				if winner.seen {
					ai.Update(winner.piles, winner.action, newState, 1)
				}

				break
			}
			if prev := last[game.Player]; prev.seen {
				ai.Update(prev.piles, prev.action, newState, 0)
			}
		}
	}

	return ai, nil
}
