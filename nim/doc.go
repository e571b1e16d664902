// Package nim implements the game of Nim and a Q-learning agent that
// teaches itself to play it.
//
// Rules: piles of objects (1, 3, 5 and 7 by default); a move removes
// one or more objects from a single pile; whoever removes the last
// object loses.
//
// What:
//
//   - Game tracks piles, the player to move, and the winner.
//   - AI keeps a Q-value per (state, action) pair, updated by
//     Q(s,a) ← Q(s,a) + α·(reward + max Q(s′,·) − Q(s,a)),
//     and chooses actions ε-greedily while training.
//   - Train plays the agent against itself for a configured number of
//     games, rewarding the winning move +1 and the losing move −1.
//   - Save and LoadAI persist the learned Q-table as JSON so training
//     and play can be separate program runs.
//
// Hyperparameters (α, ε, game count) default to the course values and
// can be overridden from a YAML config file.
//
// Errors:
//
//   - ErrInvalidAction: the move references a bad pile or count.
//   - ErrGameOver: a move was attempted after the game ended.
//   - ErrNoActions: an action was requested in a terminal state.
package nim
