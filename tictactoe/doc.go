// Package tictactoe implements optimal tic-tac-toe play via minimax.
//
// What:
//
//   - Board is an immutable-by-value 3×3 grid; Result returns a fresh
//     board, so game trees can be explored without undo logic.
//   - Player, Actions, Result, Winner, Terminal, Utility implement the
//     game mechanics; Minimax returns an optimal action for the player
//     whose turn it is.
//   - Minimax passes the best value found so far down the tree and stops
//     expanding a branch as soon as it cannot beat that bound, cutting
//     much of the 9! game tree.
//
// X maximizes (+1 for an X win), O minimizes (−1 for an O win), a draw
// is 0. Played optimally from any position, the engine never loses.
//
// Errors:
//
//   - ErrInvalidAction: the target cell is occupied or out of range.
//   - ErrTerminalBoard: Minimax was asked to move on a finished game.
package tictactoe
