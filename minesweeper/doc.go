// Package minesweeper implements the game board and a knowledge-based
// agent that plays it.
//
// What:
//
//   - Game places mines on a rectangular board with an injectable RNG
//     and answers "how many mines neighbor this cell".
//   - Sentence is a logical statement about the board: a set of cells
//     and the count of mines among them.
//   - AI accumulates sentences as cells are revealed, derives safe and
//     mined cells, and infers new sentences via the subset rule:
//     if S1 ⊂ S2 then (S2∖S1, count2−count1) is also true.
//
// Inference runs to a fixed point after every revealed cell, so the
// agent flags every mine that is logically determined by what it has
// seen. Moves it cannot prove safe fall back to a random choice among
// unexplored, unflagged cells.
//
// Errors:
//
//   - ErrBadDimensions: height or width is not positive.
//   - ErrTooManyMines: more mines requested than cells available.
//   - ErrOutOfBounds: a cell reference is outside the board.
package minesweeper
