package minesweeper

import (
	"errors"
	"math/rand"
)

// Sentinel errors for board construction and queries.
var (
	// ErrBadDimensions indicates a non-positive height or width.
	ErrBadDimensions = errors.New("minesweeper: height and width must be positive")

	// ErrTooManyMines indicates more mines than board cells.
	ErrTooManyMines = errors.New("minesweeper: mine count exceeds cell count")

	// ErrOutOfBounds indicates a cell outside the board.
	ErrOutOfBounds = errors.New("minesweeper: cell out of bounds")
)

// Cell addresses one board position.
type Cell struct {
	Row, Col int
}

// neighborOffsets is precomputed for adjacency lookups: the eight
// surrounding positions.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Options contains tunable board parameters.
type Options struct {
	// Height and Width define the board dimensions.
	Height, Width int
	// Mines is the number of mines to place.
	Mines int
	// Rand supplies randomness for mine placement and fallback moves.
	// Nil means a time-seeded source.
	Rand *rand.Rand
}

// DefaultOptions returns the course defaults: an 8×8 board with 8 mines.
func DefaultOptions() Options {
	return Options{Height: 8, Width: 8, Mines: 8}
}

// Option adjusts board construction.
type Option func(*Options)

// WithSize sets board dimensions.
func WithSize(height, width int) Option {
	return func(o *Options) {
		o.Height = height
		o.Width = width
	}
}

// WithMines sets the number of mines to place.
func WithMines(n int) Option {
	return func(o *Options) { o.Mines = n }
}

// WithRand injects a deterministic randomness source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
