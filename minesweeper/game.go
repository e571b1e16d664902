package minesweeper

import (
	"math/rand"
	"strings"
	"time"
)

// Game is a minesweeper board with hidden mine placement.
type Game struct {
	Height, Width int

	mines map[Cell]struct{}
	found map[Cell]struct{}
	rng   *rand.Rand
}

// NewGame builds a board and scatters mines with the configured RNG.
// Returns ErrBadDimensions or ErrTooManyMines for invalid options.
//
// Complexity: O(mines) expected placement, O(1) queries thereafter.
func NewGame(opts ...Option) (*Game, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Height <= 0 || o.Width <= 0 {
		return nil, ErrBadDimensions
	}
	if o.Mines > o.Height*o.Width {
		return nil, ErrTooManyMines
	}
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		Height: o.Height,
		Width:  o.Width,
		mines:  make(map[Cell]struct{}, o.Mines),
		found:  make(map[Cell]struct{}),
		rng:    rng,
	}
	for len(g.mines) < o.Mines {
		c := Cell{Row: rng.Intn(o.Height), Col: rng.Intn(o.Width)}
		g.mines[c] = struct{}{}
	}

	return g, nil
}

// inBounds reports whether c lies on the board.
func (g *Game) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// IsMine reports whether c hides a mine.
// Returns ErrOutOfBounds for cells off the board.
func (g *Game) IsMine(c Cell) (bool, error) {
	if !g.inBounds(c) {
		return false, ErrOutOfBounds
	}
	_, ok := g.mines[c]

	return ok, nil
}

// NearbyMines counts mines within one row and column of c, excluding
// c itself.
func (g *Game) NearbyMines(c Cell) (int, error) {
	if !g.inBounds(c) {
		return 0, ErrOutOfBounds
	}
	count := 0
	for _, off := range neighborOffsets {
		n := Cell{Row: c.Row + off[0], Col: c.Col + off[1]}
		if !g.inBounds(n) {
			continue
		}
		if _, mine := g.mines[n]; mine {
			count++
		}
	}

	return count, nil
}

// Flag records that the player has flagged c as a mine.
func (g *Game) Flag(c Cell) {
	g.found[c] = struct{}{}
}

// Won reports whether every mine (and nothing else) has been flagged.
func (g *Game) Won() bool {
	if len(g.found) != len(g.mines) {
		return false
	}
	for c := range g.mines {
		if _, ok := g.found[c]; !ok {
			return false
		}
	}

	return true
}

// String renders the hidden board, X marking mines.
func (g *Game) String() string {
	var sb strings.Builder
	border := strings.Repeat("--", g.Width) + "-\n"
	for i := 0; i < g.Height; i++ {
		sb.WriteString(border)
		for j := 0; j < g.Width; j++ {
			if _, mine := g.mines[Cell{Row: i, Col: j}]; mine {
				sb.WriteString("|X")
			} else {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	return sb.String()
}
