package minesweeper

import (
	"math/rand"
	"time"
)

// AI is a knowledge-based minesweeper player.
type AI struct {
	Height, Width int

	moves     map[Cell]struct{} // cells already clicked
	mines     map[Cell]struct{} // cells known to be mines
	safes     map[Cell]struct{} // cells known to be safe
	knowledge []*Sentence
	rng       *rand.Rand
}

// NewAI creates an agent for a Height×Width board. The Mines option is
// ignored; only dimensions and randomness apply.
func NewAI(opts ...Option) (*AI, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Height <= 0 || o.Width <= 0 {
		return nil, ErrBadDimensions
	}
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &AI{
		Height: o.Height,
		Width:  o.Width,
		moves:  make(map[Cell]struct{}),
		mines:  make(map[Cell]struct{}),
		safes:  make(map[Cell]struct{}),
		rng:    rng,
	}, nil
}

// KnownMines returns the cells the agent has concluded are mines.
func (ai *AI) KnownMines() []Cell {
	out := make([]Cell, 0, len(ai.mines))
	for c := range ai.mines {
		out = append(out, c)
	}
	sortCells(out)

	return out
}

// KnownSafes returns the cells the agent has concluded are safe.
func (ai *AI) KnownSafes() []Cell {
	out := make([]Cell, 0, len(ai.safes))
	for c := range ai.safes {
		out = append(out, c)
	}
	sortCells(out)

	return out
}

// MarkMine records c as a mine and updates every sentence accordingly.
func (ai *AI) MarkMine(c Cell) {
	ai.mines[c] = struct{}{}
	for _, s := range ai.knowledge {
		s.MarkMine(c)
	}
}

// MarkSafe records c as safe and updates every sentence accordingly.
func (ai *AI) MarkSafe(c Cell) {
	ai.safes[c] = struct{}{}
	for _, s := range ai.knowledge {
		s.MarkSafe(c)
	}
}

// AddKnowledge digests the board's report that safe cell c neighbors
// count mines. It records the move, adds a sentence restricted to the
// still-unknown neighbors, and then runs inference to a fixed point:
// conclude mines and safes from settled sentences, and derive new
// sentences from strict subset pairs.
func (ai *AI) AddKnowledge(c Cell, count int) {
	ai.moves[c] = struct{}{}
	ai.MarkSafe(c)

	// Restrict the new sentence to neighbors whose state is unknown;
	// known mines among them lower the count instead.
	var unknown []Cell
	for _, n := range ai.neighbors(c) {
		if _, done := ai.moves[n]; done {
			continue
		}
		if _, safe := ai.safes[n]; safe {
			continue
		}
		if _, mine := ai.mines[n]; mine {
			count--

			continue
		}
		unknown = append(unknown, n)
	}
	if len(unknown) > 0 {
		ai.knowledge = append(ai.knowledge, NewSentence(unknown, count))
	}

	ai.infer()
}

// infer repeatedly applies the two inference rules until the knowledge
// base stops changing.
func (ai *AI) infer() {
	for changed := true; changed; {
		changed = false

		// Rule 1: settled sentences yield mines or safes.
		for _, s := range ai.knowledge {
			for _, m := range s.KnownMines() {
				if _, known := ai.mines[m]; !known {
					ai.MarkMine(m)
					changed = true
				}
			}
			for _, sf := range s.KnownSafes() {
				if _, known := ai.safes[sf]; !known {
					ai.MarkSafe(sf)
					changed = true
				}
			}
		}

		// Rule 2: subset pairs yield difference sentences.
		var derived []*Sentence
		for _, s1 := range ai.knowledge {
			for _, s2 := range ai.knowledge {
				if s1 == s2 || !s1.subsetOf(s2) {
					continue
				}
				diff := s1.difference(s2)
				if !ai.hasSentence(diff) && !hasSentenceIn(derived, diff) {
					derived = append(derived, diff)
				}
			}
		}
		if len(derived) > 0 {
			ai.knowledge = append(ai.knowledge, derived...)
			changed = true
		}

		// Drop exhausted sentences to keep the subset scan small.
		kept := ai.knowledge[:0]
		for _, s := range ai.knowledge {
			if len(s.cells) > 0 {
				kept = append(kept, s)
			}
		}
		ai.knowledge = kept
	}
}

// hasSentence reports whether an equal sentence is already known.
func (ai *AI) hasSentence(s *Sentence) bool {
	return hasSentenceIn(ai.knowledge, s)
}

func hasSentenceIn(list []*Sentence, s *Sentence) bool {
	for _, k := range list {
		if k.Equal(s) {
			return true
		}
	}

	return false
}

// neighbors returns the in-bounds cells surrounding c.
func (ai *AI) neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := Cell{Row: c.Row + off[0], Col: c.Col + off[1]}
		if n.Row >= 0 && n.Row < ai.Height && n.Col >= 0 && n.Col < ai.Width {
			out = append(out, n)
		}
	}

	return out
}

// SafeMove returns a cell known to be safe that has not been clicked
// yet. The second return is false when no such cell exists.
func (ai *AI) SafeMove() (Cell, bool) {
	var avail []Cell
	for c := range ai.safes {
		if _, done := ai.moves[c]; !done {
			avail = append(avail, c)
		}
	}
	if len(avail) == 0 {
		return Cell{}, false
	}
	sortCells(avail)

	return avail[ai.rng.Intn(len(avail))], true
}

// RandomMove returns a uniformly random cell that has not been clicked
// and is not a known mine. The second return is false when the board
// is exhausted.
func (ai *AI) RandomMove() (Cell, bool) {
	var avail []Cell
	for i := 0; i < ai.Height; i++ {
		for j := 0; j < ai.Width; j++ {
			c := Cell{Row: i, Col: j}
			if _, done := ai.moves[c]; done {
				continue
			}
			if _, mine := ai.mines[c]; mine {
				continue
			}
			avail = append(avail, c)
		}
	}
	if len(avail) == 0 {
		return Cell{}, false
	}

	return avail[ai.rng.Intn(len(avail))], true
}
