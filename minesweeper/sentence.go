package minesweeper

import (
	"fmt"
	"sort"
	"strings"
)

// Sentence is a logical statement about the board: of the cells in the
// set, exactly Count are mines.
type Sentence struct {
	cells map[Cell]struct{}
	count int
}

// NewSentence builds a sentence over a copy of cells.
func NewSentence(cells []Cell, count int) *Sentence {
	s := &Sentence{cells: make(map[Cell]struct{}, len(cells)), count: count}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}

	return s
}

// Count returns the number of mines among the sentence's cells.
func (s *Sentence) Count() int { return s.count }

// Cells returns the sentence's cell set in sorted order.
func (s *Sentence) Cells() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	sortCells(out)

	return out
}

// KnownMines returns the cells known to be mines: when no more cells
// remain than the mine count, every cell is a mine.
func (s *Sentence) KnownMines() []Cell {
	if len(s.cells) > 0 && len(s.cells) <= s.count {
		return s.Cells()
	}

	return nil
}

// KnownSafes returns the cells known to be safe: when the count is
// zero, every cell is safe.
func (s *Sentence) KnownSafes() []Cell {
	if s.count == 0 && len(s.cells) > 0 {
		return s.Cells()
	}

	return nil
}

// MarkMine updates the sentence given that c is a mine: the cell is
// removed and the count decremented.
func (s *Sentence) MarkMine(c Cell) {
	if _, ok := s.cells[c]; ok {
		delete(s.cells, c)
		s.count--
	}
}

// MarkSafe updates the sentence given that c is safe: the cell is
// removed and the count unchanged.
func (s *Sentence) MarkSafe(c Cell) {
	delete(s.cells, c)
}

// Equal reports whether two sentences cover the same cells with the
// same count.
func (s *Sentence) Equal(o *Sentence) bool {
	if s.count != o.count || len(s.cells) != len(o.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := o.cells[c]; !ok {
			return false
		}
	}

	return true
}

// subsetOf reports whether s's cells are a strict subset of o's.
func (s *Sentence) subsetOf(o *Sentence) bool {
	if len(s.cells) >= len(o.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := o.cells[c]; !ok {
			return false
		}
	}

	return true
}

// difference returns the sentence (o∖s, o.count−s.count).
// Only meaningful when s is a subset of o.
func (s *Sentence) difference(o *Sentence) *Sentence {
	diff := &Sentence{cells: make(map[Cell]struct{}), count: o.count - s.count}
	for c := range o.cells {
		if _, ok := s.cells[c]; !ok {
			diff.cells[c] = struct{}{}
		}
	}

	return diff
}

// String renders the sentence as "{(r,c), ...} = n".
func (s *Sentence) String() string {
	parts := make([]string, 0, len(s.cells))
	for _, c := range s.Cells() {
		parts = append(parts, fmt.Sprintf("(%d,%d)", c.Row, c.Col))
	}

	return fmt.Sprintf("{%s} = %d", strings.Join(parts, ", "), s.count)
}

// sortCells orders cells row-major for deterministic output.
func sortCells(cs []Cell) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Row != cs[j].Row {
			return cs[i].Row < cs[j].Row
		}

		return cs[i].Col < cs[j].Col
	})
}
