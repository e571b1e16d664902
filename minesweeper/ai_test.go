package minesweeper_test

import (
	"math/rand"
	"reflect"
	"testing"

	ms "github.com/AndrewS622/Introduction-to-Artificial-Intelligence/minesweeper"
)

func newTestAI(t *testing.T, h, w int) *ms.AI {
	t.Helper()
	ai, err := ms.NewAI(ms.WithSize(h, w), ms.WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("NewAI: %v", err)
	}

	return ai
}

func TestAddKnowledgeZeroCount(t *testing.T) {
	// a zero report marks every neighbor safe
	ai := newTestAI(t, 3, 3)
	ai.AddKnowledge(ms.Cell{Row: 0, Col: 0}, 0)

	want := cells([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1})
	if got := ai.KnownSafes(); !reflect.DeepEqual(got, want) {
		t.Errorf("KnownSafes() = %v; want %v", got, want)
	}
}

func TestAddKnowledgeSettledMines(t *testing.T) {
	// corner cell with both neighbors mined
	ai := newTestAI(t, 2, 2)
	ai.AddKnowledge(ms.Cell{Row: 0, Col: 0}, 3)

	want := cells([2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1})
	if got := ai.KnownMines(); !reflect.DeepEqual(got, want) {
		t.Errorf("KnownMines() = %v; want %v", got, want)
	}
}

func TestSubsetInference(t *testing.T) {
	// 3×3 board: click center (1,1) reporting 1 over its 8 neighbors,
	// then click corner (0,0) reporting 1 over {(0,1),(1,0)}. The
	// corner sentence is a strict subset of the center's, so the
	// difference sentence {(0,2),(1,2),(2,0),(2,1),(2,2)} = 0 marks
	// those five cells safe.
	ai := newTestAI(t, 3, 3)
	ai.AddKnowledge(ms.Cell{Row: 1, Col: 1}, 1)
	ai.AddKnowledge(ms.Cell{Row: 0, Col: 0}, 1)

	want := cells(
		[2]int{0, 0}, [2]int{0, 2},
		[2]int{1, 1}, [2]int{1, 2},
		[2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2},
	)
	if got := ai.KnownSafes(); !reflect.DeepEqual(got, want) {
		t.Errorf("KnownSafes() = %v; want %v", got, want)
	}
}

func TestSubsetInferenceDerivesMine(t *testing.T) {
	// 1×3 board: cells (0,0) (0,1) (0,2).
	// Click (0,0): neighbors {(0,1)}, count 1 → (0,1) is a mine.
	ai := newTestAI(t, 1, 3)
	ai.AddKnowledge(ms.Cell{Row: 0, Col: 0}, 1)

	if got := ai.KnownMines(); !reflect.DeepEqual(got, cells([2]int{0, 1})) {
		t.Errorf("KnownMines() = %v; want [(0,1)]", got)
	}

	// Click (0,2): neighbors {(0,1)} already a known mine, so the
	// count decrements to zero and nothing new is learned.
	ai.AddKnowledge(ms.Cell{Row: 0, Col: 2}, 1)
	if got := ai.KnownMines(); !reflect.DeepEqual(got, cells([2]int{0, 1})) {
		t.Errorf("KnownMines() after second click = %v; want [(0,1)]", got)
	}
}

func TestSafeAndRandomMoves(t *testing.T) {
	ai := newTestAI(t, 2, 2)

	if _, ok := ai.SafeMove(); ok {
		t.Error("SafeMove on fresh agent should report none")
	}
	if _, ok := ai.RandomMove(); !ok {
		t.Error("RandomMove on fresh agent should find a cell")
	}

	ai.MarkSafe(ms.Cell{Row: 0, Col: 1})
	move, ok := ai.SafeMove()
	if !ok || move != (ms.Cell{Row: 0, Col: 1}) {
		t.Errorf("SafeMove = %v, %v; want (0,1), true", move, ok)
	}
}

func TestGameLifecycle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, err := ms.NewGame(ms.WithSize(4, 4), ms.WithMines(3), ms.WithRand(rng))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	// count mines via IsMine
	mines := 0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			hit, err := g.IsMine(ms.Cell{Row: i, Col: j})
			if err != nil {
				t.Fatalf("IsMine: %v", err)
			}
			if hit {
				g.Flag(ms.Cell{Row: i, Col: j})
				mines++
			}
		}
	}
	if mines != 3 {
		t.Errorf("placed mines = %d; want 3", mines)
	}
	if !g.Won() {
		t.Error("flagging exactly the mines should win")
	}

	if _, err := g.IsMine(ms.Cell{Row: 9, Col: 0}); err == nil {
		t.Error("IsMine out of bounds: want error")
	}
}

func TestNewGameErrors(t *testing.T) {
	if _, err := ms.NewGame(ms.WithSize(0, 5)); err == nil {
		t.Error("zero height: want ErrBadDimensions")
	}
	if _, err := ms.NewGame(ms.WithSize(2, 2), ms.WithMines(5)); err == nil {
		t.Error("too many mines: want ErrTooManyMines")
	}
}
