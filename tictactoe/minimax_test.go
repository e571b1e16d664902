package tictactoe_test

import (
	"errors"
	"testing"

	ttt "github.com/AndrewS622/Introduction-to-Artificial-Intelligence/tictactoe"
)

func TestMinimaxTerminalBoard(t *testing.T) {
	b := board([3]string{"XXX", "OO ", ""})
	if _, err := ttt.Minimax(b); !errors.Is(err, ttt.ErrTerminalBoard) {
		t.Errorf("want ErrTerminalBoard, got %v", err)
	}
}

func TestMinimaxTakesImmediateWin(t *testing.T) {
	// X to move, winning at (0,2)
	b := board([3]string{"XX ", "OO ", ""})
	move, err := ttt.Minimax(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if move != (ttt.Action{Row: 0, Col: 2}) {
		t.Errorf("Minimax = %v; want (0,2)", move)
	}
}

func TestMinimaxBlocksLoss(t *testing.T) {
	// O to move; X threatens (0,2). Every non-blocking move loses
	// immediately, so the block is uniquely optimal.
	b := board([3]string{"XX ", " O ", ""})
	move, err := ttt.Minimax(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if move != (ttt.Action{Row: 0, Col: 2}) {
		t.Errorf("Minimax = %v; want block at (0,2)", move)
	}
}

// TestMinimaxPerfectPlayDraws verifies two minimax players always tie.
func TestMinimaxPerfectPlayDraws(t *testing.T) {
	b := ttt.NewBoard()
	for !b.Terminal() {
		move, err := ttt.Minimax(b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b, err = b.Result(move); err != nil {
			t.Fatalf("illegal minimax move %v: %v", move, err)
		}
	}
	if _, won := b.Winner(); won {
		t.Errorf("perfect self-play should draw, got winner on\n%v", b)
	}
}

func BenchmarkMinimaxOpening(b *testing.B) {
	start := ttt.NewBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ttt.Minimax(start); err != nil {
			b.Fatal(err)
		}
	}
}
