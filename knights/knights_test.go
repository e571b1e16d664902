package knights_test

import (
	"testing"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/knights"
	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/logic"
)

// expected holds the known solutions to the four puzzles.
var expected = map[string][]string{
	"Puzzle 0": {"A is a Knave"},
	"Puzzle 1": {"A is a Knave", "B is a Knight"},
	"Puzzle 2": {"A is a Knave", "B is a Knight"},
	"Puzzle 3": {"A is a Knight", "B is a Knave", "C is a Knight"},
}

func TestSolve(t *testing.T) {
	for _, p := range knights.Puzzles() {
		t.Run(p.Name, func(t *testing.T) {
			got, err := knights.Solve(p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := expected[p.Name]
			if len(got) != len(want) {
				t.Fatalf("Solve() = %v; want %v", got, want)
			}
			gotSet := make(map[string]bool, len(got))
			for _, s := range got {
				gotSet[string(s)] = true
			}
			for _, w := range want {
				if !gotSet[w] {
					t.Errorf("missing conclusion %q in %v", w, got)
				}
			}
		})
	}
}

// TestSolveConsistency checks that no character is concluded to be
// both knight and knave.
func TestSolveConsistency(t *testing.T) {
	for _, p := range knights.Puzzles() {
		got, err := knights.Solve(p)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", p.Name, err)
		}
		seen := make(map[logic.Symbol]bool, len(got))
		for _, s := range got {
			seen[s] = true
		}
		for _, pair := range [][2]string{
			{"A is a Knight", "A is a Knave"},
			{"B is a Knight", "B is a Knave"},
			{"C is a Knight", "C is a Knave"},
		} {
			if seen[logic.Symbol(pair[0])] && seen[logic.Symbol(pair[1])] {
				t.Errorf("%s: contradictory conclusions %q and %q", p.Name, pair[0], pair[1])
			}
		}
	}
}
