package nim_test

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/nim"
)

func TestNewGameDefaults(t *testing.T) {
	g := nim.NewGame()
	want := []int{1, 3, 5, 7}
	if len(g.Piles) != 4 {
		t.Fatalf("Piles = %v; want %v", g.Piles, want)
	}
	for i, n := range want {
		if g.Piles[i] != n {
			t.Errorf("Piles[%d] = %d; want %d", i, g.Piles[i], n)
		}
	}
	if g.Player != 0 || g.Winner != -1 {
		t.Errorf("fresh game: player %d winner %d; want 0 and -1", g.Player, g.Winner)
	}
}

func TestAvailableActions(t *testing.T) {
	acts := nim.AvailableActions([]int{2, 0, 1})
	want := []nim.Action{{Pile: 0, Count: 1}, {Pile: 0, Count: 2}, {Pile: 2, Count: 1}}
	if len(acts) != len(want) {
		t.Fatalf("AvailableActions = %v; want %v", acts, want)
	}
	for i := range want {
		if acts[i] != want[i] {
			t.Errorf("acts[%d] = %v; want %v", i, acts[i], want[i])
		}
	}
}

func TestMove(t *testing.T) {
	g := nim.NewGame(2, 1)
	if err := g.Move(nim.Action{Pile: 0, Count: 2}); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if g.Piles[0] != 0 || g.Player != 1 {
		t.Errorf("after move: piles %v player %d", g.Piles, g.Player)
	}

	// invalid moves
	if err := g.Move(nim.Action{Pile: 0, Count: 1}); !errors.Is(err, nim.ErrInvalidAction) {
		t.Errorf("empty pile: want ErrInvalidAction, got %v", err)
	}
	if err := g.Move(nim.Action{Pile: 9, Count: 1}); !errors.Is(err, nim.ErrInvalidAction) {
		t.Errorf("bad pile: want ErrInvalidAction, got %v", err)
	}

	// player 1 takes the last object and loses: player 0 wins
	if err := g.Move(nim.Action{Pile: 1, Count: 1}); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if !g.Over() || g.Winner != 0 {
		t.Errorf("winner = %d; want 0 (last taker loses)", g.Winner)
	}
	if err := g.Move(nim.Action{Pile: 0, Count: 1}); !errors.Is(err, nim.ErrGameOver) {
		t.Errorf("move after end: want ErrGameOver, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := nim.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	for _, bad := range []nim.Config{
		{Alpha: 0, Epsilon: 0.1, Games: 1},
		{Alpha: 0.5, Epsilon: -0.1, Games: 1},
		{Alpha: 0.5, Epsilon: 0.1, Games: -1},
	} {
		if err := bad.Validate(); !errors.Is(err, nim.ErrBadConfig) {
			t.Errorf("Validate(%+v): want ErrBadConfig, got %v", bad, err)
		}
	}
}

func TestUpdateRule(t *testing.T) {
	ai, err := nim.NewAI(nim.Config{Alpha: 0.5, Epsilon: 0, Games: 0}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	oldPiles := []int{1, 1}
	a := nim.Action{Pile: 0, Count: 1}
	ai.Update(oldPiles, a, []int{0, 1}, 1)
	// Q ← 0 + 0.5·(1 + 0 − 0) = 0.5
	if got := ai.QValue(oldPiles, a); got != 0.5 {
		t.Errorf("QValue = %v; want 0.5", got)
	}
	ai.Update(oldPiles, a, []int{0, 1}, 1)
	// Q ← 0.5 + 0.5·(1 + 0 − 0.5) = 0.75
	if got := ai.QValue(oldPiles, a); got != 0.75 {
		t.Errorf("QValue = %v; want 0.75", got)
	}
}

// TestBestFutureReward: the maximum must be taken over the actual
// Q-values, including when every available action has learned a
// negative value; only a terminal state yields zero.
func TestBestFutureReward(t *testing.T) {
	ai, err := nim.NewAI(nim.Config{Alpha: 0.5, Epsilon: 0, Games: 0}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	// taking the last object loses: Q([1],(0,1)) ← 0 + 0.5·(−1) = −0.5
	ai.Update([]int{1}, nim.Action{Pile: 0, Count: 1}, []int{0}, -1)
	if got := ai.BestFutureReward([]int{1}); got != -0.5 {
		t.Errorf("BestFutureReward([1]) = %v; want -0.5", got)
	}

	// an unseen action still counts as zero and wins the max
	ai.Update([]int{2}, nim.Action{Pile: 0, Count: 2}, []int{0}, -1)
	if got := ai.BestFutureReward([]int{2}); got != 0 {
		t.Errorf("BestFutureReward([2]) = %v; want 0 from the unseen action", got)
	}

	if got := ai.BestFutureReward([]int{0, 0}); got != 0 {
		t.Errorf("BestFutureReward(terminal) = %v; want 0", got)
	}
}

func TestChooseAction(t *testing.T) {
	ai, err := nim.NewAI(nim.Config{Alpha: 0.5, Epsilon: 0, Games: 0}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	piles := []int{0, 2}
	best := nim.Action{Pile: 1, Count: 2}
	ai.Update(piles, best, []int{0, 0}, 1)

	got, err := ai.ChooseAction(piles, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != best {
		t.Errorf("ChooseAction = %v; want learned best %v", got, best)
	}

	if _, err := ai.ChooseAction([]int{0, 0}, false); !errors.Is(err, nim.ErrNoActions) {
		t.Errorf("terminal state: want ErrNoActions, got %v", err)
	}
}

// TestTrainBeatsRandom trains a small agent and checks it wins most
// games against a uniformly random opponent.
func TestTrainBeatsRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ai, err := nim.Train(nim.Config{Alpha: 0.5, Epsilon: 0.1, Games: 5000}, rng)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	const matches = 200
	wins := 0
	for i := 0; i < matches; i++ {
		g := nim.NewGame()
		aiPlayer := i % 2
		for !g.Over() {
			var a nim.Action
			if g.Player == aiPlayer {
				a, err = ai.ChooseAction(g.Piles, false)
			} else {
				acts := nim.AvailableActions(g.Piles)
				a = acts[rng.Intn(len(acts))]
				err = nil
			}
			if err != nil {
				t.Fatal(err)
			}
			if err := g.Move(a); err != nil {
				t.Fatal(err)
			}
		}
		if g.Winner == aiPlayer {
			wins++
		}
	}
	if wins < matches*3/4 {
		t.Errorf("trained agent won %d/%d vs random; want at least 75%%", wins, matches)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ai, err := nim.NewAI(nim.DefaultConfig(), rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	piles := []int{1, 3}
	a := nim.Action{Pile: 1, Count: 2}
	ai.Update(piles, a, []int{1, 1}, 1)

	path := filepath.Join(t.TempDir(), "model.json")
	if err := ai.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := nim.LoadAI(path)
	if err != nil {
		t.Fatalf("LoadAI: %v", err)
	}
	if got, want := loaded.QValue(piles, a), ai.QValue(piles, a); got != want {
		t.Errorf("loaded QValue = %v; want %v", got, want)
	}

	if _, err := nim.LoadAI(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadAI of missing file: want error")
	}
}
