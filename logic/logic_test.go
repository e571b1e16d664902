package logic_test

import (
	"errors"
	"testing"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/logic"
)

func TestEvaluate(t *testing.T) {
	p, q := logic.Symbol("P"), logic.Symbol("Q")
	model := logic.Model{"P": true, "Q": false}

	tests := []struct {
		name string
		s    logic.Sentence
		want bool
	}{
		{"symbol true", p, true},
		{"symbol false", q, false},
		{"not", logic.Not(q), true},
		{"and false", logic.And(p, q), false},
		{"and true", logic.And(p, logic.Not(q)), true},
		{"or", logic.Or(p, q), true},
		{"implication vacuous", logic.Implies(q, p), true},
		{"implication failed", logic.Implies(p, q), false},
		{"iff disagree", logic.Iff(p, q), false},
		{"iff agree", logic.Iff(p, logic.Not(q)), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.s.Evaluate(model)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Evaluate() = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestEvaluateUnknownSymbol(t *testing.T) {
	s := logic.And(logic.Symbol("P"), logic.Symbol("R"))
	if _, err := s.Evaluate(logic.Model{"P": true}); !errors.Is(err, logic.ErrUnknownSymbol) {
		t.Errorf("want ErrUnknownSymbol, got %v", err)
	}
}

func TestFormula(t *testing.T) {
	p, q := logic.Symbol("P"), logic.Symbol("Q")
	tests := []struct {
		s    logic.Sentence
		want string
	}{
		{logic.Not(p), "¬P"},
		{logic.Not(logic.And(p, q)), "¬(P ∧ Q)"},
		{logic.And(p, q), "P ∧ Q"},
		{logic.Or(p, logic.Not(q)), "P ∨ ¬Q"},
		{logic.Implies(p, q), "P ⇒ Q"},
		{logic.Iff(p, logic.Or(p, q)), "P ⇔ (P ∨ Q)"},
	}
	for _, tc := range tests {
		if got := tc.s.Formula(); got != tc.want {
			t.Errorf("Formula() = %q; want %q", got, tc.want)
		}
	}
}

func TestSymbols(t *testing.T) {
	s := logic.Implies(logic.And(logic.Symbol("A"), logic.Symbol("B")), logic.Symbol("A"))
	syms := s.Symbols()
	if len(syms) != 2 {
		t.Fatalf("Symbols() = %v; want {A, B}", syms)
	}
	for _, want := range []string{"A", "B"} {
		if _, ok := syms[want]; !ok {
			t.Errorf("Symbols() missing %q", want)
		}
	}
}

func TestEntails(t *testing.T) {
	p, q, r := logic.Symbol("P"), logic.Symbol("Q"), logic.Symbol("R")

	tests := []struct {
		name      string
		knowledge logic.Sentence
		query     logic.Sentence
		want      bool
	}{
		{"modus ponens", logic.And(logic.Implies(p, q), p), q, true},
		{"no entailment", logic.Or(p, q), p, false},
		{"chained implication", logic.And(logic.Implies(p, q), logic.Implies(q, r), p), r, true},
		{"contradictory knowledge entails anything", logic.And(p, logic.Not(p)), q, true},
		{"biconditional", logic.And(logic.Iff(p, q), logic.Not(q)), logic.Not(p), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := logic.Entails(tc.knowledge, tc.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Entails(%s ⊨ %s) = %v; want %v",
					tc.knowledge.Formula(), tc.query.Formula(), got, tc.want)
			}
		})
	}
}
