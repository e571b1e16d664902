package logic

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownSymbol indicates evaluation against a model that does not
// assign one of the sentence's symbols.
var ErrUnknownSymbol = errors.New("logic: symbol not in model")

// Model assigns truth values to symbol names.
type Model map[string]bool

// Sentence is a propositional-logic sentence.
type Sentence interface {
	// Evaluate returns the truth value of the sentence in model.
	Evaluate(model Model) (bool, error)
	// Formula renders the sentence as a readable string.
	Formula() string
	// Symbols returns the set of symbol names the sentence mentions.
	Symbols() map[string]struct{}
}

// Symbol is an atomic proposition.
type Symbol string

// Evaluate looks the symbol up in model.
func (s Symbol) Evaluate(model Model) (bool, error) {
	v, ok := model[string(s)]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownSymbol, string(s))
	}

	return v, nil
}

// Formula returns the symbol name.
func (s Symbol) Formula() string { return string(s) }

// Symbols returns the singleton set containing the symbol.
func (s Symbol) Symbols() map[string]struct{} {
	return map[string]struct{}{string(s): {}}
}

// NotSentence negates its operand. Construct with Not.
type NotSentence struct {
	Operand Sentence
}

// Not returns the negation of s.
func Not(s Sentence) NotSentence { return NotSentence{Operand: s} }

// Evaluate returns the inverted truth value of the operand.
func (n NotSentence) Evaluate(model Model) (bool, error) {
	v, err := n.Operand.Evaluate(model)

	return !v, err
}

// Formula renders ¬(operand), parenthesizing compound operands.
func (n NotSentence) Formula() string { return "¬" + parenthesize(n.Operand) }

// Symbols returns the operand's symbols.
func (n NotSentence) Symbols() map[string]struct{} { return n.Operand.Symbols() }

// AndSentence is a conjunction of one or more conjuncts. Construct with And.
type AndSentence struct {
	Conjuncts []Sentence
}

// And returns the conjunction of the given sentences.
func And(conjuncts ...Sentence) AndSentence { return AndSentence{Conjuncts: conjuncts} }

// Evaluate returns true iff every conjunct is true.
func (a AndSentence) Evaluate(model Model) (bool, error) {
	for _, c := range a.Conjuncts {
		v, err := c.Evaluate(model)
		if err != nil {
			return false, err
		}
		if !v {
			return false, nil
		}
	}

	return true, nil
}

// Formula joins the conjuncts with ∧.
func (a AndSentence) Formula() string { return joinFormulas(a.Conjuncts, " ∧ ") }

// Symbols returns the union of the conjuncts' symbols.
func (a AndSentence) Symbols() map[string]struct{} { return unionSymbols(a.Conjuncts) }

// OrSentence is a disjunction of one or more disjuncts. Construct with Or.
type OrSentence struct {
	Disjuncts []Sentence
}

// Or returns the disjunction of the given sentences.
func Or(disjuncts ...Sentence) OrSentence { return OrSentence{Disjuncts: disjuncts} }

// Evaluate returns true iff any disjunct is true.
func (o OrSentence) Evaluate(model Model) (bool, error) {
	for _, d := range o.Disjuncts {
		v, err := d.Evaluate(model)
		if err != nil {
			return false, err
		}
		if v {
			return true, nil
		}
	}

	return false, nil
}

// Formula joins the disjuncts with ∨.
func (o OrSentence) Formula() string { return joinFormulas(o.Disjuncts, " ∨ ") }

// Symbols returns the union of the disjuncts' symbols.
func (o OrSentence) Symbols() map[string]struct{} { return unionSymbols(o.Disjuncts) }

// Implication is antecedent ⇒ consequent. Construct with Implies.
type Implication struct {
	Antecedent, Consequent Sentence
}

// Implies returns the implication a ⇒ b.
func Implies(a, b Sentence) Implication { return Implication{Antecedent: a, Consequent: b} }

// Evaluate returns false only when the antecedent holds and the
// consequent does not.
func (i Implication) Evaluate(model Model) (bool, error) {
	a, err := i.Antecedent.Evaluate(model)
	if err != nil {
		return false, err
	}
	c, err := i.Consequent.Evaluate(model)
	if err != nil {
		return false, err
	}

	return !a || c, nil
}

// Formula renders (antecedent ⇒ consequent).
func (i Implication) Formula() string {
	return parenthesize(i.Antecedent) + " ⇒ " + parenthesize(i.Consequent)
}

// Symbols returns the union of both sides' symbols.
func (i Implication) Symbols() map[string]struct{} {
	return unionSymbols([]Sentence{i.Antecedent, i.Consequent})
}

// Biconditional is left ⇔ right. Construct with Iff.
type Biconditional struct {
	Left, Right Sentence
}

// Iff returns the biconditional a ⇔ b.
func Iff(a, b Sentence) Biconditional { return Biconditional{Left: a, Right: b} }

// Evaluate returns true when both sides agree.
func (b Biconditional) Evaluate(model Model) (bool, error) {
	l, err := b.Left.Evaluate(model)
	if err != nil {
		return false, err
	}
	r, err := b.Right.Evaluate(model)
	if err != nil {
		return false, err
	}

	return l == r, nil
}

// Formula renders (left ⇔ right).
func (b Biconditional) Formula() string {
	return parenthesize(b.Left) + " ⇔ " + parenthesize(b.Right)
}

// Symbols returns the union of both sides' symbols.
func (b Biconditional) Symbols() map[string]struct{} {
	return unionSymbols([]Sentence{b.Left, b.Right})
}

// parenthesize wraps compound sentences in parentheses; atoms and
// negations read fine bare.
func parenthesize(s Sentence) string {
	switch s.(type) {
	case Symbol, NotSentence:
		return s.Formula()
	default:
		return "(" + s.Formula() + ")"
	}
}

// joinFormulas renders each sentence and joins with sep.
func joinFormulas(ss []Sentence, sep string) string {
	if len(ss) == 1 {
		return ss[0].Formula()
	}
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = parenthesize(s)
	}

	return strings.Join(parts, sep)
}

// unionSymbols collects the symbols of all sentences.
func unionSymbols(ss []Sentence) map[string]struct{} {
	out := make(map[string]struct{})
	for _, s := range ss {
		for sym := range s.Symbols() {
			out[sym] = struct{}{}
		}
	}

	return out
}

// Entails reports whether knowledge entails query: whether query holds
// in every model in which knowledge holds.
//
// Complexity: O(2^n · s) over n distinct symbols.
func Entails(knowledge, query Sentence) (bool, error) {
	symbolSet := unionSymbols([]Sentence{knowledge, query})
	symbols := make([]string, 0, len(symbolSet))
	for s := range symbolSet {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	model := make(Model, len(symbols))

	return checkAll(knowledge, query, symbols, model)
}

// checkAll recursively enumerates truth assignments over the remaining
// symbols, verifying the query wherever the knowledge base holds.
func checkAll(knowledge, query Sentence, remaining []string, model Model) (bool, error) {
	if len(remaining) == 0 {
		kb, err := knowledge.Evaluate(model)
		if err != nil {
			return false, err
		}
		if !kb {
			// knowledge does not hold here; the model is irrelevant
			return true, nil
		}

		return query.Evaluate(model)
	}

	sym, rest := remaining[0], remaining[1:]
	for _, v := range [2]bool{true, false} {
		model[sym] = v
		ok, err := checkAll(knowledge, query, rest, model)
		if err != nil || !ok {
			return false, err
		}
	}
	delete(model, sym)

	return true, nil
}
