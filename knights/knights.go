package knights

import (
	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/logic"
)

// Puzzle is one Knights-and-Knaves instance: a knowledge base plus the
// candidate symbols worth querying.
type Puzzle struct {
	Name      string
	Knowledge logic.Sentence
	Symbols   []logic.Symbol
}

// character holds the knight/knave symbols for one inhabitant.
type character struct {
	Knight, Knave logic.Symbol
}

// newCharacter creates symbols like "A is a Knight" / "A is a Knave".
func newCharacter(name string) character {
	return character{
		Knight: logic.Symbol(name + " is a Knight"),
		Knave:  logic.Symbol(name + " is a Knave"),
	}
}

// kind returns the structural constraint: the character is exactly one
// of knight or knave.
func (c character) kind() logic.Sentence {
	return logic.And(
		logic.Or(c.Knight, c.Knave),
		logic.Not(logic.And(c.Knight, c.Knave)),
	)
}

// says encodes a statement by the character: knights speak the truth,
// knaves lie, so the statement holds iff the speaker is a knight.
func (c character) says(s logic.Sentence) logic.Sentence {
	return logic.Iff(c.Knight, s)
}

// Puzzles returns the four puzzles in course order.
func Puzzles() []Puzzle {
	a, b, c := newCharacter("A"), newCharacter("B"), newCharacter("C")

	return []Puzzle{
		{
			// A says "I am both a knight and a knave."
			Name: "Puzzle 0",
			Knowledge: logic.And(
				a.kind(),
				a.says(logic.And(a.Knight, a.Knave)),
			),
			Symbols: []logic.Symbol{a.Knight, a.Knave},
		},
		{
			// A says "We are both knaves." B says nothing.
			Name: "Puzzle 1",
			Knowledge: logic.And(
				a.kind(), b.kind(),
				a.says(logic.And(a.Knave, b.Knave)),
			),
			Symbols: []logic.Symbol{a.Knight, a.Knave, b.Knight, b.Knave},
		},
		{
			// A says "We are the same kind."
			// B says "We are of different kinds."
			Name: "Puzzle 2",
			Knowledge: logic.And(
				a.kind(), b.kind(),
				a.says(logic.Or(
					logic.And(a.Knight, b.Knight),
					logic.And(a.Knave, b.Knave),
				)),
				b.says(logic.Or(
					logic.And(a.Knight, b.Knave),
					logic.And(a.Knave, b.Knight),
				)),
			),
			Symbols: []logic.Symbol{a.Knight, a.Knave, b.Knight, b.Knave},
		},
		{
			// A says either "I am a knight." or "I am a knave.", but
			// you don't know which.
			// B says "A said 'I am a knave'."
			// B says "C is a knave."
			// C says "A is a knight."
			Name: "Puzzle 3",
			Knowledge: logic.And(
				a.kind(), b.kind(), c.kind(),
				logic.Or(
					a.says(a.Knight),
					a.says(a.Knave),
				),
				b.says(a.says(a.Knave)),
				b.says(c.Knave),
				c.says(a.Knight),
			),
			Symbols: []logic.Symbol{
				a.Knight, a.Knave,
				b.Knight, b.Knave,
				c.Knight, c.Knave,
			},
		},
	}
}

// Solve returns the puzzle symbols entailed by its knowledge base, in
// the order they appear in p.Symbols.
func Solve(p Puzzle) ([]logic.Symbol, error) {
	var entailed []logic.Symbol
	for _, sym := range p.Symbols {
		ok, err := logic.Entails(p.Knowledge, sym)
		if err != nil {
			return nil, err
		}
		if ok {
			entailed = append(entailed, sym)
		}
	}

	return entailed, nil
}
