package parser

import "strings"

// Tree is a parse-tree node. Leaves carry a Word under a terminal
// category label; interior nodes carry Children.
type Tree struct {
	Label    string
	Word     string
	Children []*Tree
}

// Leaf reports whether t is a word node.
func (t *Tree) Leaf() bool { return t.Word != "" }

// String renders the tree in single-line bracketed form, e.g.
// (S (NP (N holmes)) (VP (V sat))).
func (t *Tree) String() string {
	var b strings.Builder
	t.write(&b)

	return b.String()
}

func (t *Tree) write(b *strings.Builder) {
	if t.Leaf() {
		b.WriteByte('(')
		b.WriteString(t.Label)
		b.WriteByte(' ')
		b.WriteString(t.Word)
		b.WriteByte(')')

		return
	}
	b.WriteByte('(')
	b.WriteString(t.Label)
	for _, c := range t.Children {
		b.WriteByte(' ')
		c.write(b)
	}
	b.WriteByte(')')
}

// Pretty renders the tree one constituent per line, indented by
// depth.
func (t *Tree) Pretty() string {
	var b strings.Builder
	t.pretty(&b, 0)

	return b.String()
}

func (t *Tree) pretty(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	if t.Leaf() {
		b.WriteString(t.Label)
		b.WriteByte(' ')
		b.WriteString(t.Word)
		b.WriteByte('\n')

		return
	}
	b.WriteString(t.Label)
	b.WriteByte('\n')
	for _, c := range t.Children {
		c.pretty(b, depth+1)
	}
}

// Words returns the leaf words of t in order.
func (t *Tree) Words() []string {
	if t.Leaf() {
		return []string{t.Word}
	}
	var out []string
	for _, c := range t.Children {
		out = append(out, c.Words()...)
	}

	return out
}

// Grammar is a context-free grammar: production rules over
// nonterminals plus a lexicon mapping terminal categories to words.
type Grammar struct {
	// Start is the start symbol.
	Start string
	// Rules maps each nonterminal to its right-hand sides.
	Rules map[string][][]string
	// Lexicon maps each terminal category to its word set.
	Lexicon map[string]map[string]bool
}

// terminal reports whether sym is a terminal category.
func (g *Grammar) terminal(sym string) bool {
	_, ok := g.Lexicon[sym]

	return ok
}

// knows reports whether any terminal category covers word.
func (g *Grammar) knows(word string) bool {
	for _, words := range g.Lexicon {
		if words[word] {
			return true
		}
	}

	return false
}

// HolmesGrammar returns the course grammar covering the bundled
// Sherlock Holmes sentences.
func HolmesGrammar() *Grammar {
	lex := func(words ...string) map[string]bool {
		set := make(map[string]bool, len(words))
		for _, w := range words {
			set[w] = true
		}

		return set
	}

	return &Grammar{
		Start: "S",
		Rules: map[string][][]string{
			"S": {
				{"NP", "VP"},
				{"S", "Conj", "S"},
			},
			"NP": {
				{"Nom"},
				{"Det", "Nom"},
				{"NP", "PP"},
			},
			"Nom": {
				{"N"},
				{"Adj", "Nom"},
			},
			"VP": {
				{"V"},
				{"V", "NP"},
				{"V", "PP"},
				{"VP", "Adv"},
				{"Adv", "VP"},
				{"VP", "Conj", "VP"},
			},
			"PP": {
				{"P", "NP"},
			},
		},
		Lexicon: map[string]map[string]bool{
			"Adj":  lex("country", "dreadful", "enigmatical", "little", "moist", "red"),
			"Adv":  lex("down", "here", "never"),
			"Conj": lex("and", "until"),
			"Det":  lex("a", "an", "his", "my", "the"),
			"N": lex(
				"armchair", "companion", "day", "door", "hand", "he",
				"himself", "holmes", "home", "i", "mess", "paint",
				"palm", "pipe", "she", "smile", "thursday", "walk",
				"we", "word",
			),
			"P": lex("at", "before", "in", "of", "on", "to"),
			"V": lex(
				"arrived", "came", "chuckled", "had", "lit", "said",
				"sat", "smiled", "tell", "were",
			),
		},
	}
}
