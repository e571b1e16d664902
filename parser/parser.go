package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Sentinel errors for parsing.
var (
	// ErrEmptySentence indicates preprocessing left no tokens.
	ErrEmptySentence = errors.New("parser: empty sentence")

	// ErrUnknownWord indicates a token outside the grammar's
	// vocabulary.
	ErrUnknownWord = errors.New("parser: unknown word")

	// ErrNoParse indicates the grammar licenses no tree for the
	// sentence.
	ErrNoParse = errors.New("parser: no parse")
)

// Preprocess lowercases a sentence, splits it on non-alphanumeric
// runs, and drops tokens with no letter in them.
func Preprocess(sentence string) []string {
	fields := strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var words []string
	for _, f := range fields {
		if strings.ContainsFunc(f, unicode.IsLetter) {
			words = append(words, f)
		}
	}

	return words
}

// Parse returns every parse tree g licenses for the token sequence.
// Returns ErrEmptySentence for no tokens, ErrUnknownWord naming the
// first out-of-vocabulary token, and ErrNoParse when the grammar
// derives no tree spanning the sentence.
//
// Complexity: O(n³) span cells; ambiguous spans multiply the tree
// count, which stays small for the sentence lengths involved.
func Parse(g *Grammar, words []string) ([]*Tree, error) {
	if len(words) == 0 {
		return nil, ErrEmptySentence
	}
	for _, w := range words {
		if !g.knows(w) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWord, w)
		}
	}

	p := &spanParser{g: g, words: words, memo: make(map[spanKey][]*Tree)}
	trees := p.parse(g.Start, 0, len(words))
	if len(trees) == 0 {
		return nil, ErrNoParse
	}

	return trees, nil
}

// spanKey identifies one (symbol, token span) parse question.
type spanKey struct {
	sym  string
	i, j int
}

type spanParser struct {
	g     *Grammar
	words []string
	memo  map[spanKey][]*Tree
}

// parse returns every tree deriving words[i:j] from sym. Left
// recursion is safe because every recursive call shrinks the span:
// the grammar has no empty productions, so in a multi-symbol rule
// each symbol consumes at least one token.
func (p *spanParser) parse(sym string, i, j int) []*Tree {
	if p.g.terminal(sym) {
		if j-i == 1 && p.g.Lexicon[sym][p.words[i]] {
			return []*Tree{{Label: sym, Word: p.words[i]}}
		}

		return nil
	}

	key := spanKey{sym: sym, i: i, j: j}
	if trees, ok := p.memo[key]; ok {
		return trees
	}

	var trees []*Tree
	for _, rhs := range p.g.Rules[sym] {
		for _, children := range p.sequence(rhs, i, j) {
			trees = append(trees, &Tree{Label: sym, Children: children})
		}
	}
	p.memo[key] = trees

	return trees
}

// sequence returns every way to derive words[i:j] from the symbol
// sequence rhs, as child-tree slices.
func (p *spanParser) sequence(rhs []string, i, j int) [][]*Tree {
	if len(rhs) == 1 {
		var out [][]*Tree
		for _, t := range p.parse(rhs[0], i, j) {
			out = append(out, []*Tree{t})
		}

		return out
	}

	// First symbol takes words[i:k], the rest recurse on words[k:j];
	// every symbol needs at least one token.
	var out [][]*Tree
	for k := i + 1; k <= j-len(rhs)+1; k++ {
		heads := p.parse(rhs[0], i, k)
		if len(heads) == 0 {
			continue
		}
		for _, tail := range p.sequence(rhs[1:], k, j) {
			for _, head := range heads {
				children := make([]*Tree, 0, len(rhs))
				children = append(children, head)
				children = append(children, tail...)
				out = append(out, children)
			}
		}
	}

	return out
}

// NPChunks returns the noun-phrase subtrees of t that contain no
// nested noun phrase, in left-to-right order.
func NPChunks(t *Tree) []*Tree {
	var chunks []*Tree
	var walk func(*Tree) bool
	walk = func(node *Tree) bool {
		contains := false
		for _, c := range node.Children {
			if walk(c) {
				contains = true
			}
		}
		if node.Label == "NP" {
			if !contains {
				chunks = append(chunks, node)
			}

			return true
		}

		return contains
	}
	walk(t)

	return chunks
}
