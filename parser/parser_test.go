package parser_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/parser"
)

func TestPreprocess(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Holmes sat.", []string{"holmes", "sat"}},
		{"I had a country walk on Thursday!", []string{"i", "had", "a", "country", "walk", "on", "thursday"}},
		{"12 34 56", nil},
		{"", nil},
	}
	for _, tc := range tests {
		if got := parser.Preprocess(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Preprocess(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseSimple(t *testing.T) {
	g := parser.HolmesGrammar()
	trees, err := parser.Parse(g, []string{"holmes", "sat"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(trees) != 1 {
		t.Fatalf("got %d trees; want 1", len(trees))
	}
	if got, want := trees[0].String(), "(S (NP (Nom (N holmes))) (VP (V sat)))"; got != want {
		t.Errorf("tree = %s; want %s", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	g := parser.HolmesGrammar()

	if _, err := parser.Parse(g, nil); !errors.Is(err, parser.ErrEmptySentence) {
		t.Errorf("empty: want ErrEmptySentence, got %v", err)
	}
	if _, err := parser.Parse(g, []string{"holmes", "quaffed"}); !errors.Is(err, parser.ErrUnknownWord) {
		t.Errorf("unknown word: want ErrUnknownWord, got %v", err)
	}
	// known words in an unlicensed order
	if _, err := parser.Parse(g, []string{"sat", "holmes"}); !errors.Is(err, parser.ErrNoParse) {
		t.Errorf("bad order: want ErrNoParse, got %v", err)
	}
}

func TestParseCourseSentences(t *testing.T) {
	sentences := []string{
		"Holmes sat.",
		"Holmes lit a pipe.",
		"We arrived the day before Thursday.",
		"Holmes sat in the red armchair and he chuckled.",
		"My companion smiled an enigmatical smile.",
		"Holmes chuckled to himself.",
		"She never said a word until we were at the door here.",
		"Holmes sat down and lit his pipe.",
		"I had a country walk on Thursday and came home in a dreadful mess.",
		"I had a little moist red paint in the palm of my hand.",
	}
	g := parser.HolmesGrammar()
	for _, s := range sentences {
		t.Run(s, func(t *testing.T) {
			trees, err := parser.Parse(g, parser.Preprocess(s))
			if err != nil {
				t.Fatalf("Parse(%q): %v", s, err)
			}
			if len(trees) == 0 {
				t.Fatalf("no trees for %q", s)
			}
			// leaves must reproduce the sentence
			want := parser.Preprocess(s)
			for _, tree := range trees {
				if got := tree.Words(); !reflect.DeepEqual(got, want) {
					t.Errorf("tree words = %v; want %v", got, want)
				}
			}
		})
	}
}

func TestNPChunks(t *testing.T) {
	g := parser.HolmesGrammar()
	trees, err := parser.Parse(g, parser.Preprocess("Holmes lit a pipe."))
	if err != nil {
		t.Fatal(err)
	}

	chunks := parser.NPChunks(trees[0])
	var got []string
	for _, c := range chunks {
		got = append(got, strings.Join(c.Words(), " "))
	}
	want := []string{"holmes", "a pipe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NPChunks = %v; want %v", got, want)
	}
}

func TestTreePretty(t *testing.T) {
	g := parser.HolmesGrammar()
	trees, err := parser.Parse(g, []string{"holmes", "sat"})
	if err != nil {
		t.Fatal(err)
	}
	pretty := trees[0].Pretty()
	if !strings.Contains(pretty, "S\n") || !strings.Contains(pretty, "N holmes") {
		t.Errorf("Pretty() missing expected lines:\n%s", pretty)
	}
}
