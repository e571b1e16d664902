package questions

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyCorpus indicates a corpus directory with no .txt documents.
var ErrEmptyCorpus = errors.New("questions: empty corpus")

// LoadCorpus maps each .txt file name under dir to its contents,
// reading files concurrently with a GOMAXPROCS cap.
func LoadCorpus(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("questions: read corpus dir: %w", err)
	}

	corpus := make(map[string]string)
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		e := e
		g.Go(func() error {
			raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				return fmt.Errorf("questions: read document: %w", err)
			}
			mu.Lock()
			corpus[e.Name()] = string(raw)
			mu.Unlock()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}

	return corpus, nil
}

// Tokenize lowercases document, splits it into words, and drops
// stopwords and tokens with no letter in them.
func Tokenize(document string) []string {
	fields := strings.FieldsFunc(strings.ToLower(document), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	var words []string
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f == "" || stopwords[f] || !strings.ContainsFunc(f, unicode.IsLetter) {
			continue
		}
		words = append(words, f)
	}

	return words
}

// Sentences splits document into sentences on ., ! and ? boundaries,
// trimming surrounding whitespace and dropping empties.
func Sentences(document string) []string {
	var sentences []string
	var b strings.Builder
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}
	for _, r := range document {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()

	return sentences
}
