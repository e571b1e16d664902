package pagerank

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/graph"
)

// Sentinel errors for corpus loading and queries.
var (
	// ErrEmptyCorpus indicates a directory without .html files.
	ErrEmptyCorpus = errors.New("pagerank: corpus contains no HTML pages")

	// ErrPageNotFound indicates a queried page absent from the corpus.
	ErrPageNotFound = errors.New("pagerank: page not in corpus")
)

// hrefPattern extracts anchor targets from raw HTML.
var hrefPattern = regexp.MustCompile(`<a\s+(?:[^>]*?)href="([^"]*)"`)

// Corpus is the directed link structure of a set of HTML pages.
type Corpus struct {
	g     *graph.Graph
	pages []string
}

// LoadCorpus parses every .html file in dir. Self-links and links to
// pages outside the corpus are dropped. Returns ErrEmptyCorpus when
// the directory holds no pages.
func LoadCorpus(dir string) (*Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("pagerank: read corpus dir: %w", err)
	}

	links := make(map[string][]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("pagerank: read page %s: %w", e.Name(), err)
		}
		var targets []string
		for _, m := range hrefPattern.FindAllStringSubmatch(string(raw), -1) {
			if m[1] != e.Name() {
				targets = append(targets, m[1])
			}
		}
		links[e.Name()] = targets
	}
	if len(links) == 0 {
		return nil, ErrEmptyCorpus
	}

	g := graph.NewGraph(graph.WithDirected())
	for page := range links {
		_ = g.AddVertex(page)
	}
	for page, targets := range links {
		for _, t := range targets {
			// only links within the corpus count
			if _, ok := links[t]; ok {
				_ = g.AddEdge(page, t)
			}
		}
	}

	return &Corpus{g: g, pages: g.VertexIDs()}, nil
}

// Pages returns all page names, sorted.
func (c *Corpus) Pages() []string { return c.pages }

// Links returns the pages that page links to, sorted.
// Returns ErrPageNotFound for unknown pages.
func (c *Corpus) Links(page string) ([]string, error) {
	nbrs, err := c.g.NeighborIDs(page)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, page)
	}

	return nbrs, nil
}
