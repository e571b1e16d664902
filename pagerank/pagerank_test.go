package pagerank_test

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/pagerank"
)

// writeCorpus lays out a three-page corpus:
//
//	1.html → 2.html
//	2.html → 1.html, 3.html
//	3.html   (dangling; links only to a page outside the corpus)
func writeCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	pages := map[string]string{
		"1.html": `<html><body><a href="2.html">two</a></body></html>`,
		"2.html": `<html><body><a href="1.html">one</a> <a href="3.html">three</a></body></html>`,
		"3.html": `<html><body><a href="external.html">gone</a> <a href="3.html">self</a></body></html>`,
	}
	for name, content := range pages {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

func TestLoadCorpus(t *testing.T) {
	c, err := pagerank.LoadCorpus(writeCorpus(t))
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if got := c.Pages(); len(got) != 3 {
		t.Fatalf("Pages() = %v; want 3 pages", got)
	}

	links, err := c.Links("2.html")
	if err != nil {
		t.Fatalf("Links: %v", err)
	}
	if len(links) != 2 || links[0] != "1.html" || links[1] != "3.html" {
		t.Errorf("Links(2.html) = %v; want [1.html 3.html]", links)
	}

	// self-links and external links are dropped
	links, err = c.Links("3.html")
	if err != nil {
		t.Fatalf("Links: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("Links(3.html) = %v; want none", links)
	}

	if _, err := c.Links("404.html"); err == nil {
		t.Error("Links of unknown page: want error")
	}
}

func TestLoadCorpusEmpty(t *testing.T) {
	if _, err := pagerank.LoadCorpus(t.TempDir()); err != pagerank.ErrEmptyCorpus {
		t.Errorf("want ErrEmptyCorpus, got %v", err)
	}
}

func TestTransitionModel(t *testing.T) {
	c, err := pagerank.LoadCorpus(writeCorpus(t))
	if err != nil {
		t.Fatal(err)
	}

	dist, err := c.TransitionModel("1.html", 0.85)
	if err != nil {
		t.Fatalf("TransitionModel: %v", err)
	}
	// 1.html links only to 2.html: 0.85 + 0.15/3 there, 0.05 elsewhere
	if got, want := dist["2.html"], 0.85+0.15/3; math.Abs(got-want) > 1e-9 {
		t.Errorf("P(2.html) = %v; want %v", got, want)
	}
	if got, want := dist["1.html"], 0.15/3; math.Abs(got-want) > 1e-9 {
		t.Errorf("P(1.html) = %v; want %v", got, want)
	}

	// dangling page: uniform
	dist, err = c.TransitionModel("3.html", 0.85)
	if err != nil {
		t.Fatal(err)
	}
	for page, p := range dist {
		if math.Abs(p-1.0/3) > 1e-9 {
			t.Errorf("dangling P(%s) = %v; want 1/3", page, p)
		}
	}
}

func assertDistribution(t *testing.T, ranks map[string]float64) {
	t.Helper()
	var sum float64
	for page, r := range ranks {
		if r < 0 || r > 1 {
			t.Errorf("rank of %s = %v; out of [0,1]", page, r)
		}
		sum += r
	}
	if math.Abs(sum-1) > 1e-6 {
		t.Errorf("ranks sum to %v; want 1", sum)
	}
}

func TestSampleRanks(t *testing.T) {
	c, err := pagerank.LoadCorpus(writeCorpus(t))
	if err != nil {
		t.Fatal(err)
	}
	ranks, err := c.SampleRanks(pagerank.Damping, pagerank.Samples, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("SampleRanks: %v", err)
	}
	assertDistribution(t, ranks)
}

func TestIterateRanks(t *testing.T) {
	c, err := pagerank.LoadCorpus(writeCorpus(t))
	if err != nil {
		t.Fatal(err)
	}
	ranks, err := c.IterateRanks(pagerank.Damping, pagerank.Threshold)
	if err != nil {
		t.Fatalf("IterateRanks: %v", err)
	}
	assertDistribution(t, ranks)

	// 2.html receives links from 1.html and is the only target of
	// 1.html, so it should outrank the others.
	if ranks["2.html"] <= ranks["3.html"] {
		t.Errorf("rank(2.html)=%v should exceed rank(3.html)=%v", ranks["2.html"], ranks["3.html"])
	}
}

// TestSamplingAgreesWithIteration checks the two estimates land close.
func TestSamplingAgreesWithIteration(t *testing.T) {
	c, err := pagerank.LoadCorpus(writeCorpus(t))
	if err != nil {
		t.Fatal(err)
	}
	sampled, err := c.SampleRanks(pagerank.Damping, 50000, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	iterated, err := c.IterateRanks(pagerank.Damping, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	for _, page := range c.Pages() {
		if diff := math.Abs(sampled[page] - iterated[page]); diff > 0.02 {
			t.Errorf("%s: |sampled-iterated| = %v; want < 0.02", page, diff)
		}
	}
}
