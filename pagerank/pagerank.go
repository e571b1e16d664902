package pagerank

import (
	"math"
	"math/rand"
	"time"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/matrix"
)

// Course parameters.
const (
	// Damping is the probability of following a link rather than
	// jumping to a random page.
	Damping = 0.85

	// Samples is the number of random-surfer steps taken by SampleRanks.
	Samples = 10000

	// Threshold is IterateRanks' convergence bound: iteration stops
	// once no rank changes by more than this.
	Threshold = 0.001
)

// TransitionModel returns the random surfer's distribution over next
// pages when sitting on page: with probability d pick one of the
// page's links, with probability 1−d pick any corpus page. A page with
// no outgoing links is treated as linking to every page.
//
// Returns ErrPageNotFound for pages outside the corpus.
func (c *Corpus) TransitionModel(page string, d float64) (map[string]float64, error) {
	links, err := c.Links(page)
	if err != nil {
		return nil, err
	}

	n := float64(len(c.pages))
	dist := make(map[string]float64, len(c.pages))
	if len(links) == 0 {
		for _, p := range c.pages {
			dist[p] = 1 / n
		}

		return dist, nil
	}

	for _, p := range c.pages {
		dist[p] = (1 - d) / n
	}
	for _, l := range links {
		dist[l] += d / float64(len(links))
	}

	return dist, nil
}

// SampleRanks estimates PageRank from n transition-model samples. The
// first page is uniform; each following page is drawn from the
// transition model of its predecessor. A nil rng means time-seeded.
//
// Complexity: O(n · V) — each draw walks the distribution.
func (c *Corpus) SampleRanks(d float64, n int, rng *rand.Rand) (map[string]float64, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	counts := make(map[string]int, len(c.pages))
	page := c.pages[rng.Intn(len(c.pages))]
	counts[page]++
	for i := 1; i < n; i++ {
		dist, err := c.TransitionModel(page, d)
		if err != nil {
			return nil, err
		}
		page = draw(c.pages, dist, rng)
		counts[page]++
	}

	ranks := make(map[string]float64, len(c.pages))
	for _, p := range c.pages {
		ranks[p] = float64(counts[p]) / float64(n)
	}

	return ranks, nil
}

// draw samples one page from dist. Pages are walked in sorted order so
// equal seeds give equal samples.
func draw(pages []string, dist map[string]float64, rng *rand.Rand) string {
	r := rng.Float64()
	var acc float64
	for _, p := range pages {
		acc += dist[p]
		if r < acc {
			return p
		}
	}
	// floating-point slack: fall through to the last page
	return pages[len(pages)-1]
}

// IterateRanks computes PageRank by repeated application of
//
//	r′ = (1−d)/N + d·M·r
//
// where M is the column-stochastic transition matrix (a dangling page
// contributes 1/N to every row). Iteration stops once no rank moves by
// more than threshold.
//
// Complexity: O(V²) per iteration.
func (c *Corpus) IterateRanks(d, threshold float64) (map[string]float64, error) {
	m, err := c.transitionMatrix()
	if err != nil {
		return nil, err
	}

	n := len(c.pages)
	base := (1 - d) / float64(n)
	r := make([]float64, n)
	for i := range r {
		r[i] = 1 / float64(n)
	}

	for {
		mr, err := m.MulVec(r)
		if err != nil {
			return nil, err
		}
		next := make([]float64, n)
		var maxDelta float64
		for i := range next {
			next[i] = base + d*mr[i]
			if delta := math.Abs(next[i] - r[i]); delta > maxDelta {
				maxDelta = delta
			}
		}
		r = next
		if maxDelta <= threshold {
			break
		}
	}

	ranks := make(map[string]float64, n)
	for i, p := range c.pages {
		ranks[p] = r[i]
	}

	return ranks, nil
}

// transitionMatrix builds M with M[i][j] = P(next = page i | on page j).
func (c *Corpus) transitionMatrix() (*matrix.Dense, error) {
	n := len(c.pages)
	index := make(map[string]int, n)
	for i, p := range c.pages {
		index[p] = i
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for j, p := range c.pages {
		links, err := c.Links(p)
		if err != nil {
			return nil, err
		}
		if len(links) == 0 {
			for i := 0; i < n; i++ {
				m.Set(i, j, 1/float64(n))
			}

			continue
		}
		share := 1 / float64(len(links))
		for _, l := range links {
			m.Set(index[l], j, share)
		}
	}

	return m, nil
}
