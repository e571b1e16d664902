package questions

import (
	"math"
	"sort"
)

// How many documents and sentences an answer draws on.
const (
	FileMatches     = 1
	SentenceMatches = 1
)

// ComputeIDFs returns the inverse document frequency of every word
// appearing in documents: ln(N / documents-containing-word).
func ComputeIDFs(documents map[string][]string) map[string]float64 {
	counts := make(map[string]int)
	for _, words := range documents {
		seen := make(map[string]bool, len(words))
		for _, w := range words {
			if !seen[w] {
				seen[w] = true
				counts[w]++
			}
		}
	}

	n := float64(len(documents))
	idfs := make(map[string]float64, len(counts))
	for w, df := range counts {
		idfs[w] = math.Log(n / float64(df))
	}

	return idfs
}

// TopFiles returns the n file names whose documents best match the
// query, ranked by the sum over query words of tf·idf. Ties resolve
// alphabetically for determinism.
func TopFiles(query []string, documents map[string][]string, idfs map[string]float64, n int) []string {
	type scored struct {
		name  string
		score float64
	}
	ranked := make([]scored, 0, len(documents))
	for name, words := range documents {
		tf := make(map[string]int, len(words))
		for _, w := range words {
			tf[w]++
		}
		var score float64
		for _, q := range query {
			score += float64(tf[q]) * idfs[q]
		}
		ranked = append(ranked, scored{name: name, score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = ranked[i].name
	}

	return out
}

// TopSentences returns the n sentences best matching the query,
// ranked by the sum of idf over the query words each sentence
// contains, ties broken by query term density: the proportion of the
// sentence's words that are query words.
func TopSentences(query []string, sentences map[string][]string, idfs map[string]float64, n int) []string {
	querySet := make(map[string]bool, len(query))
	for _, q := range query {
		querySet[q] = true
	}

	type scored struct {
		sentence string
		idf      float64
		density  float64
	}
	ranked := make([]scored, 0, len(sentences))
	for sentence, words := range sentences {
		present := make(map[string]bool)
		matches := 0
		for _, w := range words {
			if querySet[w] {
				present[w] = true
				matches++
			}
		}
		var idf float64
		for w := range present {
			idf += idfs[w]
		}
		var density float64
		if len(words) > 0 {
			density = float64(matches) / float64(len(words))
		}
		ranked = append(ranked, scored{sentence: sentence, idf: idf, density: density})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].idf != ranked[j].idf {
			return ranked[i].idf > ranked[j].idf
		}
		if ranked[i].density != ranked[j].density {
			return ranked[i].density > ranked[j].density
		}

		return ranked[i].sentence < ranked[j].sentence
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = ranked[i].sentence
	}

	return out
}
