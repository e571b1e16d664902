// Package pagerank estimates the PageRank of every page in a small
// HTML corpus, twice: by random-surfer sampling and by iterating the
// rank equation to convergence.
//
// What:
//
//   - LoadCorpus reads every .html file in a directory, extracts its
//     anchor links with a regexp, and keeps only links to other pages
//     in the corpus. The link structure is a directed graph.Graph.
//   - TransitionModel gives the distribution over next pages for a
//     random surfer on a page: with probability d follow a link, with
//     probability 1−d jump anywhere. A page without outgoing links is
//     treated as linking to every page (itself included).
//   - SampleRanks estimates ranks from n transition-model samples.
//   - IterateRanks solves r′ = (1−d)/N + d·M·r over the transition
//     matrix until no rank moves more than the threshold.
//
// Both estimates sum to 1 and agree to within sampling error.
//
// Errors:
//
//   - ErrEmptyCorpus: the directory contains no .html files.
//   - ErrPageNotFound: a queried page is not in the corpus.
package pagerank
