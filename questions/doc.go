// Package questions answers natural-language queries over a corpus of
// text documents with tf-idf retrieval.
//
// Answering runs in two stages:
//
//  1. TopFiles ranks documents by the sum of tf-idf over the query
//     words and keeps the best FileMatches of them.
//  2. TopSentences ranks the sentences of those documents by the sum
//     of idf over the query words each sentence contains, breaking
//     ties by query term density (the share of a sentence's words
//     that appear in the query).
//
// Tokenization lowercases, splits on non-letter runs, and drops
// English stopwords. Corpus files load concurrently.
//
// Errors:
//
//   - ErrEmptyCorpus: the corpus directory holds no .txt documents.
package questions
