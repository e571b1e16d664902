// Package parser parses English sentences with a fixed context-free
// grammar and extracts noun-phrase chunks.
//
// What:
//
//   - Preprocess lowercases a sentence and keeps only tokens that
//     contain at least one letter.
//   - Parse returns every parse tree the grammar licenses for the
//     token sequence, so ambiguous sentences yield several trees.
//   - NPChunks lists the noun-phrase subtrees that contain no nested
//     noun phrase.
//
// The grammar covers the vocabulary of the bundled Holmes sentences;
// a token outside it fails the parse with ErrUnknownWord.
//
// Why a span parser: the grammar is left-recursive (S → S Conj S,
// NP → NP PP), which rules out plain recursive descent. Parsing every
// nonterminal over every token span, memoized, handles the full
// grammar; sentences are short enough that the cubic-plus cost is
// irrelevant.
//
// Errors:
//
//   - ErrEmptySentence: preprocessing left no tokens.
//   - ErrUnknownWord: a token is outside the grammar's vocabulary.
//   - ErrNoParse: the grammar licenses no tree for the sentence.
package parser
