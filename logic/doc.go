// Package logic implements propositional logic sentences and
// entailment by model checking.
//
// What:
//
//   - Sentence is the interface shared by Symbol, Not, And, Or,
//     Implication and Biconditional; each evaluates against a model
//     (an assignment of truth values to symbol names) and renders a
//     readable formula.
//   - Entails reports whether a knowledge base entails a query by
//     enumerating every model over the union of their symbols.
//
// Complexity: Entails is O(2^n · s) for n distinct symbols and sentence
// size s — fine for the puzzle-sized knowledge bases it serves.
//
// Errors:
//
//   - ErrUnknownSymbol: a sentence was evaluated against a model that
//     does not assign one of its symbols.
package logic
