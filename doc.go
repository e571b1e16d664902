// Package ai collects twelve classic introductory artificial-intelligence
// exercises as independent, importable Go packages — from graph search and
// adversarial games to probabilistic inference, constraint satisfaction,
// reinforcement learning and language processing.
//
// Each exercise is self-contained: it loads a fixed input, runs one
// well-known algorithm to completion, and returns a typed result. The
// shared infrastructure is deliberately small:
//
//	graph/    — in-memory graph primitives (vertices, edges, adjacency)
//	bfs/      — breadth-first search with hooks and path reconstruction
//	matrix/   — dense float64 matrices for the numeric exercises
//	nn/       — a small feedforward neural network (SGD backprop)
//
// The exercises themselves:
//
//	degrees/     — degrees of separation between actors (BFS)
//	tictactoe/   — optimal tic-tac-toe play (minimax with branch cutoff)
//	logic/       — propositional logic and model checking
//	knights/     — Knights-and-Knaves puzzles over logic/
//	minesweeper/ — knowledge-based minesweeper agent
//	pagerank/    — PageRank by sampling and by iteration
//	heredity/    — genetic-trait inference over a Bayesian network
//	crossword/   — crossword generation as a CSP (AC-3 + backtracking)
//	shopping/    — purchase-intent prediction (1-nearest-neighbor)
//	nim/         — Q-learning agent for the game of Nim
//	traffic/     — road-sign image classification with nn/
//	parser/      — context-free sentence parsing and NP chunking
//	questions/   — tf-idf question answering over a text corpus
//
// The ai command (cmd/ai) exposes one subcommand per exercise:
//
//	go run ./cmd/ai degrees --data ./data/degrees "Tom Hanks" "Kevin Bacon"
package ai
