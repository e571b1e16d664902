// Package commands defines the ai CLI: one subcommand per exercise.
//
// Commands
//
//   - degrees      Degrees of separation between two actors
//   - tictactoe    Play tic-tac-toe against the minimax AI
//   - knights      Solve the knights-and-knaves puzzles
//   - minesweeper  Watch the inference AI play Minesweeper
//   - pagerank     Rank a corpus of linked pages
//   - heredity     Gene and trait probabilities for a family
//   - crossword    Generate a crossword from a structure and word list
//   - shopping     Train and evaluate the purchase predictor
//   - nim          Train a Q-learning agent and play it
//   - traffic      Train and evaluate the road-sign classifier
//   - parse        Parse sentences and print noun-phrase chunks
//   - questions    Answer a query over a text corpus
//
// # Implementation
//
// The root command configures a zerolog console logger on stderr
// before any subcommand runs; results print to stdout. A --seed flag
// makes randomized commands reproducible.
package commands
