// Package crossword generates crossword puzzles by constraint
// satisfaction.
//
// What:
//
//   - New parses a structure file (underscores mark letter cells) and
//     a word list into a Crossword: the variables (maximal across/down
//     runs of at least two cells), their pairwise overlaps, and the
//     candidate words.
//   - Generator solves the CSP: node consistency trims each domain to
//     words of the right length; AC-3 enforces arc consistency over
//     overlaps; backtracking search picks variables by minimum
//     remaining values (degree as tie-break), orders values by least
//     constraining first, and maintains arc consistency after each
//     tentative assignment.
//   - Render prints the solved grid; SaveImage writes a PNG rendering.
//
// Errors:
//
//   - ErrBadStructure: the structure file is empty or unreadable.
//   - ErrNoSolution: no assignment satisfies all constraints.
package crossword
