// Package knights encodes the four classic Knights-and-Knaves puzzles
// as propositional knowledge bases and solves them by model checking.
//
// On the island every inhabitant is either a knight, who always tells
// the truth, or a knave, who always lies. Given what each character
// says, Solve reports which knight/knave facts are entailed.
//
// The structural rules shared by every puzzle — each character is
// exactly one of knight or knave, and a statement S by character A
// contributes AKnight ⇔ S — are built by the character helper, so each
// puzzle only lists its statements.
package knights
