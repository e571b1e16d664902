package crossword

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for crossword construction and solving.
var (
	// ErrBadStructure indicates an empty or unreadable structure file.
	ErrBadStructure = errors.New("crossword: invalid structure file")

	// ErrNoSolution indicates no assignment satisfies the constraints.
	ErrNoSolution = errors.New("crossword: no solution")
)

// Direction orients a variable on the grid.
type Direction int

const (
	// Across runs left to right.
	Across Direction = iota
	// Down runs top to bottom.
	Down
)

// String names the direction.
func (d Direction) String() string {
	if d == Down {
		return "down"
	}

	return "across"
}

// Variable is one word slot: a maximal run of letter cells.
type Variable struct {
	Row, Col int
	Dir      Direction
	Length   int
}

// Cells returns the grid positions the variable covers, in order.
func (v Variable) Cells() [][2]int {
	cells := make([][2]int, v.Length)
	for k := 0; k < v.Length; k++ {
		if v.Dir == Down {
			cells[k] = [2]int{v.Row + k, v.Col}
		} else {
			cells[k] = [2]int{v.Row, v.Col + k}
		}
	}

	return cells
}

// String renders the variable as "(row, col) across/down : length".
func (v Variable) String() string {
	return fmt.Sprintf("(%d, %d) %s : %d", v.Row, v.Col, v.Dir, v.Length)
}

// Overlap records that two variables share a cell: index I into the
// first variable's word equals index J into the second's.
type Overlap struct {
	I, J int
}

// Crossword is the puzzle definition: grid shape, word list, variables
// and their overlaps.
type Crossword struct {
	Height, Width int
	Words         map[string]struct{}
	Variables     []Variable

	structure [][]bool // true = letter cell
	overlaps  map[[2]Variable]Overlap
	neighbors map[Variable][]Variable
}

// New parses a structure file and a word list. In the structure file
// an underscore marks a letter cell and any other character a block;
// words are uppercased, one per line.
func New(structurePath, wordsPath string) (*Crossword, error) {
	structure, err := readStructure(structurePath)
	if err != nil {
		return nil, err
	}
	words, err := readWords(wordsPath)
	if err != nil {
		return nil, err
	}

	c := &Crossword{
		Height:    len(structure),
		Width:     len(structure[0]),
		Words:     words,
		structure: structure,
	}
	c.findVariables()
	c.computeOverlaps()

	return c, nil
}

// readStructure loads the grid, padding short lines with blocks.
func readStructure(path string) ([][]bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadStructure, err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("%w: empty grid", ErrBadStructure)
	}
	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	grid := make([][]bool, len(lines))
	for i, l := range lines {
		grid[i] = make([]bool, width)
		for j := 0; j < len(l); j++ {
			grid[i][j] = l[j] == '_'
		}
	}

	return grid, nil
}

// readWords loads the candidate words, uppercased.
func readWords(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("crossword: open word list: %w", err)
	}
	defer f.Close()

	words := make(map[string]struct{})
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if w != "" {
			words[w] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("crossword: read word list: %w", err)
	}

	return words, nil
}

// LetterCell reports whether (row, col) holds a letter.
func (c *Crossword) LetterCell(row, col int) bool {
	return c.structure[row][col]
}

// findVariables scans for maximal horizontal and vertical runs of at
// least two letter cells.
func (c *Crossword) findVariables() {
	for i := 0; i < c.Height; i++ {
		for j := 0; j < c.Width; j++ {
			if !c.structure[i][j] {
				continue
			}
			// across: starts at a left edge or after a block
			if j == 0 || !c.structure[i][j-1] {
				length := 0
				for k := j; k < c.Width && c.structure[i][k]; k++ {
					length++
				}
				if length > 1 {
					c.Variables = append(c.Variables, Variable{Row: i, Col: j, Dir: Across, Length: length})
				}
			}
			// down: starts at a top edge or below a block
			if i == 0 || !c.structure[i-1][j] {
				length := 0
				for k := i; k < c.Height && c.structure[k][j]; k++ {
					length++
				}
				if length > 1 {
					c.Variables = append(c.Variables, Variable{Row: i, Col: j, Dir: Down, Length: length})
				}
			}
		}
	}
}

// computeOverlaps records, for every ordered pair of distinct
// variables sharing a cell, the word indices that must agree.
func (c *Crossword) computeOverlaps() {
	c.overlaps = make(map[[2]Variable]Overlap)
	c.neighbors = make(map[Variable][]Variable)

	index := make(map[[2]int]map[Variable]int)
	for _, v := range c.Variables {
		for k, cell := range v.Cells() {
			if index[cell] == nil {
				index[cell] = make(map[Variable]int)
			}
			index[cell][v] = k
		}
	}
	for _, cellVars := range index {
		for v1, i := range cellVars {
			for v2, j := range cellVars {
				if v1 == v2 {
					continue
				}
				c.overlaps[[2]Variable{v1, v2}] = Overlap{I: i, J: j}
				c.neighbors[v1] = appendUnique(c.neighbors[v1], v2)
			}
		}
	}
}

// Overlap returns the shared-cell indices for v1 and v2, if any.
func (c *Crossword) Overlap(v1, v2 Variable) (Overlap, bool) {
	o, ok := c.overlaps[[2]Variable{v1, v2}]

	return o, ok
}

// Neighbors returns the variables sharing a cell with v.
func (c *Crossword) Neighbors(v Variable) []Variable {
	return c.neighbors[v]
}

func appendUnique(vs []Variable, v Variable) []Variable {
	for _, e := range vs {
		if e == v {
			return vs
		}
	}

	return append(vs, v)
}
