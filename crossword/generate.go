package crossword

import "sort"

// Assignment maps variables to the words placed in them.
type Assignment map[Variable]string

// Generator solves a Crossword as a constraint-satisfaction problem.
type Generator struct {
	cw      *Crossword
	domains map[Variable]map[string]struct{}
}

// NewGenerator prepares a solver whose domains start as the full word
// list for every variable.
func NewGenerator(cw *Crossword) *Generator {
	g := &Generator{cw: cw, domains: make(map[Variable]map[string]struct{}, len(cw.Variables))}
	for _, v := range cw.Variables {
		d := make(map[string]struct{}, len(cw.Words))
		for w := range cw.Words {
			d[w] = struct{}{}
		}
		g.domains[v] = d
	}

	return g
}

// Solve enforces node and arc consistency, then backtracks.
// Returns ErrNoSolution when the puzzle cannot be filled.
func (g *Generator) Solve() (Assignment, error) {
	g.enforceNodeConsistency()
	if !g.ac3(nil) {
		return nil, ErrNoSolution
	}
	a := g.backtrack(Assignment{})
	if a == nil {
		return nil, ErrNoSolution
	}

	return a, nil
}

// enforceNodeConsistency drops words whose length does not match the
// variable's unary constraint.
func (g *Generator) enforceNodeConsistency() {
	for v, domain := range g.domains {
		for w := range domain {
			if len(w) != v.Length {
				delete(domain, w)
			}
		}
	}
}

// arc is a directed pair of overlapping variables.
type arc struct {
	x, y Variable
}

// revise makes x arc-consistent with y: every word of x must have a
// compatible word in y's domain at the overlapping cell. Reports
// whether x's domain shrank.
func (g *Generator) revise(x, y Variable) bool {
	overlap, ok := g.cw.Overlap(x, y)
	if !ok {
		return false
	}
	revised := false
	for wx := range g.domains[x] {
		supported := false
		for wy := range g.domains[y] {
			if wx[overlap.I] == wy[overlap.J] {
				supported = true

				break
			}
		}
		if !supported {
			delete(g.domains[x], wx)
			revised = true
		}
	}

	return revised
}

// ac3 enforces arc consistency starting from the given arcs (all arcs
// when nil). Returns false if any domain empties.
func (g *Generator) ac3(arcs []arc) bool {
	queue := arcs
	if queue == nil {
		for pair := range g.cw.overlaps {
			queue = append(queue, arc{x: pair[0], y: pair[1]})
		}
	}
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		if !g.revise(a.x, a.y) {
			continue
		}
		if len(g.domains[a.x]) == 0 {
			return false
		}
		for _, z := range g.cw.Neighbors(a.x) {
			if z != a.y {
				queue = append(queue, arc{x: z, y: a.x})
			}
		}
	}

	return true
}

// consistent reports whether the assignment violates no constraint:
// correct lengths, distinct words, and agreeing overlaps.
func (g *Generator) consistent(a Assignment) bool {
	used := make(map[string]struct{}, len(a))
	for v, w := range a {
		if len(w) != v.Length {
			return false
		}
		if _, dup := used[w]; dup {
			return false
		}
		used[w] = struct{}{}

		for _, n := range g.cw.Neighbors(v) {
			wn, assigned := a[n]
			if !assigned {
				continue
			}
			overlap, _ := g.cw.Overlap(v, n)
			if w[overlap.I] != wn[overlap.J] {
				return false
			}
		}
	}

	return true
}

// orderDomainValues returns var's domain sorted by the number of
// choices each word would eliminate from unassigned neighbors,
// least constraining first.
func (g *Generator) orderDomainValues(v Variable, a Assignment) []string {
	type scored struct {
		word string
		n    int
	}
	values := make([]scored, 0, len(g.domains[v]))
	for w := range g.domains[v] {
		n := 0
		for _, nb := range g.cw.Neighbors(v) {
			if _, assigned := a[nb]; assigned {
				continue
			}
			overlap, _ := g.cw.Overlap(v, nb)
			for wn := range g.domains[nb] {
				if w[overlap.I] != wn[overlap.J] {
					n++
				}
			}
		}
		values = append(values, scored{word: w, n: n})
	}
	sort.Slice(values, func(i, j int) bool {
		if values[i].n != values[j].n {
			return values[i].n < values[j].n
		}

		return values[i].word < values[j].word // deterministic ties
	})

	out := make([]string, len(values))
	for i, s := range values {
		out[i] = s.word
	}

	return out
}

// selectUnassignedVariable picks the unassigned variable with the
// fewest remaining values, breaking ties by the highest degree.
func (g *Generator) selectUnassignedVariable(a Assignment) Variable {
	var best Variable
	bestSet := false
	for _, v := range g.cw.Variables {
		if _, assigned := a[v]; assigned {
			continue
		}
		if !bestSet {
			best, bestSet = v, true

			continue
		}
		dv, db := len(g.domains[v]), len(g.domains[best])
		if dv < db || (dv == db && len(g.cw.Neighbors(v)) > len(g.cw.Neighbors(best))) {
			best = v
		}
	}

	return best
}

// backtrack extends a partial assignment to a complete one, or returns
// nil. After each tentative assignment it re-runs AC-3 on the arcs
// into the variable (maintaining arc consistency), restoring domains
// when the branch fails.
func (g *Generator) backtrack(a Assignment) Assignment {
	if len(a) == len(g.cw.Variables) {
		return a
	}

	v := g.selectUnassignedVariable(a)
	for _, w := range g.orderDomainValues(v, a) {
		a[v] = w
		if g.consistent(a) {
			saved := g.saveDomains()
			g.domains[v] = map[string]struct{}{w: {}}

			var arcs []arc
			for _, n := range g.cw.Neighbors(v) {
				arcs = append(arcs, arc{x: n, y: v})
			}
			if g.ac3(arcs) {
				if res := g.backtrack(a); res != nil {
					return res
				}
			}
			g.domains = saved
		}
		delete(a, v)
	}

	return nil
}

// saveDomains deep-copies the current domains for backtrack restore.
func (g *Generator) saveDomains() map[Variable]map[string]struct{} {
	saved := make(map[Variable]map[string]struct{}, len(g.domains))
	for v, d := range g.domains {
		cp := make(map[string]struct{}, len(d))
		for w := range d {
			cp[w] = struct{}{}
		}
		saved[v] = cp
	}

	return saved
}
