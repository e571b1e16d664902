package graph

import "sort"

// AddVertex inserts id into the graph. Adding an existing vertex is a
// no-op. Returns ErrEmptyVertexID if id is empty.
//
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// AddEdge records an edge from→to, creating missing endpoints. In an
// undirected graph the mirror entry to→from is recorded as well.
// Parallel edges collapse into one. Returns ErrEmptyVertexID if either
// endpoint is empty.
//
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	if g.link(from, to) {
		g.edgeCount++
	}
	if !g.directed {
		g.link(to, from)
	}

	return nil
}

// link records from→to in the adjacency, reporting whether it was new.
func (g *Graph) link(from, to string) bool {
	nbrs, ok := g.adjacency[from]
	if !ok {
		nbrs = make(map[string]struct{})
		g.adjacency[from] = nbrs
	}
	if _, dup := nbrs[to]; dup {
		return false
	}
	nbrs[to] = struct{}{}

	return true
}

// HasVertex reports whether id exists in the graph.
//
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// NeighborIDs returns the IDs adjacent to id, sorted for deterministic
// iteration. Returns ErrVertexNotFound if id is absent.
//
// Complexity: O(deg(v) · log deg(v))
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	nbrs := g.adjacency[id]
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}

// VertexIDs returns all vertex IDs, sorted.
//
// Complexity: O(V log V)
func (g *Graph) VertexIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of distinct edges added.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
