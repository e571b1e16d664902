package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")
)

// Option configures a Graph before creation.
type Option func(*Graph)

// WithDirected makes all edges one-way. The default is undirected:
// AddEdge(u, v) also records v→u in the adjacency.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// Graph is an unweighted in-memory graph with string vertex IDs.
//
// A single RWMutex guards all storage; reads may proceed concurrently.
// Adjacency is stored as a nested set: adjacency[from][to] = struct{}{}.
type Graph struct {
	mu sync.RWMutex

	directed bool

	vertices  map[string]struct{}
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }
