// Package graph provides the small in-memory graph the search exercises
// are built on: string-identified vertices, unweighted edges, and
// adjacency queries, safe for concurrent use.
//
// What:
//
//   - Graph stores vertices and edges behind a sync.RWMutex.
//   - Edges are unweighted; directedness is fixed at construction
//     (WithDirected). Undirected edges are mirrored in the adjacency.
//   - AddEdge creates missing endpoints implicitly.
//
// Why:
//
//   - degrees/ models the actor–movie network as an undirected graph.
//   - pagerank/ models hyperlinks as a directed graph.
//
// Complexity:
//
//   - AddVertex, HasVertex: O(1).
//   - AddEdge: O(1).
//   - NeighborIDs: O(deg(v) · log deg(v)) — neighbors are returned sorted
//     for deterministic traversal order.
//
// Errors:
//
//   - ErrEmptyVertexID: a vertex ID is the empty string.
//   - ErrVertexNotFound: an operation referenced a non-existent vertex.
package graph
