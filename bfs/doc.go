// Package bfs provides breadth-first search over a graph.Graph,
// returning unweighted shortest-path distances, parent links, and visit
// order.
//
// BFS explores vertices in increasing distance from a start vertex, with
// optional hooks, depth limiting, and neighbor filtering. degrees/ uses
// it to find the shortest actor-to-actor chain; the early-exit hook lets
// the search stop as soon as the target is reached.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors:
//
//   - ErrGraphNil: a nil graph pointer was passed.
//   - ErrStartVertexNotFound: the start ID is absent.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrNeighbors: fetching neighbors from the graph failed.
package bfs
