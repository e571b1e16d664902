// Package degrees finds the shortest chain of co-starring movies between
// two actors ("degrees of separation").
//
// What:
//
//   - LoadData reads people.csv, movies.csv and stars.csv from a data
//     directory into an in-memory Data set.
//   - Data.ShortestPath runs breadth-first search over the bipartite
//     person–movie graph and returns the connecting steps, each a movie
//     shared by two consecutive people.
//   - Data.PersonIDs resolves a human-entered name to person IDs; a name
//     can be ambiguous (several people named Chris Evans).
//
// Complexity: BFS is O(V + E) over people + movies; the graph is built
// once per Data set and reused across queries.
//
// Errors:
//
//   - ErrPersonNotFound: a queried name matches nobody in the data set.
//   - ErrNoConnection: the two actors are not connected.
package degrees
