package degrees

import (
	"errors"
	"strings"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/bfs"
	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/graph"
)

// Vertex ID prefixes in the bipartite person–movie graph.
const (
	personPrefix = "p:"
	moviePrefix  = "m:"
)

// buildGraph lazily constructs the undirected bipartite graph linking
// every person to every movie they starred in. Cached on the Data set.
func (d *Data) buildGraph() *graph.Graph {
	if d.g != nil {
		return d.g
	}
	g := graph.NewGraph()
	for _, p := range d.People {
		for movieID := range p.Movies {
			_ = g.AddEdge(personPrefix+p.ID, moviePrefix+movieID)
		}
	}
	d.g = g

	return g
}

// ShortestPath returns the shortest chain of (movie, person) steps
// connecting sourceID to targetID, excluding the source itself.
// A zero-length (non-nil) result means source and target are the same
// person. Returns ErrNoConnection if no chain exists and
// ErrPersonNotFound if either ID is absent from the data set.
//
// Complexity: O(V + E) — one BFS over the bipartite graph, stopped
// early once the target is dequeued.
func (d *Data) ShortestPath(sourceID, targetID string) ([]Step, error) {
	if _, ok := d.People[sourceID]; !ok {
		return nil, ErrPersonNotFound
	}
	if _, ok := d.People[targetID]; !ok {
		return nil, ErrPersonNotFound
	}
	if sourceID == targetID {
		return []Step{}, nil
	}

	g := d.buildGraph()
	start := personPrefix + sourceID
	goalVertex := personPrefix + targetID

	res, err := bfs.BFS(g, start, bfs.WithOnVisit(func(id string, _ int) error {
		if id == goalVertex {
			return bfs.ErrStopSearch
		}

		return nil
	}))
	if err != nil {
		if errors.Is(err, bfs.ErrStartVertexNotFound) {
			// person exists but starred in nothing
			return nil, ErrNoConnection
		}

		return nil, err
	}

	path, err := res.PathTo(goalVertex)
	if err != nil {
		return nil, ErrNoConnection
	}

	// path alternates person, movie, person, ... — pair them into steps.
	steps := make([]Step, 0, len(path)/2)
	for i := 1; i+1 < len(path); i += 2 {
		steps = append(steps, Step{
			MovieID:  strings.TrimPrefix(path[i], moviePrefix),
			PersonID: strings.TrimPrefix(path[i+1], personPrefix),
		})
	}

	return steps, nil
}
