package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/bfs"
	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/graph"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := graph.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	g2 := graph.NewGraph()
	g2.AddVertex("A")
	if _, err := bfs.BFS(g2, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestBFS_DepthsAndOrder checks layered order and depths on a small tree.
func TestBFS_DepthsAndOrder(t *testing.T) {
	//      A
	//     / \
	//    B   C
	//    |
	//    D
	g := graph.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}
	for id, d := range wantDepth {
		if res.Depth[id] != d {
			t.Errorf("Depth[%s] = %d; want %d", id, res.Depth[id], d)
		}
	}
}

// TestBFS_MaxDepth ensures vertices past the limit are not visited.
func TestBFS_MaxDepth(t *testing.T) {
	g := graph.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_StopSearch verifies the early-exit hook halts cleanly.
func TestBFS_StopSearch(t *testing.T) {
	g := graph.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")

	res, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return bfs.ErrStopSearch
		}

		return nil
	}))
	if err != nil {
		t.Fatalf("ErrStopSearch should not surface, got %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisitError verifies user errors are wrapped and surfaced.
func TestBFS_OnVisitError(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex("A")
	boom := errors.New("boom")
	if _, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(string, int) error {
		return boom
	})); !errors.Is(err, boom) {
		t.Errorf("want wrapped boom, got %v", err)
	}
}

// TestBFS_ContextCancel verifies cancellation aborts the walk.
func TestBFS_ContextCancel(t *testing.T) {
	g := graph.NewGraph()
	g.AddEdge("A", "B")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestBFS_FilterNeighbor verifies filtered edges are skipped.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := graph.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")

	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, to string) bool {
		return to != "C"
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestResult_PathTo reconstructs a path from the parent map.
func TestResult_PathTo(t *testing.T) {
	g := graph.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddVertex("Z")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(C) = %v; want %v", path, want)
	}
	if _, err := res.PathTo("Z"); err == nil {
		t.Error("PathTo(Z): want error for unreached vertex")
	}
}
