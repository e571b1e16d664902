package bfs_test

import (
	"fmt"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/bfs"
	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/graph"
)

// ExampleBFS demonstrates a traversal and path reconstruction on a
// small undirected graph.
func ExampleBFS() {
	g := graph.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")

	res, _ := bfs.BFS(g, "A")
	fmt.Println(res.Order)

	path, _ := res.PathTo("D")
	fmt.Println(path)
	// Output:
	// [A B C D]
	// [A B D]
}
