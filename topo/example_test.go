package topo_test

import (
	"fmt"

	"github.com/winterheart/gtopo/topo"
)

// ExampleGraph builds a small pipeline topology, groups its stages, and
// shows how the root set tracks mutations.
func ExampleGraph() {
	g := topo.NewGraph()

	src := g.AddNode(topo.WithNodeLabel("source"))
	fil := g.AddNode(topo.WithNodeLabel("filter"))
	out := g.AddNode(topo.WithNodeLabel("sink"))

	e1, _ := g.AddEdge(src, fil, topo.WithWeight(0.5))
	if _, err := g.AddEdge(fil, out); err != nil {
		fmt.Println("link failed:", err)
		return
	}

	stage := g.AddGroup(topo.WithGroupLabel("ingest"))
	if err := g.GroupNode(src, stage); err != nil {
		fmt.Println("group failed:", err)
		return
	}

	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount(), "roots:", len(g.Roots()))

	if err := g.RemoveEdge(e1); err != nil {
		fmt.Println("unlink failed:", err)
		return
	}
	fmt.Println("after unlink, roots:", len(g.Roots()))

	// Output:
	// nodes: 3 edges: 2 roots: 1
	// after unlink, roots: 2
}
