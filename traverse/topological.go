package traverse

import (
	"errors"

	"github.com/winterheart/gtopo/topo"
)

// TopologicalSort returns the graph's nodes in a dependency-respecting
// order using Kahn's algorithm, seeded from the engine's incrementally
// maintained root set. Parallel edges and hyper-edges (counted toward their
// terminal node) are handled by tracking remaining in-degrees per edge, not
// per neighbor. Fails with ErrGraphNil for nil input and ErrCycleDetected
// when a directed cycle (including a self-loop) leaves nodes unordered.
// Complexity: O(V + E).
func TopologicalSort(g *topo.Graph) ([]topo.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	indeg := make(map[topo.NodeID]int, g.NodeCount())
	for _, id := range g.Nodes() {
		d, err := g.InDegree(id)
		if err != nil {
			return nil, err
		}
		indeg[id] = d
	}

	queue := g.Roots()
	order := make([]topo.NodeID, 0, g.NodeCount())
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)

		n, err := g.Node(cur)
		if err != nil {
			return nil, err
		}
		for _, eid := range n.OutEdges() {
			term, err := g.TerminalNode(eid)
			if err != nil {
				return nil, err
			}
			indeg[term]--
			if indeg[term] == 0 {
				queue = append(queue, term)
			}
		}
	}

	if len(order) != g.NodeCount() {
		return nil, ErrCycleDetected
	}

	return order, nil
}

// HasCycle reports whether the graph contains a directed cycle.
// Complexity: O(V + E).
func HasCycle(g *topo.Graph) bool {
	_, err := TopologicalSort(g)
	return errors.Is(err, ErrCycleDetected)
}
