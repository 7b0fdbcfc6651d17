package topo

import (
	"sort"

	"go.uber.org/multierr"
)

// AddNode creates a new node, takes ownership of it, and adds it to the
// root set (a fresh node has no edges). Graph observers are notified after
// insertion. Always succeeds, except from inside an observer callback,
// where it logs the misuse and returns the zero (invalid) handle.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(opts ...NodeOption) NodeID {
	if g.mutable("AddNode") != nil {
		return NodeID{}
	}
	n := newNode(g.nextNodeID(), g.policy)
	for _, opt := range opts {
		opt(n)
	}
	g.nodes[n.id] = n
	g.roots.add(n.id)

	g.dispatch(func() {
		for _, o := range g.observers {
			o.OnNodeInserted(n.id)
		}
	})

	return n.id
}

// HasNode reports whether id resolves against this graph. O(1).
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// RemoveNode removes a node and everything that depends on it: first every
// incident edge (each firing its own edge-removed notification), then the
// node's group membership, then the node itself. Edges never outlive either
// endpoint. Fails with ErrUnknownEntity if id is not owned by this graph.
// Complexity: O(deg(v)) plus cascaded hyper-edge removals.
func (g *Graph) RemoveNode(id NodeID) error {
	if err := g.mutable("RemoveNode"); err != nil {
		return err
	}
	n, err := g.Node(id)
	if err != nil {
		return err
	}

	// Children before parents. In- and out-edge sets can share a self-loop,
	// and a cascaded hyper-edge removal may drop a later entry of this list
	// before the loop reaches it, so absent handles are skipped.
	incident := n.InEdges()
	seen := make(map[EdgeID]struct{}, len(incident))
	for _, eid := range incident {
		seen[eid] = struct{}{}
	}
	for _, eid := range n.OutEdges() {
		if _, ok := seen[eid]; !ok {
			incident = append(incident, eid)
		}
	}
	var errs error
	for _, eid := range incident {
		e, ok := g.edges[eid]
		if !ok {
			continue
		}
		errs = multierr.Append(errs, g.removeEdge(e))
	}

	if !n.group.IsZero() {
		if grp, ok := g.groups[n.group]; ok {
			errs = multierr.Append(errs, g.releaseNode(grp, n))
		}
	}

	g.roots.remove(id)
	delete(g.nodes, id)

	g.dispatch(func() {
		for _, o := range g.observers {
			o.OnNodeRemoved(id)
		}
	})

	return errs
}

// SetNodeLabel updates the node's display label and fires a node-modified
// notification. Fails with ErrUnknownEntity for foreign handles.
func (g *Graph) SetNodeLabel(id NodeID, label string) error {
	if err := g.mutable("SetNodeLabel"); err != nil {
		return err
	}
	n, err := g.Node(id)
	if err != nil {
		return err
	}
	n.label = label

	g.dispatch(func() {
		for _, o := range g.observers {
			o.OnNodeModified(id)
		}
	})

	return nil
}

// Nodes returns every node handle in insertion order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// NodeCount returns the number of owned nodes. O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Roots returns the handles of all nodes with zero in-edges, the traversal
// entry points. The set is maintained incrementally across every mutation.
// Complexity: O(R).
func (g *Graph) Roots() []NodeID { return g.roots.values() }

// IsRoot reports whether id is currently in the root set. O(1).
func (g *Graph) IsRoot(id NodeID) bool { return g.roots.has(id) }

// InDegree returns the number of edges terminating at id. O(1).
func (g *Graph) InDegree(id NodeID) (int, error) {
	n, err := g.Node(id)
	if err != nil {
		return 0, err
	}

	return n.InDegree(), nil
}

// OutDegree returns the number of edges originating at id. O(1).
func (g *Graph) OutDegree(id NodeID) (int, error) {
	n, err := g.Node(id)
	if err != nil {
		return 0, err
	}

	return n.OutDegree(), nil
}
