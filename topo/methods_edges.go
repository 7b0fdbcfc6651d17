package topo

import (
	"sort"

	"go.uber.org/multierr"
)

// AddEdge creates a directed edge from source to dest with DefaultWeight
// (override via WithWeight), registers it in both endpoints' adjacency and
// neighbor caches, and drops dest from the root set if this is its first
// in-edge. Self-loops and parallel edges are permitted and never
// deduplicated. Fails with ErrUnknownEntity if either endpoint is not owned
// by this graph.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(source, dest NodeID, opts ...EdgeOption) (EdgeID, error) {
	if err := g.mutable("AddEdge"); err != nil {
		return EdgeID{}, err
	}
	src, err := g.Node(source)
	if err != nil {
		return EdgeID{}, err
	}
	dst, err := g.Node(dest)
	if err != nil {
		return EdgeID{}, err
	}

	e := newEdge(g.nextEdgeID(), source, g.policy)
	e.destNode = dest
	for _, opt := range opts {
		opt(e)
	}

	if err = g.connect(e, src, dst); err != nil {
		return EdgeID{}, err
	}

	return e.id, nil
}

// AddHyperEdge creates an edge whose destination is another edge. The
// in-edge registration lands on the destination chain's terminal node,
// which also leaves the root set if this is its first in-edge. Fails with
// ErrUnknownEntity if source or dest is not owned by this graph.
// Complexity: O(chain length).
func (g *Graph) AddHyperEdge(source NodeID, dest EdgeID, opts ...EdgeOption) (EdgeID, error) {
	if err := g.mutable("AddHyperEdge"); err != nil {
		return EdgeID{}, err
	}
	src, err := g.Node(source)
	if err != nil {
		return EdgeID{}, err
	}
	de, err := g.Edge(dest)
	if err != nil {
		return EdgeID{}, err
	}
	termID, err := g.terminalOf(de)
	if err != nil {
		return EdgeID{}, err
	}
	term, err := g.Node(termID)
	if err != nil {
		return EdgeID{}, err
	}

	e := newEdge(g.nextEdgeID(), source, g.policy)
	e.destEdge = dest
	for _, opt := range opts {
		opt(e)
	}

	if err = g.connect(e, src, term); err != nil {
		return EdgeID{}, err
	}
	de.hyperIn.add(e.id)

	return e.id, nil
}

// connect registers e between src and its effective destination dst,
// stores it in the arena, maintains the root set, and notifies. If the
// second adjacency registration fails, the first is unwound so no partial
// state remains.
func (g *Graph) connect(e *Edge, src, dst *Node) error {
	if err := src.addOutEdge(e.id, dst.id); err != nil {
		g.log.Error(err, "out-edge registration failed", "edge", e.id.String())
		return err
	}
	if err := dst.addInEdge(e.id, e.source); err != nil {
		_ = src.removeOutEdge(e.id, dst.id)
		g.log.Error(err, "in-edge registration failed", "edge", e.id.String())
		return err
	}
	g.edges[e.id] = e
	g.roots.remove(dst.id)

	g.dispatch(func() {
		for _, o := range g.observers {
			o.OnEdgeInserted(e.id)
		}
		src.notifyOutNodeInserted(dst.id)
		dst.notifyInNodeInserted(e.source)
	})

	return nil
}

// RemoveEdge removes an edge, deregistering it from both endpoints and
// re-adding the destination to the root set if its in-degree drops to zero.
// Hyper-edges whose destination is this edge are removed first (children
// before parents), each with its own notification. Fails with
// ErrUnknownEntity if id is not owned by this graph.
// Complexity: O(1) plus cascaded removals.
func (g *Graph) RemoveEdge(id EdgeID) error {
	if err := g.mutable("RemoveEdge"); err != nil {
		return err
	}
	e, err := g.Edge(id)
	if err != nil {
		return err
	}

	return g.removeEdge(e)
}

// removeEdge unlinks e from the topology. Callers guarantee e is owned.
// Any ErrBadTopology from the adjacency primitives is aggregated and
// returned after the teardown completes: finishing the removal caps the
// damage better than stopping half-unlinked.
func (g *Graph) removeEdge(e *Edge) error {
	var errs error

	// Dependent hyper-edges go first, so the destination chain below stays
	// resolvable until this edge is truly free.
	for _, hid := range e.hyperIn.values() {
		if he, ok := g.edges[hid]; ok {
			errs = multierr.Append(errs, g.removeEdge(he))
		}
	}

	termID, err := g.terminalOf(e)
	if err != nil {
		return multierr.Append(errs, err)
	}
	src, ok := g.nodes[e.source]
	if !ok {
		g.log.Error(ErrBadTopology, "edge source not owned", "edge", e.id.String())
		return multierr.Append(errs, ErrBadTopology)
	}
	dst, ok := g.nodes[termID]
	if !ok {
		g.log.Error(ErrBadTopology, "edge destination not owned", "edge", e.id.String())
		return multierr.Append(errs, ErrBadTopology)
	}

	if err = src.removeOutEdge(e.id, termID); err != nil {
		g.log.Error(err, "out-edge deregistration failed", "edge", e.id.String())
		errs = multierr.Append(errs, err)
	}
	if err = dst.removeInEdge(e.id, e.source); err != nil {
		g.log.Error(err, "in-edge deregistration failed", "edge", e.id.String())
		errs = multierr.Append(errs, err)
	}
	if e.IsHyper() {
		if de, ok := g.edges[e.destEdge]; ok {
			de.hyperIn.remove(e.id)
		}
	}
	delete(g.edges, e.id)
	if dst.InDegree() == 0 {
		g.roots.add(dst.id)
	}

	g.dispatch(func() {
		for _, o := range g.observers {
			o.OnEdgeRemoved(e.id)
		}
		src.notifyOutNodeRemoved(dst.id)
		dst.notifyInNodeRemoved(e.source)
	})

	return errs
}

// TerminalNode resolves the effective terminal node of an edge: for a plain
// edge its destination node, for a hyper-edge the node its destination
// chain ultimately points at. The result is computed, never stored, so it
// stays correct however intermediate edges are arranged.
// Complexity: O(chain length).
func (g *Graph) TerminalNode(id EdgeID) (NodeID, error) {
	e, err := g.Edge(id)
	if err != nil {
		return NodeID{}, err
	}

	return g.terminalOf(e)
}

// terminalOf walks the destination chain of e. The hop bound makes a
// corrupted (cyclic) chain fail with ErrBadTopology instead of spinning.
func (g *Graph) terminalOf(e *Edge) (NodeID, error) {
	for cur, hops := e, len(g.edges)+1; hops > 0; hops-- {
		if !cur.destNode.IsZero() {
			return cur.destNode, nil
		}
		next, ok := g.edges[cur.destEdge]
		if !ok {
			g.log.Error(ErrBadTopology, "hyper-edge chain broken", "edge", cur.id.String())
			return NodeID{}, ErrBadTopology
		}
		cur = next
	}
	g.log.Error(ErrBadTopology, "hyper-edge chain cyclic", "edge", e.id.String())

	return NodeID{}, ErrBadTopology
}

// SetEdgeWeight updates the edge weight and fires an edge-modified
// notification. The engine performs no validation or normalization; any
// value the caller supplies is stored as-is. Fails with ErrUnknownEntity
// for foreign handles.
func (g *Graph) SetEdgeWeight(id EdgeID, weight float64) error {
	if err := g.mutable("SetEdgeWeight"); err != nil {
		return err
	}
	e, err := g.Edge(id)
	if err != nil {
		return err
	}
	e.weight = weight

	g.dispatch(func() {
		for _, o := range g.observers {
			o.OnEdgeModified(id)
		}
	})

	return nil
}

// HasEdge reports whether id resolves against this graph. O(1).
func (g *Graph) HasEdge(id EdgeID) bool {
	_, ok := g.edges[id]
	return ok
}

// HasEdgeBetween reports whether at least one edge leads from source to
// dest (directly or as a hyper-edge terminal). Backed by the neighbor
// cache, O(1). Returns false for handles that do not resolve.
func (g *Graph) HasEdgeBetween(source, dest NodeID) bool {
	src, ok := g.nodes[source]
	if !ok {
		return false
	}

	return src.outNodes.has(dest)
}

// Edges returns every edge handle in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []EdgeID {
	out := make([]EdgeID, 0, len(g.edges))
	for id := range g.edges {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the number of owned edges. O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }
