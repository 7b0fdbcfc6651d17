package topo

// Stats is a read-only snapshot of a graph's catalog sizes, handy for
// assertions and diagnostics.
type Stats struct {
	NodeCount      int
	EdgeCount      int
	HyperEdgeCount int
	GroupCount     int
	RootCount      int
	GroupedNodes   int
}

// Stats produces a snapshot of the current catalog sizes.
// Complexity: O(E) for the hyper-edge classification, O(1) otherwise.
func (g *Graph) Stats() Stats {
	s := Stats{
		NodeCount:  len(g.nodes),
		EdgeCount:  len(g.edges),
		GroupCount: len(g.groups),
		RootCount:  g.roots.size(),
	}
	for _, e := range g.edges {
		if e.IsHyper() {
			s.HyperEdgeCount++
		}
	}
	for _, grp := range g.groups {
		s.GroupedNodes += grp.Len()
	}

	return s
}

// Clear tears the whole topology down: edges first, then nodes, then
// groups, so no back-reference ever dangles mid-teardown. Teardown is not
// removal: no observer notifications fire, but the graph's observer list
// itself survives and keeps receiving events from later mutations.
// Calling Clear from inside an observer callback is rejected (logged, no-op).
// Complexity: O(V + E + G).
func (g *Graph) Clear() {
	if g.mutable("Clear") != nil {
		return
	}

	// Edges before nodes: deregister each edge from its endpoints so node
	// state never points at a destroyed edge, even transiently.
	for _, e := range g.edges {
		if src, ok := g.nodes[e.source]; ok {
			if termID, err := g.terminalOf(e); err == nil {
				_ = src.removeOutEdge(e.id, termID)
				if dst, ok := g.nodes[termID]; ok {
					_ = dst.removeInEdge(e.id, e.source)
				}
			}
		}
	}
	g.edges = make(map[EdgeID]*Edge)

	// Nodes before groups: clear membership back-references while the
	// groups still exist.
	for _, n := range g.nodes {
		if grp, ok := g.groups[n.group]; ok {
			_ = grp.removeMember(n.id)
		}
		n.group = GroupID{}
	}
	g.nodes = make(map[NodeID]*Node)
	g.groups = make(map[GroupID]*Group)
	g.roots = newHandleSet[NodeID](g.policy)
}
