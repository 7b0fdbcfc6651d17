package topo

// Edge is a directed link from a source node to either a destination node
// or, for hyper-edges, to another edge. The effective terminal node of a
// hyper-edge chain is never stored; it is resolved at read time through
// Graph.TerminalNode. Edges are owned exclusively by their Graph.
type Edge struct {
	id     EdgeID
	source NodeID
	weight float64

	// Exactly one of destNode / destEdge is set.
	destNode NodeID
	destEdge EdgeID

	// hyperIn holds the hyper-edges whose destination is this edge. Removing
	// this edge cascades through them first (children before parents).
	hyperIn handleSet[EdgeID]
}

func newEdge(id EdgeID, source NodeID, p ContainerPolicy) *Edge {
	return &Edge{
		id:      id,
		source:  source,
		weight:  DefaultWeight,
		hyperIn: newHandleSet[EdgeID](p),
	}
}

// ID returns the edge's handle.
func (e *Edge) ID() EdgeID { return e.id }

// Source returns the source node handle. An edge always has a source.
func (e *Edge) Source() NodeID { return e.source }

// DestNode returns the destination node handle; ok is false for hyper-edges.
func (e *Edge) DestNode() (NodeID, bool) { return e.destNode, !e.destNode.IsZero() }

// DestEdge returns the destination edge handle; ok is false for plain edges.
func (e *Edge) DestEdge() (EdgeID, bool) { return e.destEdge, !e.destEdge.IsZero() }

// IsHyper reports whether this edge's destination is another edge.
func (e *Edge) IsHyper() bool { return !e.destEdge.IsZero() }

// Weight returns the edge weight. The engine never validates or normalizes
// weights; any finite value a caller sets is stored as-is.
func (e *Edge) Weight() float64 { return e.weight }
