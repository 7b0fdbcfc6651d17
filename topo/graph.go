package topo

import "github.com/go-logr/logr"

// Graph is the root owner of all nodes, edges, and groups of one topology.
// Every entity lives in the graph's arena, keyed by its handle; nothing
// outside the graph ever owns an entity, which is what makes stale-handle
// detection a plain existence check.
//
// The Graph is single-threaded: no operation suspends, and there is no
// internal locking. See the package documentation for the concurrency
// contract.
type Graph struct {
	tag    uint64
	seq    uint64
	policy ContainerPolicy
	log    logr.Logger

	nodes  map[NodeID]*Node
	edges  map[EdgeID]*Edge
	groups map[GroupID]*Group

	// roots tracks nodes with zero in-edges, maintained incrementally as
	// traversal entry points.
	roots handleSet[NodeID]

	observers []GraphObserver

	// notifying is set for the duration of observer dispatch; mutations
	// attempted while it is set are re-entrant and rejected.
	notifying bool
}

// NewGraph creates an empty Graph. By default it uses OrderedContainers and
// discards diagnostics; see WithContainers and WithLogger.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		tag:    nextGraphTag(),
		policy: OrderedContainers,
		log:    logr.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = make(map[NodeID]*Node)
	g.edges = make(map[EdgeID]*Edge)
	g.groups = make(map[GroupID]*Group)
	g.roots = newHandleSet[NodeID](g.policy)

	return g
}

// Containers reports the container policy the graph was built with.
func (g *Graph) Containers() ContainerPolicy { return g.policy }

// Node resolves a node handle against this graph's arena. It fails with
// ErrUnknownEntity for foreign, stale, or zero handles; the returned *Node
// is a read-only view that stays valid until the node is removed.
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		g.log.V(1).Info("handle does not resolve", "node", id.String())
		return nil, ErrUnknownEntity
	}

	return n, nil
}

// Edge resolves an edge handle against this graph's arena.
// Complexity: O(1).
func (g *Graph) Edge(id EdgeID) (*Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		g.log.V(1).Info("handle does not resolve", "edge", id.String())
		return nil, ErrUnknownEntity
	}

	return e, nil
}

// Group resolves a group handle against this graph's arena.
// Complexity: O(1).
func (g *Graph) Group(id GroupID) (*Group, error) {
	grp, ok := g.groups[id]
	if !ok {
		g.log.V(1).Info("handle does not resolve", "group", id.String())
		return nil, ErrUnknownEntity
	}

	return grp, nil
}

// Observe appends o to the graph's observer list. Notification order is
// registration order.
func (g *Graph) Observe(o GraphObserver) { g.observers = append(g.observers, o) }

// Unobserve removes a previously registered observer, reporting whether it
// was found.
func (g *Graph) Unobserve(o GraphObserver) bool {
	var ok bool
	g.observers, ok = removeObserver(g.observers, o)
	return ok
}

// handle minting; the sequence is shared across entity kinds, so handles are
// unique graph-wide, not just per kind.

func (g *Graph) nextNodeID() NodeID {
	g.seq++
	return NodeID{graph: g.tag, seq: g.seq}
}

func (g *Graph) nextEdgeID() EdgeID {
	g.seq++
	return EdgeID{graph: g.tag, seq: g.seq}
}

func (g *Graph) nextGroupID() GroupID {
	g.seq++
	return GroupID{graph: g.tag, seq: g.seq}
}

// mutable rejects structural mutation while observer dispatch is in flight.
func (g *Graph) mutable(op string) error {
	if g.notifying {
		g.log.Error(ErrBadTopology, "re-entrant mutation from observer callback", "op", op)
		return ErrBadTopology
	}

	return nil
}

// dispatch runs fn with the re-entrancy guard raised. All notification
// fan-out goes through here, and dispatch calls are never nested.
func (g *Graph) dispatch(fn func()) {
	g.notifying = true
	fn()
	g.notifying = false
}
