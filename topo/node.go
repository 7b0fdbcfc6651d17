package topo

// Node is a topology vertex. It holds its in-edge and out-edge sets plus
// counted in-/out-neighbor caches, an optional group membership, and its own
// observer list. Nodes are owned exclusively by their Graph; the accessors
// below are read-only views, and all mutation goes through the Graph API.
type Node struct {
	id    NodeID
	label string

	inEdges  handleSet[EdgeID]
	outEdges handleSet[EdgeID]
	inNodes  *neighborCache
	outNodes *neighborCache

	// group is the zero GroupID while the node is ungrouped.
	group GroupID

	observers []NodeObserver
}

func newNode(id NodeID, p ContainerPolicy) *Node {
	return &Node{
		id:       id,
		inEdges:  newHandleSet[EdgeID](p),
		outEdges: newHandleSet[EdgeID](p),
		inNodes:  newNeighborCache(p),
		outNodes: newNeighborCache(p),
	}
}

// ID returns the node's handle.
func (n *Node) ID() NodeID { return n.id }

// Label returns the node's display label (empty by default).
func (n *Node) Label() string { return n.label }

// InEdges returns the handles of all edges terminating at this node.
func (n *Node) InEdges() []EdgeID { return n.inEdges.values() }

// OutEdges returns the handles of all edges originating at this node.
func (n *Node) OutEdges() []EdgeID { return n.outEdges.values() }

// InNodes returns the distinct predecessor nodes, derived from the counted
// neighbor cache: exact under parallel edges and self-loops.
func (n *Node) InNodes() []NodeID { return n.inNodes.values() }

// OutNodes returns the distinct successor nodes.
func (n *Node) OutNodes() []NodeID { return n.outNodes.values() }

// InDegree returns the number of in-edges. O(1).
func (n *Node) InDegree() int { return n.inEdges.size() }

// OutDegree returns the number of out-edges. O(1).
func (n *Node) OutDegree() int { return n.outEdges.size() }

// Group returns the handle of the group this node belongs to, if any.
func (n *Node) Group() (GroupID, bool) { return n.group, !n.group.IsZero() }

// Observe appends o to this node's observer list. Notification order is
// registration order.
func (n *Node) Observe(o NodeObserver) { n.observers = append(n.observers, o) }

// Unobserve removes a previously registered observer, reporting whether it
// was found.
func (n *Node) Unobserve(o NodeObserver) bool {
	var ok bool
	n.observers, ok = removeObserver(n.observers, o)
	return ok
}

// Adjacency mutation primitives. These are driven exclusively by the owning
// Graph, which is responsible for keeping both endpoints and the root set
// consistent; they never fire notifications themselves.

// addOutEdge registers e (whose effective destination is dst) as an out-edge.
func (n *Node) addOutEdge(e EdgeID, dst NodeID) error {
	if n.outEdges.has(e) {
		return ErrBadTopology
	}
	n.outEdges.add(e)
	n.outNodes.add(dst)
	return nil
}

// addInEdge registers e (originating at src) as an in-edge.
func (n *Node) addInEdge(e EdgeID, src NodeID) error {
	if n.inEdges.has(e) {
		return ErrBadTopology
	}
	n.inEdges.add(e)
	n.inNodes.add(src)
	return nil
}

// removeOutEdge deregisters e and drops one cache reference to dst.
// Absence of either is a consistency failure, not a normal condition.
func (n *Node) removeOutEdge(e EdgeID, dst NodeID) error {
	if !n.outEdges.remove(e) {
		return ErrBadTopology
	}
	if !n.outNodes.remove(dst) {
		return ErrBadTopology
	}
	return nil
}

// removeInEdge deregisters e and drops one cache reference to src.
func (n *Node) removeInEdge(e EdgeID, src NodeID) error {
	if !n.inEdges.remove(e) {
		return ErrBadTopology
	}
	if !n.inNodes.remove(src) {
		return ErrBadTopology
	}
	return nil
}

func (n *Node) notifyInNodeInserted(neighbor NodeID) {
	for _, o := range n.observers {
		o.OnInNodeInserted(neighbor)
	}
}

func (n *Node) notifyInNodeRemoved(neighbor NodeID) {
	for _, o := range n.observers {
		o.OnInNodeRemoved(neighbor)
	}
}

func (n *Node) notifyOutNodeInserted(neighbor NodeID) {
	for _, o := range n.observers {
		o.OnOutNodeInserted(neighbor)
	}
}

func (n *Node) notifyOutNodeRemoved(neighbor NodeID) {
	for _, o := range n.observers {
		o.OnOutNodeRemoved(neighbor)
	}
}
