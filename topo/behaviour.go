package topo

// Observer interfaces, the "behaviour" system. Each observable entity
// (Graph, Node, Group) keeps its own ordered observer list; registration and
// deregistration are explicit and may happen at any time. Notifications are
// delivered in registration order, strictly after the corresponding
// structural mutation has been fully applied, so callbacks always see a
// consistent post-mutation graph. Callbacks must not mutate the graph:
// re-entrant mutation is rejected with ErrBadTopology.

// GraphObserver receives graph-wide topology change notifications.
// Embed BaseGraphObserver to implement only a subset of the callbacks.
type GraphObserver interface {
	OnNodeInserted(id NodeID)
	OnNodeRemoved(id NodeID)
	// OnNodeModified reports non-structural changes (label updates).
	OnNodeModified(id NodeID)
	OnEdgeInserted(id EdgeID)
	OnEdgeRemoved(id EdgeID)
	// OnEdgeModified reports non-structural changes (weight updates).
	OnEdgeModified(id EdgeID)
	OnGroupInserted(id GroupID)
	OnGroupRemoved(id GroupID)
	// OnGroupModified reports non-structural changes (label updates).
	OnGroupModified(id GroupID)
}

// NodeObserver receives adjacency change notifications for one specific
// node. Embed BaseNodeObserver to implement only a subset of the callbacks.
type NodeObserver interface {
	OnInNodeInserted(neighbor NodeID)
	OnInNodeRemoved(neighbor NodeID)
	OnOutNodeInserted(neighbor NodeID)
	OnOutNodeRemoved(neighbor NodeID)
}

// GroupObserver receives membership change notifications for one specific
// group, independent of the graph-wide observer list.
// Embed BaseGroupObserver to implement only a subset of the callbacks.
type GroupObserver interface {
	OnNodeGrouped(member NodeID)
	OnNodeUngrouped(member NodeID)
}

// BaseGraphObserver is a no-op GraphObserver for selective embedding.
type BaseGraphObserver struct{}

func (BaseGraphObserver) OnNodeInserted(NodeID)   {}
func (BaseGraphObserver) OnNodeRemoved(NodeID)    {}
func (BaseGraphObserver) OnNodeModified(NodeID)   {}
func (BaseGraphObserver) OnEdgeInserted(EdgeID)   {}
func (BaseGraphObserver) OnEdgeRemoved(EdgeID)    {}
func (BaseGraphObserver) OnEdgeModified(EdgeID)   {}
func (BaseGraphObserver) OnGroupInserted(GroupID) {}
func (BaseGraphObserver) OnGroupRemoved(GroupID)  {}
func (BaseGraphObserver) OnGroupModified(GroupID) {}

// BaseNodeObserver is a no-op NodeObserver for selective embedding.
type BaseNodeObserver struct{}

func (BaseNodeObserver) OnInNodeInserted(NodeID)  {}
func (BaseNodeObserver) OnInNodeRemoved(NodeID)   {}
func (BaseNodeObserver) OnOutNodeInserted(NodeID) {}
func (BaseNodeObserver) OnOutNodeRemoved(NodeID)  {}

// BaseGroupObserver is a no-op GroupObserver for selective embedding.
type BaseGroupObserver struct{}

func (BaseGroupObserver) OnNodeGrouped(NodeID)   {}
func (BaseGroupObserver) OnNodeUngrouped(NodeID) {}

// removeObserver deletes the first occurrence of o from list, comparing by
// interface identity, and reports whether it was found.
func removeObserver[O comparable](list []O, o O) ([]O, bool) {
	for i, cur := range list {
		if cur == o {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}
