package topo

// Group is a named sub-collection of nodes. A node belongs to at most one
// group at a time, and every member's group back-reference points at this
// group for exactly as long as it is a member. Groups carry their own
// observer list, distinct from the graph's, so membership changes of one
// group can be watched without subscribing to the whole graph.
type Group struct {
	id    GroupID
	label string

	members handleSet[NodeID]

	observers []GroupObserver
}

func newGroup(id GroupID, p ContainerPolicy) *Group {
	return &Group{id: id, members: newHandleSet[NodeID](p)}
}

// ID returns the group's handle.
func (grp *Group) ID() GroupID { return grp.id }

// Label returns the group's display label (empty by default).
func (grp *Group) Label() string { return grp.label }

// Members returns the handles of all member nodes.
func (grp *Group) Members() []NodeID { return grp.members.values() }

// Len returns the number of member nodes. O(1).
func (grp *Group) Len() int { return grp.members.size() }

// Has reports whether id is currently a member.
func (grp *Group) Has(id NodeID) bool { return grp.members.has(id) }

// Observe appends o to this group's observer list. Notification order is
// registration order.
func (grp *Group) Observe(o GroupObserver) { grp.observers = append(grp.observers, o) }

// Unobserve removes a previously registered observer, reporting whether it
// was found.
func (grp *Group) Unobserve(o GroupObserver) bool {
	var ok bool
	grp.observers, ok = removeObserver(grp.observers, o)
	return ok
}

// Membership primitives, driven exclusively by the owning Graph.

func (grp *Group) addMember(id NodeID) error {
	if grp.members.has(id) {
		return ErrBadTopology
	}
	grp.members.add(id)
	return nil
}

func (grp *Group) removeMember(id NodeID) error {
	if !grp.members.remove(id) {
		return ErrBadTopology
	}
	return nil
}

func (grp *Group) notifyNodeGrouped(member NodeID) {
	for _, o := range grp.observers {
		o.OnNodeGrouped(member)
	}
}

func (grp *Group) notifyNodeUngrouped(member NodeID) {
	for _, o := range grp.observers {
		o.OnNodeUngrouped(member)
	}
}
