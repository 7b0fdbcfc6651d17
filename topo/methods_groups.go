package topo

import (
	"sort"

	"go.uber.org/multierr"
)

// AddGroup creates a new empty group and takes ownership of it. Graph
// observers are notified after insertion. Always succeeds, except from
// inside an observer callback, where it logs the misuse and returns the
// zero (invalid) handle.
// Complexity: O(1) amortized.
func (g *Graph) AddGroup(opts ...GroupOption) GroupID {
	if g.mutable("AddGroup") != nil {
		return GroupID{}
	}
	grp := newGroup(g.nextGroupID(), g.policy)
	for _, opt := range opts {
		opt(grp)
	}
	g.groups[grp.id] = grp

	g.dispatch(func() {
		for _, o := range g.observers {
			o.OnGroupInserted(grp.id)
		}
	})

	return grp.id
}

// HasGroup reports whether id resolves against this graph. O(1).
func (g *Graph) HasGroup(id GroupID) bool {
	_, ok := g.groups[id]
	return ok
}

// RemoveGroup releases every member node (clearing its group back-reference
// and notifying the group's own observers) before destroying the group and
// notifying graph observers. Member nodes themselves are untouched. Fails
// with ErrUnknownEntity if id is not owned by this graph.
// Complexity: O(members).
func (g *Graph) RemoveGroup(id GroupID) error {
	if err := g.mutable("RemoveGroup"); err != nil {
		return err
	}
	grp, err := g.Group(id)
	if err != nil {
		return err
	}

	var errs error
	for _, nid := range grp.Members() {
		n, ok := g.nodes[nid]
		if !ok {
			g.log.Error(ErrBadTopology, "group member not owned", "group", id.String(), "node", nid.String())
			errs = multierr.Append(errs, ErrBadTopology)
			continue
		}
		errs = multierr.Append(errs, g.releaseNode(grp, n))
	}
	delete(g.groups, id)

	g.dispatch(func() {
		for _, o := range g.observers {
			o.OnGroupRemoved(id)
		}
	})

	return errs
}

// SetGroupLabel updates the group's display label and fires a
// group-modified notification. Fails with ErrUnknownEntity for foreign
// handles.
func (g *Graph) SetGroupLabel(id GroupID, label string) error {
	if err := g.mutable("SetGroupLabel"); err != nil {
		return err
	}
	grp, err := g.Group(id)
	if err != nil {
		return err
	}
	grp.label = label

	g.dispatch(func() {
		for _, o := range g.observers {
			o.OnGroupModified(id)
		}
	})

	return nil
}

// GroupNode adopts node into group. A node belongs to at most one group:
// if it is already grouped elsewhere it is released from that group first,
// with that group's observers notified exactly once. Adopting a node into
// its current group is a no-op. Fails with ErrUnknownEntity if either
// handle is foreign.
// Complexity: O(1).
func (g *Graph) GroupNode(node NodeID, group GroupID) error {
	if err := g.mutable("GroupNode"); err != nil {
		return err
	}
	n, err := g.Node(node)
	if err != nil {
		return err
	}
	grp, err := g.Group(group)
	if err != nil {
		return err
	}
	if n.group == group {
		return nil
	}
	if !n.group.IsZero() {
		prev, ok := g.groups[n.group]
		if !ok {
			g.log.Error(ErrBadTopology, "group back-reference does not resolve", "node", node.String())
			return ErrBadTopology
		}
		if err = g.releaseNode(prev, n); err != nil {
			return err
		}
	}
	if err = grp.addMember(node); err != nil {
		g.log.Error(err, "member registration failed", "group", group.String(), "node", node.String())
		return err
	}
	n.group = group

	g.dispatch(func() {
		grp.notifyNodeGrouped(node)
	})

	return nil
}

// UngroupNode releases node from whatever group it belongs to; releasing
// an ungrouped node is a no-op. Fails with ErrUnknownEntity if the handle
// is foreign.
// Complexity: O(1).
func (g *Graph) UngroupNode(node NodeID) error {
	if err := g.mutable("UngroupNode"); err != nil {
		return err
	}
	n, err := g.Node(node)
	if err != nil {
		return err
	}
	if n.group.IsZero() {
		return nil
	}
	grp, ok := g.groups[n.group]
	if !ok {
		g.log.Error(ErrBadTopology, "group back-reference does not resolve", "node", node.String())
		return ErrBadTopology
	}

	return g.releaseNode(grp, n)
}

// releaseNode clears the mutual membership references between grp and n and
// notifies the group's observers after the release is complete.
func (g *Graph) releaseNode(grp *Group, n *Node) error {
	if err := grp.removeMember(n.id); err != nil {
		g.log.Error(err, "member deregistration failed", "group", grp.id.String(), "node", n.id.String())
		return err
	}
	n.group = GroupID{}

	g.dispatch(func() {
		grp.notifyNodeUngrouped(n.id)
	})

	return nil
}

// Groups returns every group handle in insertion order.
// Complexity: O(G log G).
func (g *Graph) Groups() []GroupID {
	out := make([]GroupID, 0, len(g.groups))
	for id := range g.groups {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// GroupCount returns the number of owned groups. O(1).
func (g *Graph) GroupCount() int { return len(g.groups) }
