package topo

import "github.com/emirpasic/gods/sets/linkedhashset"

// ContainerPolicy selects the concrete container implementation used for
// adjacency, membership, and root-set storage. It is fixed at construction
// time via WithContainers and applies uniformly to the whole graph.
type ContainerPolicy int

const (
	// OrderedContainers stores handles in insertion order, giving
	// deterministic enumeration from every query. This is the default.
	OrderedContainers ContainerPolicy = iota

	// UnorderedContainers stores handles in plain hash sets. Operations are
	// O(1) with lower constant overhead, but enumeration order is undefined.
	UnorderedContainers
)

// handleSet is the minimal container contract the engine needs: membership,
// cardinality, and enumeration over a set of handles. Implementations are
// chosen by ContainerPolicy.
type handleSet[H comparable] interface {
	add(h H)
	// remove reports whether h was present before removal.
	remove(h H) bool
	has(h H) bool
	size() int
	// each calls fn for every handle until fn returns false.
	each(fn func(H) bool)
	values() []H
}

func newHandleSet[H comparable](p ContainerPolicy) handleSet[H] {
	if p == UnorderedContainers {
		return make(mapSet[H])
	}
	return &orderedSet[H]{set: linkedhashset.New()}
}

// orderedSet is an insertion-ordered handleSet backed by a gods linked hash
// set. Iteration yields handles in the order they were first added.
type orderedSet[H comparable] struct {
	set *linkedhashset.Set
}

func (s *orderedSet[H]) add(h H) { s.set.Add(h) }

func (s *orderedSet[H]) remove(h H) bool {
	if !s.set.Contains(h) {
		return false
	}
	s.set.Remove(h)
	return true
}

func (s *orderedSet[H]) has(h H) bool { return s.set.Contains(h) }

func (s *orderedSet[H]) size() int { return s.set.Size() }

func (s *orderedSet[H]) each(fn func(H) bool) {
	it := s.set.Iterator()
	for it.Next() {
		if !fn(it.Value().(H)) {
			return
		}
	}
}

func (s *orderedSet[H]) values() []H {
	out := make([]H, 0, s.set.Size())
	it := s.set.Iterator()
	for it.Next() {
		out = append(out, it.Value().(H))
	}
	return out
}

// mapSet is an unordered handleSet backed by a plain map.
type mapSet[H comparable] map[H]struct{}

func (s mapSet[H]) add(h H) { s[h] = struct{}{} }

func (s mapSet[H]) remove(h H) bool {
	if _, ok := s[h]; !ok {
		return false
	}
	delete(s, h)
	return true
}

func (s mapSet[H]) has(h H) bool {
	_, ok := s[h]
	return ok
}

func (s mapSet[H]) size() int { return len(s) }

func (s mapSet[H]) each(fn func(H) bool) {
	for h := range s {
		if !fn(h) {
			return
		}
	}
}

func (s mapSet[H]) values() []H {
	out := make([]H, 0, len(s))
	for h := range s {
		out = append(out, h)
	}
	return out
}

// neighborCache tracks distinct neighbor nodes with reference counts so the
// cache stays exact under parallel edges and self-loops: a neighbor leaves
// the cache only when its last connecting edge is removed.
type neighborCache struct {
	set    handleSet[NodeID]
	counts map[NodeID]int
}

func newNeighborCache(p ContainerPolicy) *neighborCache {
	return &neighborCache{set: newHandleSet[NodeID](p), counts: make(map[NodeID]int)}
}

func (c *neighborCache) add(n NodeID) {
	c.counts[n]++
	if c.counts[n] == 1 {
		c.set.add(n)
	}
}

// remove drops one reference to n, reporting false if none was held.
func (c *neighborCache) remove(n NodeID) bool {
	if c.counts[n] == 0 {
		return false
	}
	c.counts[n]--
	if c.counts[n] == 0 {
		delete(c.counts, n)
		c.set.remove(n)
	}
	return true
}

func (c *neighborCache) has(n NodeID) bool { return c.counts[n] > 0 }

func (c *neighborCache) values() []NodeID { return c.set.values() }
