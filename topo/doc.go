// Package topo provides a generic, configurable in-memory directed-graph
// topology engine with nodes, edges (including hyper-edges whose destination
// is another edge), groups (clusters of nodes), and a pluggable observer
// ("behaviour") system.
//
// The Graph G = (V,E) is the single owner of every node, edge, and group it
// contains. All cross-references (adjacency, group membership, traversal
// entry points) are stable value handles (NodeID, EdgeID, GroupID) resolved
// against the owning Graph on each access. A handle minted by one Graph never
// resolves against another, and a handle whose referent has been removed
// fails cleanly with ErrUnknownEntity. This arena discipline removes
// ownership cycles between mutually-referencing nodes and edges.
//
// Capabilities:
//
//   - Directed edges with float64 weights (default 1.0), self-loops and
//     parallel edges permitted and never deduplicated
//   - Hyper-edges: an edge whose destination is another edge, chaining to an
//     eventual terminal node resolved lazily at read time (TerminalNode)
//   - Groups: at most one group per node, adopt/release via GroupNode and
//     UngroupNode, each group independently observable
//   - Incremental root-node set (nodes with zero in-edges) maintained across
//     every mutation as a set of traversal entry points (Roots)
//   - Counted in/out-neighbor caches on every node, exact under parallel
//     edges and self-loops
//   - Observer interfaces per entity kind (GraphObserver, NodeObserver,
//     GroupObserver) notified in registration order, strictly after the
//     structural mutation is complete
//   - Container policy (WithContainers) selecting insertion-ordered or
//     unordered adjacency containers at construction time
//
// Mutation flow: all mutation enters through the Graph API, which updates
// its owned collections, delegates to node/edge/group adjacency primitives,
// then fires observer notifications outward. Observers see a fully consistent
// post-mutation graph; mutating the Graph from inside a callback is rejected
// with ErrBadTopology.
//
// Concurrency: none. The engine is single-threaded: every operation runs to
// completion before returning and there is no internal locking. Embedders needing concurrent access must serialize all calls
// externally (a single writer lock around the Graph suffices).
//
// Errors:
//
//	ErrUnknownEntity - a handle does not belong to this graph (or is stale);
//	                   always recoverable, the operation is a no-op.
//	ErrBadTopology   - an internal adjacency consistency check failed, or a
//	                   callback attempted re-entrant mutation; indicates a
//	                   defect in the calling logic, not a user error.
package topo
