// Package gtopo is a generic, reusable graph-topology engine: directed
// graphs with hyper-edge-capable destinations, node groups (clusters), an
// incrementally maintained root-node set, and a pluggable observer system:
// the data-structure core a graph editor or dataflow runtime builds on.
//
// The engine keeps bidirectional adjacency invariants (in-edge/out-edge
// sets and neighbor caches) consistent under every insertion and removal,
// and sidesteps ownership cycles between mutually-referencing nodes and
// edges by centralizing ownership in the Graph's arena: everything else is
// a stable value handle, re-validated on each access.
//
// Packages:
//
//	topo/     - the topology engine: Graph, Node, Edge, Group, handles,
//	            container policy, observers, errors
//	traverse/ - read-only BFS, DFS, topological sort and cycle detection
//	            over a topo.Graph
//	examples/ - runnable demos (dataflow pipeline, clustered placement)
//
// Quick ASCII example:
//
//	    n1 ──▶ n2 ──▶ n3        roots: {n1}
//
// The engine is single-threaded by contract: wrap all Graph calls in your
// own synchronization if you mutate from several goroutines.
//
//	go get github.com/winterheart/gtopo
package gtopo
