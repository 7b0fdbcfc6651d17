// Package traverse provides read-only traversal over a topo.Graph:
// breadth-first and depth-first walks, topological ordering, and cycle
// detection.
//
// Traversal follows directed out-neighbor adjacency (hyper-edges count
// toward their terminal node) and uses the graph's incrementally maintained
// root set as the natural entry points for whole-graph orderings. Nothing
// here mutates the graph; functions only consume the public query API, so
// they hold no private invariants of their own.
//
// All walks accept functional Options: context cancellation, a pre-visit
// hook that can abort the walk, and a depth limit.
package traverse
