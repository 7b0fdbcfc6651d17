package topo

import "github.com/go-logr/logr"

// DefaultWeight is the weight assigned to new edges when WithWeight is not
// supplied.
const DefaultWeight float64 = 1.0

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithContainers selects the container policy used for every adjacency,
// membership, and root-set container in the graph. The default is
// OrderedContainers.
func WithContainers(p ContainerPolicy) GraphOption {
	return func(g *Graph) { g.policy = p }
}

// WithLogger injects a logger used for misuse diagnostics: stale handle
// resolutions are logged at V(1), consistency failures at error level.
// The default is logr.Discard().
func WithLogger(log logr.Logger) GraphOption {
	return func(g *Graph) { g.log = log }
}

// NodeOption configures a node at insertion time.
type NodeOption func(n *Node)

// WithNodeLabel sets the node's display label.
func WithNodeLabel(label string) NodeOption {
	return func(n *Node) { n.label = label }
}

// EdgeOption configures an edge at insertion time.
type EdgeOption func(e *Edge)

// WithWeight overrides the default edge weight. The engine stores the value
// as-is; range validation, if any, belongs to the caller.
func WithWeight(weight float64) EdgeOption {
	return func(e *Edge) { e.weight = weight }
}

// GroupOption configures a group at insertion time.
type GroupOption func(grp *Group)

// WithGroupLabel sets the group's display label.
func WithGroupLabel(label string) GroupOption {
	return func(grp *Group) { grp.label = label }
}
