package traverse

import (
	"context"
	"errors"

	"github.com/winterheart/gtopo/topo"
)

var (
	// ErrGraphNil is returned when a nil *topo.Graph is passed in.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartNotFound indicates the start handle does not resolve against
	// the graph being traversed.
	ErrStartNotFound = errors.New("traverse: start node not found")

	// ErrCycleDetected indicates TopologicalSort encountered a directed
	// cycle (including self-loops).
	ErrCycleDetected = errors.New("traverse: cycle detected")
)

// Option configures optional behavior of BFS and DFS walks.
type Option func(*Options)

// Options holds configurable traversal parameters.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered.
	// Returning an error aborts the walk with that error.
	OnVisit func(id topo.NodeID) error

	// MaxDepth bounds how far from the start the walk expands;
	// negative means unbounded (the default).
	MaxDepth int
}

// DefaultOptions returns the baseline configuration: background context,
// no hook, unbounded depth.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext installs ctx for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithOnVisit installs a pre-visit hook.
func WithOnVisit(fn func(id topo.NodeID) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth bounds the walk to depth d from the start node.
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// Result carries the outcome of a BFS or DFS walk.
type Result struct {
	// Order lists visited nodes: discovery order for BFS, post-order for DFS.
	Order []topo.NodeID

	// Depth maps each visited node to its distance from the start.
	Depth map[topo.NodeID]int

	// Parent maps each visited node (except the start) to its predecessor
	// in the traversal tree.
	Parent map[topo.NodeID]topo.NodeID
}

func newResult() *Result {
	return &Result{
		Depth:  make(map[topo.NodeID]int),
		Parent: make(map[topo.NodeID]topo.NodeID),
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	return o
}
