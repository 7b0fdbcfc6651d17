package topo

import "errors"

// Sentinel errors for topology operations. Match with errors.Is; multi-step
// teardown paths may aggregate several of them into one error.
var (
	// ErrUnknownEntity indicates a handle that does not belong to the graph
	// (or group) it was passed to: foreign, stale, or the zero value.
	// The failed operation is a no-op; no state is modified.
	ErrUnknownEntity = errors.New("topo: unknown entity")

	// ErrBadTopology indicates an internal adjacency consistency check
	// failed, e.g. removing an edge reference that is not present, or a
	// mutation attempted from inside an observer callback. It signals a
	// defect in the calling logic rather than a recoverable input error.
	ErrBadTopology = errors.New("topo: bad topology")
)
