package topo

import (
	"fmt"
	"sync/atomic"
)

// graphTag generates a process-unique tag per Graph instance so that handles
// minted by one graph can never resolve against another.
var graphTag uint64

func nextGraphTag() uint64 { return atomic.AddUint64(&graphTag, 1) }

// NodeID is a stable, copyable handle to a node owned by a Graph.
// The zero value is invalid and resolves to ErrUnknownEntity everywhere.
type NodeID struct {
	graph uint64
	seq   uint64
}

// IsZero reports whether id is the invalid zero handle.
func (id NodeID) IsZero() bool { return id == NodeID{} }

// String renders a short diagnostic form ("n3"); the graph tag is omitted.
func (id NodeID) String() string { return fmt.Sprintf("n%d", id.seq) }

// EdgeID is a stable, copyable handle to an edge owned by a Graph.
// The zero value is invalid.
type EdgeID struct {
	graph uint64
	seq   uint64
}

// IsZero reports whether id is the invalid zero handle.
func (id EdgeID) IsZero() bool { return id == EdgeID{} }

// String renders a short diagnostic form ("e7").
func (id EdgeID) String() string { return fmt.Sprintf("e%d", id.seq) }

// GroupID is a stable, copyable handle to a group owned by a Graph.
// The zero value is invalid.
type GroupID struct {
	graph uint64
	seq   uint64
}

// IsZero reports whether id is the invalid zero handle.
func (id GroupID) IsZero() bool { return id == GroupID{} }

// String renders a short diagnostic form ("g2").
func (id GroupID) String() string { return fmt.Sprintf("g%d", id.seq) }
