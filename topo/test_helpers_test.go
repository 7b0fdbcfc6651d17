package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winterheart/gtopo/topo"
)

// graphRecorder captures graph-level notifications as compact event strings
// ("node+ n1", "edge- e3", ...) in delivery order.
type graphRecorder struct {
	events []string
}

func (r *graphRecorder) OnNodeInserted(id topo.NodeID)   { r.events = append(r.events, "node+ "+id.String()) }
func (r *graphRecorder) OnNodeRemoved(id topo.NodeID)    { r.events = append(r.events, "node- "+id.String()) }
func (r *graphRecorder) OnNodeModified(id topo.NodeID)   { r.events = append(r.events, "node~ "+id.String()) }
func (r *graphRecorder) OnEdgeInserted(id topo.EdgeID)   { r.events = append(r.events, "edge+ "+id.String()) }
func (r *graphRecorder) OnEdgeRemoved(id topo.EdgeID)    { r.events = append(r.events, "edge- "+id.String()) }
func (r *graphRecorder) OnEdgeModified(id topo.EdgeID)   { r.events = append(r.events, "edge~ "+id.String()) }
func (r *graphRecorder) OnGroupInserted(id topo.GroupID) { r.events = append(r.events, "group+ "+id.String()) }
func (r *graphRecorder) OnGroupRemoved(id topo.GroupID)  { r.events = append(r.events, "group- "+id.String()) }
func (r *graphRecorder) OnGroupModified(id topo.GroupID) { r.events = append(r.events, "group~ "+id.String()) }

// nodeRecorder captures adjacency notifications for one node.
type nodeRecorder struct {
	events []string
}

func (r *nodeRecorder) OnInNodeInserted(n topo.NodeID)  { r.events = append(r.events, "in+ "+n.String()) }
func (r *nodeRecorder) OnInNodeRemoved(n topo.NodeID)   { r.events = append(r.events, "in- "+n.String()) }
func (r *nodeRecorder) OnOutNodeInserted(n topo.NodeID) { r.events = append(r.events, "out+ "+n.String()) }
func (r *nodeRecorder) OnOutNodeRemoved(n topo.NodeID)  { r.events = append(r.events, "out- "+n.String()) }

// groupRecorder captures membership notifications for one group.
type groupRecorder struct {
	grouped   []topo.NodeID
	ungrouped []topo.NodeID
}

func (r *groupRecorder) OnNodeGrouped(n topo.NodeID)   { r.grouped = append(r.grouped, n) }
func (r *groupRecorder) OnNodeUngrouped(n topo.NodeID) { r.ungrouped = append(r.ungrouped, n) }

// checkAdjacencyInvariants re-derives every node's expected adjacency from
// the edge catalog and compares it against the node's own edge sets,
// neighbor caches, and the root set. Call it after any mutation sequence.
func checkAdjacencyInvariants(t *testing.T, g *topo.Graph) {
	t.Helper()

	type adj struct {
		in, out   []topo.EdgeID
		inN, outN map[topo.NodeID]int
	}
	want := make(map[topo.NodeID]*adj)
	for _, nid := range g.Nodes() {
		want[nid] = &adj{inN: map[topo.NodeID]int{}, outN: map[topo.NodeID]int{}}
	}

	for _, eid := range g.Edges() {
		e, err := g.Edge(eid)
		require.NoError(t, err)
		term, err := g.TerminalNode(eid)
		require.NoError(t, err)

		src := want[e.Source()]
		require.NotNil(t, src, "edge source must be owned by the graph")
		src.out = append(src.out, eid)
		src.outN[term]++

		dst := want[term]
		require.NotNil(t, dst, "edge terminal must be owned by the graph")
		dst.in = append(dst.in, eid)
		dst.inN[e.Source()]++
	}

	for nid, w := range want {
		n, err := g.Node(nid)
		require.NoError(t, err)

		assert.ElementsMatch(t, w.in, n.InEdges(), "in-edge set of %s", nid)
		assert.ElementsMatch(t, w.out, n.OutEdges(), "out-edge set of %s", nid)
		assert.Equal(t, len(w.in), n.InDegree(), "in-degree of %s", nid)
		assert.Equal(t, len(w.out), n.OutDegree(), "out-degree of %s", nid)

		var inN, outN []topo.NodeID
		for id := range w.inN {
			inN = append(inN, id)
		}
		for id := range w.outN {
			outN = append(outN, id)
		}
		assert.ElementsMatch(t, inN, n.InNodes(), "in-neighbor cache of %s", nid)
		assert.ElementsMatch(t, outN, n.OutNodes(), "out-neighbor cache of %s", nid)

		assert.Equal(t, len(w.in) == 0, g.IsRoot(nid), "root-set membership of %s", nid)
	}
}
