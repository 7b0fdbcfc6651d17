package traverse_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winterheart/gtopo/topo"
	"github.com/winterheart/gtopo/traverse"
)

// buildChain returns a directed chain n0 -> n1 -> ... -> n(k-1).
func buildChain(t *testing.T, k int) (*topo.Graph, []topo.NodeID) {
	t.Helper()
	g := topo.NewGraph()
	ids := make([]topo.NodeID, k)
	for i := range ids {
		ids[i] = g.AddNode()
	}
	for i := 0; i+1 < k; i++ {
		_, err := g.AddEdge(ids[i], ids[i+1])
		require.NoError(t, err)
	}
	return g, ids
}

// buildDiamond returns a -> b, a -> c, b -> d, c -> d.
func buildDiamond(t *testing.T) (*topo.Graph, []topo.NodeID) {
	t.Helper()
	g := topo.NewGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	d := g.AddNode()
	for _, pair := range [][2]topo.NodeID{{a, b}, {a, c}, {b, d}, {c, d}} {
		_, err := g.AddEdge(pair[0], pair[1])
		require.NoError(t, err)
	}
	return g, []topo.NodeID{a, b, c, d}
}

func TestBFS_NilGraph(t *testing.T) {
	res, err := traverse.BFS(nil, topo.NodeID{})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, traverse.ErrGraphNil)
}

func TestBFS_StartNotFound(t *testing.T) {
	g := topo.NewGraph()
	res, err := traverse.BFS(g, topo.NodeID{})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, traverse.ErrStartNotFound)
}

func TestBFS_DiscoveryOrderAndDepth(t *testing.T) {
	g, ids := buildDiamond(t)
	a, b, c, d := ids[0], ids[1], ids[2], ids[3]

	res, err := traverse.BFS(g, a)
	require.NoError(t, err)
	assert.Equal(t, []topo.NodeID{a, b, c, d}, res.Order, "ordered containers make BFS deterministic")
	assert.Equal(t, 0, res.Depth[a])
	assert.Equal(t, 1, res.Depth[b])
	assert.Equal(t, 1, res.Depth[c])
	assert.Equal(t, 2, res.Depth[d])
	assert.Equal(t, b, res.Parent[d], "d discovered through b, the earlier neighbor")
	_, hasParent := res.Parent[a]
	assert.False(t, hasParent)
}

func TestBFS_MaxDepth(t *testing.T) {
	g, ids := buildChain(t, 5)
	res, err := traverse.BFS(g, ids[0], traverse.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, ids[:3], res.Order)
}

func TestBFS_HookAbort(t *testing.T) {
	g, ids := buildChain(t, 3)
	boom := errors.New("boom")
	res, err := traverse.BFS(g, ids[0], traverse.WithOnVisit(func(id topo.NodeID) error {
		if id == ids[1] {
			return boom
		}
		return nil
	}))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
}

func TestBFS_ContextCancelled(t *testing.T) {
	g, ids := buildChain(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := traverse.BFS(g, ids[0], traverse.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_SelfLoopVisitedOnce(t *testing.T) {
	g := topo.NewGraph()
	a := g.AddNode()
	_, err := g.AddEdge(a, a)
	require.NoError(t, err)

	res, err := traverse.BFS(g, a)
	require.NoError(t, err)
	assert.Equal(t, []topo.NodeID{a}, res.Order)
}

func TestDFS_PostOrderChain(t *testing.T) {
	g, ids := buildChain(t, 3)
	res, err := traverse.DFS(g, ids[0])
	require.NoError(t, err)
	assert.Equal(t, []topo.NodeID{ids[2], ids[1], ids[0]}, res.Order)
	assert.Equal(t, ids[1], res.Parent[ids[2]])
	assert.Equal(t, 2, res.Depth[ids[2]])
}

func TestDFS_Disconnected(t *testing.T) {
	g, ids := buildChain(t, 2)
	lone := g.AddNode()

	res, err := traverse.DFS(g, ids[0])
	require.NoError(t, err)
	assert.NotContains(t, res.Order, lone)
}

func TestDFS_MaxDepth(t *testing.T) {
	g, ids := buildChain(t, 4)
	res, err := traverse.DFS(g, ids[0], traverse.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []topo.NodeID{ids[1], ids[0]}, res.Order)
}

func TestDFS_TraversesHyperEdgeTerminals(t *testing.T) {
	// a -> b plus a hyper-edge c -> (a->b): from c, the walk reaches b.
	g := topo.NewGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	ab, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddHyperEdge(c, ab)
	require.NoError(t, err)

	res, err := traverse.DFS(g, c)
	require.NoError(t, err)
	assert.Equal(t, []topo.NodeID{b, c}, res.Order)
}

func TestTopologicalSort_Diamond(t *testing.T) {
	g, ids := buildDiamond(t)
	order, err := traverse.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 4)

	pos := make(map[topo.NodeID]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	assert.Less(t, pos[ids[0]], pos[ids[1]])
	assert.Less(t, pos[ids[0]], pos[ids[2]])
	assert.Less(t, pos[ids[1]], pos[ids[3]])
	assert.Less(t, pos[ids[2]], pos[ids[3]])
	assert.False(t, traverse.HasCycle(g))
}

func TestTopologicalSort_ParallelEdges(t *testing.T) {
	g := topo.NewGraph()
	a := g.AddNode()
	b := g.AddNode()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(a, b)
	require.NoError(t, err)

	order, err := traverse.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []topo.NodeID{a, b}, order)
}

func TestTopologicalSort_CycleDetected(t *testing.T) {
	g := topo.NewGraph()
	a := g.AddNode()
	b := g.AddNode()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, a)
	require.NoError(t, err)

	_, err = traverse.TopologicalSort(g)
	assert.ErrorIs(t, err, traverse.ErrCycleDetected)
	assert.True(t, traverse.HasCycle(g))
}

func TestTopologicalSort_SelfLoopIsACycle(t *testing.T) {
	g := topo.NewGraph()
	a := g.AddNode()
	_, err := g.AddEdge(a, a)
	require.NoError(t, err)

	_, err = traverse.TopologicalSort(g)
	assert.ErrorIs(t, err, traverse.ErrCycleDetected)
}

func TestTopologicalSort_NilGraph(t *testing.T) {
	_, err := traverse.TopologicalSort(nil)
	assert.ErrorIs(t, err, traverse.ErrGraphNil)
}
