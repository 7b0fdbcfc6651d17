package traverse

import "github.com/winterheart/gtopo/topo"

// BFS walks the graph breadth-first from start, following out-neighbors,
// and returns discovery order plus depth and parent maps. Fails with
// ErrGraphNil or ErrStartNotFound for invalid input, the context error on
// cancellation, or any error returned by the OnVisit hook.
// Complexity: O(V + E).
func BFS(g *topo.Graph, start topo.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)
	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	res := newResult()
	res.Depth[start] = 0
	queue := []topo.NodeID{start}
	seen := map[topo.NodeID]bool{start: true}

	for len(queue) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		cur := queue[0]
		queue = queue[1:]

		if o.OnVisit != nil {
			if err := o.OnVisit(cur); err != nil {
				return nil, err
			}
		}
		res.Order = append(res.Order, cur)

		if o.MaxDepth >= 0 && res.Depth[cur] >= o.MaxDepth {
			continue
		}
		n, err := g.Node(cur)
		if err != nil {
			// The graph mutated under the walk; surface it rather than
			// silently truncating.
			return nil, err
		}
		for _, next := range n.OutNodes() {
			if seen[next] {
				continue
			}
			seen[next] = true
			res.Depth[next] = res.Depth[cur] + 1
			res.Parent[next] = cur
			queue = append(queue, next)
		}
	}

	return res, nil
}
