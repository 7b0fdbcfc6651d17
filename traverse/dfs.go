package traverse

import "github.com/winterheart/gtopo/topo"

// DFS walks the graph depth-first from start, following out-neighbors, and
// returns post-order (a node appears after all its descendants) plus depth
// and parent maps. Fails with ErrGraphNil or ErrStartNotFound for invalid
// input, the context error on cancellation, or any error returned by the
// OnVisit hook (which fires at discovery, pre-order).
// Complexity: O(V + E).
func DFS(g *topo.Graph, start topo.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)
	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	res := newResult()
	seen := make(map[topo.NodeID]bool)

	var walk func(id topo.NodeID, depth int) error
	walk = func(id topo.NodeID, depth int) error {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		seen[id] = true
		res.Depth[id] = depth
		if o.OnVisit != nil {
			if err := o.OnVisit(id); err != nil {
				return err
			}
		}
		if o.MaxDepth < 0 || depth < o.MaxDepth {
			n, err := g.Node(id)
			if err != nil {
				return err
			}
			for _, next := range n.OutNodes() {
				if seen[next] {
					continue
				}
				res.Parent[next] = id
				if err = walk(next, depth+1); err != nil {
					return err
				}
			}
		}
		res.Order = append(res.Order, id)

		return nil
	}
	if err := walk(start, 0); err != nil {
		return nil, err
	}

	return res, nil
}
