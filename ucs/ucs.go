// Package ucs implements uniform-cost search: Dijkstra's algorithm
// restricted to a single root-to-goal query over a core.Graph with a
// core.CostTable supplying non-negative edge costs.
//
// Vertices leave the cost-priority frontier in order of increasing
// accumulated path cost, so the first time the goal is popped its
// reconstructed path is cheapest. The frontier uses the lazy-decrease-key
// strategy: a cheaper rediscovery pushes a duplicate heap entry, and stale
// duplicates are discarded by a visited check at pop time. That guard also
// prevents re-expanding finalized vertices, which the cost-relaxation rule
// alone would merely make redundant, not incorrect.
//
// Every edge the search walks must have a cost entry. A missing entry
// aborts the search with core.ErrMissingEdgeCost: silently defaulting to
// zero or infinity would corrupt the optimality guarantee.
//
// Complexity:
//
//   - Time:   O((V + E) log V) plus visitor overhead.
//   - Memory: O(V + E) for the heap under lazy-decrease-key.
package ucs

import (
	"fmt"

	"github.com/lowkeylab/usearch/core"
	"github.com/lowkeylab/usearch/frontier"
	"github.com/lowkeylab/usearch/trace"
)

// runner holds the mutable state for a single Search call.
type runner struct {
	graph   *core.Graph
	costs   *core.CostTable
	opts    Options
	goal    string
	pq      *frontier.CostQueue
	visited map[string]bool
	res     *Result
}

// Search runs uniform-cost search on g from root until goal is popped with
// its final cost or the frontier is exhausted. An unreachable goal is a
// normal result with Found == false.
//
// Returns ErrGraphNil, ErrCostsNil or ErrRootNotFound for invalid input, a
// core.ErrMissingEdgeCost-wrapped error when a traversed edge has no cost
// entry, or the context's error if cancelled.
func Search(g *core.Graph, costs *core.CostTable, root, goal string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if costs == nil {
		return nil, ErrCostsNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(root) {
		return nil, ErrRootNotFound
	}

	n := g.VertexCount()
	r := &runner{
		graph:   g,
		costs:   costs,
		opts:    o,
		goal:    goal,
		pq:      frontier.NewCostQueue(n),
		visited: make(map[string]bool, n),
		res: &Result{
			Expanded: make([]string, 0, n),
			Parent:   make(map[string]string, n),
			Cost:     make(map[string]float64, n),
		},
	}
	r.res.Cost[root] = 0
	r.pq.Push(root, 0)

	return r.res, r.loop()
}

// loop pops minimum-cost entries until the goal is finalized, the frontier
// empties, or the context is cancelled.
func (r *runner) loop() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item, _ := r.pq.Pop()
		v := item.ID
		// Stale duplicate from lazy-decrease-key, or a re-push of a
		// finalized vertex: skip.
		if r.visited[v] {
			continue
		}

		r.visited[v] = true
		r.res.Expanded = append(r.res.Expanded, v)

		path := core.ComposePath(v, r.res.Parent)
		r.opts.Visitor.VisitPath(path, trace.HintExplore)

		if v == r.goal {
			r.res.Path = path
			r.res.Found = true
			r.res.TotalCost = r.res.Cost[v]
			r.opts.Visitor.VisitPath(path, trace.HintSolution)

			return nil
		}

		if err := r.relax(v); err != nil {
			return err
		}
	}

	return nil
}

// relax considers every outgoing edge of v, updating any neighbor whose
// cheapest known cost improves and pushing it onto the frontier.
func (r *runner) relax(v string) error {
	for _, nbr := range r.graph.NeighborIDs(v) {
		w, err := r.costs.Cost(v, nbr)
		if err != nil {
			return fmt.Errorf("ucs: relaxing %s→%s: %w", v, nbr, err)
		}
		candidate := r.res.Cost[v] + w
		r.opts.Visitor.VisitPath([]string{v, nbr}, trace.HintProbe)

		if known, ok := r.res.Cost[nbr]; ok && candidate >= known {
			continue
		}
		r.res.Cost[nbr] = candidate
		r.res.Parent[nbr] = v
		r.pq.Push(nbr, candidate)
	}

	return nil
}
