// Package dfs implements the depth-first family of goal searches over a
// core.Graph: plain depth-first (Search), depth-limited (SearchLimited),
// and iterative-deepening (SearchDeepening).
//
// All three use an explicit LIFO frontier rather than recursion, so search
// depth is bounded by memory, not by the goroutine stack.
//
// Complexity (per invocation):
//
//   - Time:   O(V + E) plus visitor overhead.
//   - Memory: O(V) for the frontier, visited set, and bookkeeping maps.
//
// SearchDeepening multiplies the time bound by its depth bound, re-running
// a fresh depth-limited pass per level; that repetition is the classic
// trade for bounded memory and a shallowest-first guarantee.
package dfs

import (
	"github.com/lowkeylab/usearch/core"
	"github.com/lowkeylab/usearch/frontier"
	"github.com/lowkeylab/usearch/trace"
)

// walker encapsulates mutable state for one depth-first search call.
// A depth limit of 0 means unlimited (plain DFS).
type walker struct {
	graph   *core.Graph
	opts    Options
	goal    string
	limit   int
	stack   frontier.Stack
	visited map[string]bool
	res     *Result
}

// Search runs depth-first search on g from root until goal is reached or the
// frontier is exhausted. The most recently discovered vertex is always
// expanded next. An unreachable goal is a normal result with Found == false.
//
// Returns ErrGraphNil or ErrRootNotFound for invalid input, or the context's
// error if cancelled.
func Search(g *core.Graph, root, goal string, opts ...Option) (*Result, error) {
	return run(g, root, goal, 0, opts)
}

// run is the shared engine behind Search and SearchLimited.
func run(g *core.Graph, root, goal string, limit int, opts []Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(root) {
		return nil, ErrRootNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		goal:    goal,
		limit:   limit,
		visited: make(map[string]bool, n),
		res: &Result{
			Expanded: make([]string, 0, n),
			Parent:   make(map[string]string, n),
		},
	}
	if limit > 0 {
		w.res.Depth = make(map[string]int, n)
		w.res.Depth[root] = 0
	}
	w.stack.Push(root)

	return w.res, w.loop()
}

// loop drains the frontier until the goal is found, the frontier empties,
// or the context is cancelled.
func (w *walker) loop() error {
	for w.stack.Len() > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		v, _ := w.stack.Pop()
		if w.visited[v] {
			continue
		}
		w.visited[v] = true
		w.res.Expanded = append(w.res.Expanded, v)

		path := core.ComposePath(v, w.res.Parent)
		w.opts.Visitor.VisitPath(path, trace.HintExplore)

		if v == w.goal {
			w.res.Path = path
			w.res.Found = true
			w.opts.Visitor.VisitPath(path, trace.HintSolution)

			return nil
		}

		// At the depth boundary: keep draining the frontier, but do not
		// push this vertex's neighbors.
		if w.limit > 0 && w.res.Depth[v] >= w.limit {
			continue
		}

		w.expand(v)
	}

	return nil
}

// expand pushes every neighbor of v that is neither visited nor already
// pending, recording v as its parent (and depth, when limited).
func (w *walker) expand(v string) {
	for _, nbr := range w.graph.NeighborIDs(v) {
		if w.visited[nbr] || w.stack.Contains(nbr) {
			continue
		}
		w.res.Parent[nbr] = v
		if w.res.Depth != nil {
			w.res.Depth[nbr] = w.res.Depth[v] + 1
		}
		w.stack.Push(nbr)
	}
}
