// Package bfs implements breadth-first goal search over a core.Graph.
//
// BFS explores vertices in increasing edge-count distance from the root
// using a FIFO frontier, so the first time the goal is removed from the
// frontier the reconstructed path is shortest by edge count.
//
// Complexity:
//
//   - Time:   O(V + E) plus visitor overhead.
//   - Memory: O(V) for the frontier, visited set, and parent map.
package bfs

import (
	"github.com/lowkeylab/usearch/core"
	"github.com/lowkeylab/usearch/frontier"
	"github.com/lowkeylab/usearch/trace"
)

// walker encapsulates mutable BFS state for one Search call.
type walker struct {
	graph   *core.Graph
	opts    Options
	goal    string
	queue   frontier.Queue
	visited map[string]bool
	res     *Result
}

// Search runs breadth-first search on g from root until goal is reached or
// the frontier is exhausted. An unreachable goal is a normal result with
// Found == false, never an error.
//
// Returns ErrGraphNil or ErrRootNotFound for invalid input, or the context's
// error if cancelled. A goal absent from the graph is not an error: the
// search simply exhausts.
func Search(g *core.Graph, root, goal string, opts ...Option) (*Result, error) {
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
		visited: make(map[string]bool, n),
		res: &Result{
			Expanded: make([]string, 0, n),
			Parent:   make(map[string]string, n),
		},
	}
	w.queue.Push(root)

	return w.res, w.loop()
}

// loop drains the frontier until the goal is found, the frontier empties,
// or the context is cancelled.
func (w *walker) loop() error {
	for w.queue.Len() > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		v, _ := w.queue.Pop()
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

		w.expand(v)
	}

	return nil
}

// expand pushes every neighbor of v that is neither visited nor already
// pending, recording v as its parent.
func (w *walker) expand(v string) {
	for _, nbr := range w.graph.NeighborIDs(v) {
		if w.visited[nbr] || w.queue.Contains(nbr) {
			continue
		}
		w.res.Parent[nbr] = v
		w.queue.Push(nbr)
	}
}
