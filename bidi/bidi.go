// Package bidi implements bidirectional goal search over a core.Graph: two
// FIFO explorations, one from the root and one from the goal, expanding in
// alternation (root side first) until their discovery sets touch.
//
// The two sides share one reach map. Each entry records which side claimed
// the vertex and, except for the root and goal themselves, its parent in
// that side's search tree. A meeting is declared the moment one side
// discovers a neighbor already claimed by the other side, at neighbor
// discovery, not at the layer boundary, so the joined path touches both
// trees' frontiers as soon as they overlap and is not necessarily shortest.
//
// Goal-side expansion follows the same forward adjacency sets as the root
// side, and its half of the joined path is read in reverse. On a graph
// whose edges are not paired with their reverses, that half may traverse
// edges backward; feed this search symmetric adjacency (every edge present
// in both directions) when directed-path validity matters.
//
// Complexity:
//
//   - Time:   O(V + E) plus visitor overhead.
//   - Memory: O(V) for the two frontiers, two visited sets, and reach map.
package bidi

import (
	"github.com/lowkeylab/usearch/core"
	"github.com/lowkeylab/usearch/frontier"
	"github.com/lowkeylab/usearch/trace"
)

// side identifies which exploration claimed a vertex.
type side uint8

const (
	sideRoot side = iota + 1
	sideGoal
)

// link is a reach-map entry: the claiming side and, when hasParent is set,
// the vertex's parent in that side's search tree. The root and goal are
// pre-claimed by their own sides with no parent, so neither endpoint can be
// captured by the opposite exploration.
type link struct {
	parent    string
	side      side
	hasParent bool
}

// searcher holds the mutable state for one Search call.
type searcher struct {
	graph       *core.Graph
	opts        Options
	rootQ       frontier.Queue
	goalQ       frontier.Queue
	rootVisited map[string]bool
	goalVisited map[string]bool
	reach       map[string]link
	res         *Result
}

// Search runs bidirectional search on g between root and goal. The root
// side takes one expansion step, then the goal side, until either side
// discovers a vertex the other has claimed; the two half-paths are then
// joined at that vertex and returned. Both frontiers draining without a
// meeting is a normal result with Found == false.
//
// root == goal short-circuits to the single-element path [root].
//
// Returns ErrGraphNil or ErrRootNotFound for invalid input, or the
// context's error if cancelled. A goal absent from the graph is not an
// error: its side simply has nothing to expand.
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

	res := &Result{}
	if root == goal {
		res.Path = []string{root}
		res.Found = true
		res.Meeting = root
		o.Visitor.VisitPath(res.Path, trace.HintSolution)

		return res, nil
	}

	s := &searcher{
		graph:       g,
		opts:        o,
		rootVisited: make(map[string]bool),
		goalVisited: make(map[string]bool),
		reach: map[string]link{
			root: {side: sideRoot},
			goal: {side: sideGoal},
		},
		res: res,
	}
	s.rootQ.Push(root)
	s.goalQ.Push(goal)

	return res, s.loop()
}

// loop alternates single expansion steps, root side first, until a meeting
// is found, both frontiers drain, or the context is cancelled.
func (s *searcher) loop() error {
	for s.rootQ.Len() > 0 || s.goalQ.Len() > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}

		if s.rootQ.Len() > 0 {
			if s.step(sideRoot) {
				return nil
			}
		}
		if s.goalQ.Len() > 0 {
			if s.step(sideGoal) {
				return nil
			}
		}
	}

	return nil
}

// step pops and expands one vertex on behalf of from. Returns true when the
// expansion met the opposite search tree and the result is complete.
func (s *searcher) step(from side) bool {
	queue, visited := &s.rootQ, s.rootVisited
	if from == sideGoal {
		queue, visited = &s.goalQ, s.goalVisited
	}

	v, _ := queue.Pop()
	if visited[v] {
		return false
	}
	visited[v] = true
	if from == sideRoot {
		s.res.ExpandedRoot = append(s.res.ExpandedRoot, v)
	} else {
		s.res.ExpandedGoal = append(s.res.ExpandedGoal, v)
	}
	s.opts.Visitor.VisitPath(s.chain(v), trace.HintExplore)

	for _, nbr := range s.graph.NeighborIDs(v) {
		if visited[nbr] || queue.Contains(nbr) {
			continue
		}
		l, claimed := s.reach[nbr]
		if claimed && l.side != from {
			s.join(from, v, nbr)

			return true
		}
		if claimed {
			// our own side already claimed it (the seeded endpoint)
			continue
		}
		s.reach[nbr] = link{parent: v, side: from, hasParent: true}
		queue.Push(nbr)
	}

	return false
}

// join assembles the full path once side from, while expanding v, discovered
// neighbor nbr already claimed by the opposite side.
func (s *searcher) join(from side, v, nbr string) {
	// chain(x) ends at x and starts at the endpoint that seeded x's side,
	// so one half arrives at the meeting edge and the other leaves it.
	var path []string
	if from == sideRoot {
		// [root .. v] + [nbr .. goal]
		path = append(s.chain(v), reversed(s.chain(nbr))...)
	} else {
		// [root .. nbr] + [v .. goal]
		path = append(s.chain(nbr), reversed(s.chain(v))...)
	}
	s.res.Path = path
	s.res.Found = true
	s.res.Meeting = nbr
	s.opts.Visitor.VisitPath(path, trace.HintSolution)
}

// chain walks the reach map from v up to its side's endpoint and returns
// the vertices endpoint-first.
func (s *searcher) chain(v string) []string {
	path := []string{v}
	for {
		l, ok := s.reach[v]
		if !ok || !l.hasParent {
			break
		}
		path = append(path, l.parent)
		v = l.parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// reversed returns a reversed copy of p.
func reversed(p []string) []string {
	out := make([]string, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}

	return out
}
