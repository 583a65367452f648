package core

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an operation was given an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrMissingEdgeCost indicates a CostTable lookup for an edge with no entry.
	ErrMissingEdgeCost = errors.New("core: missing edge cost")

	// ErrNegativeCost indicates a negative weight offered to a CostTable.
	ErrNegativeCost = errors.New("core: negative edge cost")
)

// Graph is the in-memory adjacency-set graph searched by every strategy.
//
// Edges are directed: AddEdge(a, b) records a→b only. The zero value is not
// usable; construct with NewGraph.
type Graph struct {
	mu  sync.RWMutex
	adj map[string]map[string]struct{} // vertex ID → set of successor IDs
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{adj: make(map[string]map[string]struct{})}
}

// AddVertex inserts a vertex with the given ID. Adding an existing vertex is
// a no-op (idempotent). Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(id)

	return nil
}

// AddEdge inserts the directed edge from→to, creating either endpoint if
// missing. Re-adding an existing edge is a no-op. Returns ErrEmptyVertexID
// if either ID is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(from)
	g.ensure(to)
	g.adj[from][to] = struct{}{}

	return nil
}

// ensure bootstraps the adjacency bucket for id. Caller holds mu.
func (g *Graph) ensure(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]struct{})
	}
}

// HasVertex reports whether id is a key in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[from][to]

	return ok
}

// NeighborIDs returns the successor IDs of id in sorted order.
// An ID absent from the graph yields an empty slice: vertices referenced but
// never keyed are treated as having no successors (see package doc).
// Complexity: O(d log d) where d is the out-degree.
func (g *Graph) NeighborIDs(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket := g.adj[id]
	ids := make([]string, 0, len(bucket))
	for nbr := range bucket {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of directed edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, bucket := range g.adj {
		n += len(bucket)
	}

	return n
}

// Clone returns a deep copy of the graph. The copy shares no state with the
// original and may be mutated freely.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := &Graph{adj: make(map[string]map[string]struct{}, len(g.adj))}
	for id, bucket := range g.adj {
		nb := make(map[string]struct{}, len(bucket))
		for nbr := range bucket {
			nb[nbr] = struct{}{}
		}
		c.adj[id] = nb
	}

	return c
}
