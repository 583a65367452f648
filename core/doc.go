// Package core defines the central Graph and CostTable types consumed by
// every search strategy, plus the parent-map path reconstruction they all
// share.
//
// A Graph is a directed adjacency-set structure: each vertex ID maps to the
// set of IDs it has an edge to. An edge A→B does not imply B→A unless B's
// set explicitly contains A. Duplicate edges are impossible by construction.
//
// All read APIs are guarded by a sync.RWMutex, so a fully built Graph may be
// queried from any number of goroutines. Searches never mutate the graph;
// callers that mutate concurrently with a running search are on their own.
//
// Determinism: Vertices and NeighborIDs return IDs sorted lexicographically
// ascending. Search strategies iterate neighbors in that order, which is why
// repeated runs on the same graph produce identical paths. The ordering
// itself is an implementation choice, not a semantic guarantee.
//
// Tolerance policy: a vertex referenced as a neighbor but never added as a
// key is treated as having an empty neighbor set. NeighborIDs on an unknown
// ID returns an empty slice, not an error. This mirrors the tolerance of the
// graph-definition files the library is fed from and is deliberate.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrMissingEdgeCost - CostTable has no entry for a traversed edge.
//	ErrNegativeCost    - negative weight offered to a CostTable.
package core
