// Package usearch is a family of uninformed graph-search strategies over a
// shared in-memory graph: depth-first, breadth-first, depth-limited,
// iterative-deepening, bidirectional, and uniform-cost search.
//
// Every strategy answers the same question (find a path from a root vertex
// to a goal vertex in an explicit, finite, directed graph) and differs only
// in its frontier discipline:
//
//	dfs/  - LIFO frontier; also hosts depth-limited and iterative-deepening
//	bfs/  - FIFO frontier; shortest path by edge count
//	ucs/  - cost-priority frontier (min-heap); cheapest path by edge cost
//	bidi/ - two FIFO frontiers expanding from root and goal simultaneously
//
// Supporting packages:
//
//	core/     - the Graph adjacency-set model, edge-cost table, and
//	            parent-map path reconstruction shared by all strategies
//	frontier/ - the stack, queue, and cost-queue frontier implementations
//	trace/    - the optional path-visitor hook notified of each expansion,
//	            used externally for visualization and ignored by the core
//	config/   - JSON/YAML graph-definition loading with hot-reload
//	dot/      - Graphviz DOT export of a graph and a found path
//
// All searches are synchronous and keep no state between calls: frontiers,
// visited sets and parent maps are created fresh per invocation, so any
// number of searches may run concurrently against the same graph.
//
// "No path" is a normal result, never an error. Configuration mistakes
// (missing edge costs, invalid depth limits) fail fast with sentinel errors.
//
//	go get github.com/lowkeylab/usearch
package usearch
