package dfs

import "github.com/lowkeylab/usearch/core"

// SearchLimited runs depth-limited search: depth-first search that never
// expands a vertex at depth >= limit from the root. Vertices at the
// boundary are still popped, checked against the goal, and recorded; only
// their neighbor push is suppressed, so the frontier drains fully before
// the search reports no path.
//
// limit counts edges from the root: limit=1 reaches the root's direct
// neighbors and no further. Returns ErrInvalidDepthLimit for limits below 1;
// a zero or negative limit would silently degenerate to a root-only search,
// which is a caller mistake worth failing loudly on.
func SearchLimited(g *core.Graph, root, goal string, limit int, opts ...Option) (*Result, error) {
	if limit < 1 {
		return nil, ErrInvalidDepthLimit
	}

	return run(g, root, goal, limit, opts)
}
