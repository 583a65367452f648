package dfs

import "github.com/lowkeylab/usearch/core"

// SearchDeepening runs iterative-deepening search: depth-limited search at
// limits 1, 2, 3, … maxDepth, returning the first successful result. Every
// iteration starts from completely fresh state (nothing is carried between
// depths), which trades repeated shallow work for simplicity and for the
// guarantee that the returned path is a shallowest one: it is found at the
// smallest limit that admits any path.
//
// If maxDepth is exhausted without success, the final iteration's result is
// returned with Found == false; that is a normal outcome, not an error.
// Returns ErrInvalidMaxDepth for bounds below 1.
func SearchDeepening(g *core.Graph, root, goal string, maxDepth int, opts ...Option) (*Result, error) {
	if maxDepth < 1 {
		return nil, ErrInvalidMaxDepth
	}

	var res *Result
	var err error
	for limit := 1; limit <= maxDepth; limit++ {
		res, err = run(g, root, goal, limit, opts)
		if err != nil {
			return nil, err
		}
		if res.Found {
			return res, nil
		}
	}

	return res, nil
}
