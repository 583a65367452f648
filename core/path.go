package core

// ComposePath reconstructs the root-to-v path from a parent map built during
// a search. The map records, for each reached vertex, its immediate
// predecessor in the search tree; the root has no entry. Reached-ness is
// encoded purely by key presence, so there is no sentinel value to confuse
// with a real vertex ID.
//
// ComposePath must only be called for vertices the search proved reachable:
// called on an unreached vertex it returns the single-element slice [v],
// which is indistinguishable from the root==v case. The search strategies
// uphold this by composing paths only for popped (hence reached) vertices.
// Complexity: O(len(path)).
func ComposePath(v string, parents map[string]string) []string {
	path := []string{v}
	for {
		p, ok := parents[v]
		if !ok {
			break
		}
		path = append(path, p)
		v = p
	}
	// reverse in place to get root → v
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
