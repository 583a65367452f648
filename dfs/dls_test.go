package dfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lowkeylab/usearch/core"
	"github.com/lowkeylab/usearch/dfs"
)

func TestSearchLimited_InvalidLimit(t *testing.T) {
	g := buildChain()
	for _, limit := range []int{0, -1, -100} {
		if _, err := dfs.SearchLimited(g, "A", "C", limit); !errors.Is(err, dfs.ErrInvalidDepthLimit) {
			t.Errorf("limit %d: want ErrInvalidDepthLimit, got %v", limit, err)
		}
	}
}

// TestSearchLimited_Boundary pins the depth-boundary semantics on the chain
// A→B→C: the goal sits at depth 2, so limit 1 misses it and limit 2 finds it.
func TestSearchLimited_Boundary(t *testing.T) {
	g := buildChain()

	res, err := dfs.SearchLimited(g, "A", "C", 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Found {
		t.Errorf("limit 1 found %v; C is at depth 2", res.Path)
	}

	res, err = dfs.SearchLimited(g, "A", "C", 2)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found || !reflect.DeepEqual(res.Path, []string{"A", "B", "C"}) {
		t.Errorf("limit 2: got %v found=%v; want [A B C] true", res.Path, res.Found)
	}
}

// TestSearchLimited_BoundaryVertexStillChecked verifies a vertex popped at
// exactly the limit is still goal-tested, just not expanded.
func TestSearchLimited_BoundaryVertexStillChecked(t *testing.T) {
	g := buildChain()
	res, err := dfs.SearchLimited(g, "A", "B", 1)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found || !reflect.DeepEqual(res.Path, []string{"A", "B"}) {
		t.Errorf("goal at the limit: got %v found=%v; want [A B] true", res.Path, res.Found)
	}
}

// TestSearchLimited_DrainsFrontier verifies hitting the boundary on one
// branch does not terminate the whole search: sibling branches within the
// limit are still explored.
func TestSearchLimited_DrainsFrontier(t *testing.T) {
	// Z's branch dead-ends at the limit; the goal hangs off A directly
	g := core.NewGraph()
	_ = g.AddEdge("A", "Z")
	_ = g.AddEdge("Z", "Z2")
	_ = g.AddEdge("Z2", "Z3")
	_ = g.AddEdge("A", "B")

	res, err := dfs.SearchLimited(g, "A", "B", 2)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found || !reflect.DeepEqual(res.Path, []string{"A", "B"}) {
		t.Errorf("sibling branch: got %v found=%v; want [A B] true", res.Path, res.Found)
	}
}

func TestSearchLimited_SelfPath(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	res, err := dfs.SearchLimited(g, "A", "A", 1)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found || !reflect.DeepEqual(res.Path, []string{"A"}) {
		t.Errorf("root==goal: got %v found=%v; want [A] true", res.Path, res.Found)
	}
}

func TestSearchLimited_DepthRecorded(t *testing.T) {
	g := buildChain()
	res, err := dfs.SearchLimited(g, "A", "C", 3)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"A": 0, "B": 1, "C": 2}
	if !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
}
