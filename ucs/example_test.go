package ucs_test

import (
	"fmt"

	"github.com/lowkeylab/usearch/core"
	"github.com/lowkeylab/usearch/ucs"
)

// ExampleSearch shows uniform-cost search taking a longer but cheaper route:
// the direct A→D edge costs 10, the three-hop detour only 3.
func ExampleSearch() {
	g := core.NewGraph()
	costs := core.NewCostTable()
	edges := []struct {
		from, to string
		cost     float64
	}{
		{"A", "D", 10},
		{"A", "B", 1},
		{"B", "C", 1},
		{"C", "D", 1},
	}
	for _, e := range edges {
		_ = g.AddEdge(e.from, e.to)
		_ = costs.Set(e.from, e.to, e.cost)
	}

	res, err := ucs.Search(g, costs, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Path)
	fmt.Println(res.TotalCost)
	// Output:
	// [A B C D]
	// 3
}
