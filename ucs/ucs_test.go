package ucs_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/lowkeylab/usearch/core"
	"github.com/lowkeylab/usearch/trace"
	"github.com/lowkeylab/usearch/ucs"
)

// buildWeightedDiamond returns A→{B,C}, B→{D}, C→{D} with costs making the
// B route cheap: A-B=1, A-C=5, B-D=1, C-D=1.
func buildWeightedDiamond() (*core.Graph, *core.CostTable) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("B", "D")
	_ = g.AddEdge("C", "D")

	ct := core.NewCostTable()
	_ = ct.Set("A", "B", 1)
	_ = ct.Set("A", "C", 5)
	_ = ct.Set("B", "D", 1)
	_ = ct.Set("C", "D", 1)

	return g, ct
}

func TestSearch_Errors(t *testing.T) {
	g, ct := buildWeightedDiamond()
	if _, err := ucs.Search(nil, ct, "A", "D"); !errors.Is(err, ucs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := ucs.Search(g, nil, "A", "D"); !errors.Is(err, ucs.ErrCostsNil) {
		t.Errorf("nil costs: want ErrCostsNil, got %v", err)
	}
	if _, err := ucs.Search(g, ct, "missing", "D"); !errors.Is(err, ucs.ErrRootNotFound) {
		t.Errorf("missing root: want ErrRootNotFound, got %v", err)
	}
}

func TestSearch_MissingEdgeCostFailsFast(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	ct := core.NewCostTable() // no entry for A-B

	_, err := ucs.Search(g, ct, "A", "B")
	if !errors.Is(err, core.ErrMissingEdgeCost) {
		t.Errorf("missing cost: want core.ErrMissingEdgeCost, got %v", err)
	}
}

func TestSearch_SelfPath(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	res, err := ucs.Search(g, core.NewCostTable(), "A", "A")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found || !reflect.DeepEqual(res.Path, []string{"A"}) {
		t.Errorf("root==goal: got %v found=%v; want [A] true", res.Path, res.Found)
	}
	if res.TotalCost != 0 {
		t.Errorf("TotalCost = %v; want 0", res.TotalCost)
	}
}

func TestSearch_CheapestRoute(t *testing.T) {
	g, ct := buildWeightedDiamond()
	res, err := ucs.Search(g, ct, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found || !reflect.DeepEqual(res.Path, []string{"A", "B", "D"}) {
		t.Errorf("got %v found=%v; want [A B D] true", res.Path, res.Found)
	}
	if res.TotalCost != 2 {
		t.Errorf("TotalCost = %v; want 2", res.TotalCost)
	}
}

// TestSearch_LaterCheaperDiscovery verifies cost relaxation: the first
// discovery of a vertex is not final if a cheaper route arrives before it
// is popped.
func TestSearch_LaterCheaperDiscovery(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("C", "B")
	ct := core.NewCostTable()
	_ = ct.Set("A", "B", 10)
	_ = ct.Set("A", "C", 1)
	_ = ct.Set("C", "B", 1)

	res, err := ucs.Search(g, ct, "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Path, []string{"A", "C", "B"}) {
		t.Errorf("Path = %v; want [A C B]", res.Path)
	}
	if res.TotalCost != 2 {
		t.Errorf("TotalCost = %v; want 2", res.TotalCost)
	}
}

func TestSearch_UnitCostsMatchEdgeCount(t *testing.T) {
	g, _ := buildWeightedDiamond()
	ct := core.NewCostTable()
	for _, v := range g.Vertices() {
		for _, nbr := range g.NeighborIDs(v) {
			_ = ct.Set(v, nbr, 1)
		}
	}
	res, err := ucs.Search(g, ct, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Path) != 3 || res.TotalCost != 2 {
		t.Errorf("unit costs: path %v cost %v; want a 3-vertex path of cost 2", res.Path, res.TotalCost)
	}
}

func TestSearch_NoPath(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddVertex("C")
	ct := core.NewCostTable()
	_ = ct.Set("A", "B", 1)

	res, err := ucs.Search(g, ct, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if res.Found || res.Path != nil {
		t.Errorf("unreachable goal: got %v found=%v; want nil false", res.Path, res.Found)
	}
}

// TestSearch_OptimalOnRandomGraph verifies UCS optimality by exhaustive
// enumeration of all simple paths on a seeded random weighted graph.
func TestSearch_OptimalOnRandomGraph(t *testing.T) {
	g := core.NewGraph()
	ct := core.NewCostTable()
	r := rand.New(rand.NewSource(42))
	const n = 8
	addEdge := func(from, to string) {
		if from == to || g.HasEdge(from, to) {
			return
		}
		_ = g.AddEdge(from, to)
		_ = ct.Set(from, to, float64(1+r.Intn(9)))
	}
	for i := 1; i < n; i++ {
		addEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i))
	}
	for i := 0; i < 12; i++ {
		addEdge(fmt.Sprintf("V%d", r.Intn(n)), fmt.Sprintf("V%d", r.Intn(n)))
	}

	goal := fmt.Sprintf("V%d", n-1)
	res, err := ucs.Search(g, ct, "V0", goal)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found {
		t.Fatal("connected goal not found")
	}

	best := cheapestSimplePath(g, ct, "V0", goal)
	if res.TotalCost != best {
		t.Errorf("TotalCost = %v; brute-force cheapest is %v (path %v)", res.TotalCost, best, res.Path)
	}
}

// cheapestSimplePath exhaustively enumerates simple paths and returns the
// minimum summed cost, or -1 when no path exists.
func cheapestSimplePath(g *core.Graph, ct *core.CostTable, from, to string) float64 {
	best := -1.0
	onPath := map[string]bool{from: true}
	var walk func(v string, cost float64)
	walk = func(v string, cost float64) {
		if v == to {
			if best < 0 || cost < best {
				best = cost
			}

			return
		}
		for _, nbr := range g.NeighborIDs(v) {
			if onPath[nbr] {
				continue
			}
			w, _ := ct.Cost(v, nbr)
			onPath[nbr] = true
			walk(nbr, cost+w)
			delete(onPath, nbr)
		}
	}
	walk(from, 0)

	return best
}

func TestSearch_VisitorSeesProbesAndSolution(t *testing.T) {
	g, ct := buildWeightedDiamond()
	var rec trace.Recorder
	res, err := ucs.Search(g, ct, "A", "D", ucs.WithVisitor(&rec))
	if err != nil {
		t.Fatal(err)
	}

	var probes, explores, solutions int
	for _, s := range rec.Steps() {
		switch s.Hint {
		case trace.HintProbe:
			probes++
			if len(s.Path) != 2 {
				t.Errorf("probe path %v; want a single edge", s.Path)
			}
		case trace.HintExplore:
			explores++
		case trace.HintSolution:
			solutions++
		}
	}
	if explores != len(res.Expanded) {
		t.Errorf("explore steps = %d; want %d", explores, len(res.Expanded))
	}
	if probes == 0 {
		t.Error("no probe steps recorded")
	}
	if solutions != 1 {
		t.Errorf("solution steps = %d; want 1", solutions)
	}
}

func TestSearch_Determinism(t *testing.T) {
	g, ct := buildWeightedDiamond()
	first, err := ucs.Search(g, ct, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, _ := ucs.Search(g, ct, "A", "D")
		if !reflect.DeepEqual(first.Path, again.Path) || !reflect.DeepEqual(first.Expanded, again.Expanded) {
			t.Fatalf("run %d diverged", i)
		}
	}
}

func TestSearch_Cancellation(t *testing.T) {
	g, ct := buildWeightedDiamond()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ucs.Search(g, ct, "A", "D", ucs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancellation: want context.Canceled, got %v", err)
	}
}
