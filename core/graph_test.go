package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lowkeylab/usearch/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Errorf("empty ID: want ErrEmptyVertexID, got %v", err)
	}
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex(A): %v", err)
	}
	// idempotent
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex(A) again: %v", err)
	}
	if !g.HasVertex("A") {
		t.Error("HasVertex(A) = false after add")
	}
	if g.VertexCount() != 1 {
		t.Errorf("VertexCount = %d; want 1", g.VertexCount())
	}
}

func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("", "B"); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Errorf("empty from: want ErrEmptyVertexID, got %v", err)
	}
	if err := g.AddEdge("A", "B"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	// endpoints materialize as vertices
	if !g.HasVertex("A") || !g.HasVertex("B") {
		t.Error("AddEdge did not materialize endpoints")
	}
	// directed: A→B only
	if !g.HasEdge("A", "B") {
		t.Error("HasEdge(A,B) = false")
	}
	if g.HasEdge("B", "A") {
		t.Error("HasEdge(B,A) = true; edges are directed")
	}
	// duplicates impossible
	_ = g.AddEdge("A", "B")
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d; want 1", g.EdgeCount())
	}
}

func TestGraph_SortedEnumeration(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("B", "Z")
	_ = g.AddEdge("B", "A")
	_ = g.AddEdge("B", "M")
	_ = g.AddVertex("C")

	if got, want := g.Vertices(), []string{"A", "B", "C", "M", "Z"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Vertices = %v; want %v", got, want)
	}
	if got, want := g.NeighborIDs("B"), []string{"A", "M", "Z"}; !reflect.DeepEqual(got, want) {
		t.Errorf("NeighborIDs(B) = %v; want %v", got, want)
	}
}

func TestGraph_MissingVertexTolerance(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	// unknown IDs yield empty neighbor sets, not errors
	if nbrs := g.NeighborIDs("ghost"); len(nbrs) != 0 {
		t.Errorf("NeighborIDs(ghost) = %v; want empty", nbrs)
	}
}

func TestGraph_Clone(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	c := g.Clone()
	_ = c.AddEdge("B", "C")

	if g.HasVertex("C") {
		t.Error("mutating clone leaked into original")
	}
	if !c.HasEdge("A", "B") {
		t.Error("clone lost edge A→B")
	}
}

func TestGraph_ConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	done := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = g.NeighborIDs("A")
				_ = g.Vertices()
			}
			done <- struct{}{}
		}()
	}
	<-done
	<-done
}
