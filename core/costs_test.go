package core_test

import (
	"errors"
	"testing"

	"github.com/lowkeylab/usearch/core"
)

func TestCostTable_SetAndCost(t *testing.T) {
	ct := core.NewCostTable()
	if err := ct.Set("A", "B", 2.5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	c, err := ct.Cost("A", "B")
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if c != 2.5 {
		t.Errorf("Cost(A,B) = %v; want 2.5", c)
	}
	// zero cost is allowed
	if err := ct.Set("B", "C", 0); err != nil {
		t.Errorf("Set zero cost: %v", err)
	}
}

func TestCostTable_MissingEntryFailsFast(t *testing.T) {
	ct := core.NewCostTable()
	_, err := ct.Cost("A", "B")
	if !errors.Is(err, core.ErrMissingEdgeCost) {
		t.Errorf("missing entry: want ErrMissingEdgeCost, got %v", err)
	}
}

func TestCostTable_NegativeRejected(t *testing.T) {
	ct := core.NewCostTable()
	if err := ct.Set("A", "B", -1); !errors.Is(err, core.ErrNegativeCost) {
		t.Errorf("negative cost: want ErrNegativeCost, got %v", err)
	}
	if ct.Has("A", "B") {
		t.Error("rejected entry was stored")
	}
}

func TestEdgeKey(t *testing.T) {
	if k := core.EdgeKey("A", "B"); k != "A-B" {
		t.Errorf("EdgeKey = %q; want A-B", k)
	}
}
