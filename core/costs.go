package core

import "fmt"

// CostTable maps directed edges to non-negative traversal costs.
// Keys use the "from-to" encoding produced by EdgeKey, matching the
// edge_costs section of graph-definition files.
//
// A missing entry is a configuration error surfaced by Cost, never a default:
// the weighted search must know the price of every edge it walks.
type CostTable struct {
	costs map[string]float64
}

// NewCostTable creates an empty CostTable.
func NewCostTable() *CostTable {
	return &CostTable{costs: make(map[string]float64)}
}

// EdgeKey encodes the directed edge from→to as a CostTable key.
func EdgeKey(from, to string) string {
	return from + "-" + to
}

// Set records the cost of the directed edge from→to, replacing any previous
// entry. Returns ErrNegativeCost for negative weights; zero is allowed.
func (t *CostTable) Set(from, to string, cost float64) error {
	if cost < 0 {
		return fmt.Errorf("%w: edge %s→%s cost=%v", ErrNegativeCost, from, to, cost)
	}
	t.costs[EdgeKey(from, to)] = cost

	return nil
}

// Cost returns the recorded cost of the directed edge from→to.
// Returns ErrMissingEdgeCost if no entry exists.
func (t *CostTable) Cost(from, to string) (float64, error) {
	c, ok := t.costs[EdgeKey(from, to)]
	if !ok {
		return 0, fmt.Errorf("%w: edge %q", ErrMissingEdgeCost, EdgeKey(from, to))
	}

	return c, nil
}

// Has reports whether an entry exists for the directed edge from→to.
func (t *CostTable) Has(from, to string) bool {
	_, ok := t.costs[EdgeKey(from, to)]

	return ok
}

// Len returns the number of recorded edges.
func (t *CostTable) Len() int { return len(t.costs) }
