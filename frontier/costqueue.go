package frontier

import "container/heap"

// Item is a (cost, vertex) pair pending in a CostQueue.
type Item struct {
	ID   string
	Cost float64
}

// CostQueue is a min-heap frontier ordered by accumulated path cost,
// with vertex ID as the tie-break. Construct with NewCostQueue.
//
// Duplicate entries for one vertex at different costs are expected: the
// cheapest surfaces first and later, staler ones must be skipped by the
// caller's visited check.
type CostQueue struct {
	h itemHeap
}

// NewCostQueue creates an empty CostQueue with capacity for hint items.
func NewCostQueue(hint int) *CostQueue {
	cq := &CostQueue{h: make(itemHeap, 0, hint)}
	heap.Init(&cq.h)

	return cq
}

// Push adds v with the given accumulated cost.
func (cq *CostQueue) Push(v string, cost float64) {
	heap.Push(&cq.h, Item{ID: v, Cost: cost})
}

// Pop removes and returns the minimum-cost item.
// The second result is false when the queue is empty.
func (cq *CostQueue) Pop() (Item, bool) {
	if cq.h.Len() == 0 {
		return Item{}, false
	}

	return heap.Pop(&cq.h).(Item), true
}

// Len returns the number of pending entries, counting duplicates.
func (cq *CostQueue) Len() int { return cq.h.Len() }

// itemHeap implements heap.Interface ordered by (Cost, ID) ascending.
type itemHeap []Item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].Cost != h[j].Cost {
		return h[i].Cost < h[j].Cost
	}

	return h[i].ID < h[j].ID
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(Item)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
