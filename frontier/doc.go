// Package frontier provides the working-set data structures behind each
// search discipline: a LIFO Stack for depth-first variants, a FIFO Queue for
// breadth-first and bidirectional search, and a cost-ordered CostQueue for
// uniform-cost search.
//
// Stack and Queue track membership alongside order, because the search loops
// expand only neighbors that are neither visited nor already pending, a set
// difference that needs O(1) Contains on the frontier.
//
// CostQueue is a lazy-decrease-key min-heap built on container/heap: a
// cheaper rediscovery pushes a duplicate entry rather than re-keying, and
// the stale entry is discarded by the caller's visited check when popped.
// Equal costs are broken by vertex ID so pop order is deterministic.
//
// None of the types are safe for concurrent use; each search constructs its
// own frontier per invocation.
package frontier
