// Package dfs provides option and error definitions shared by the
// depth-first search family: plain DFS, depth-limited search, and
// iterative-deepening search.
package dfs

import (
	"context"
	"errors"

	"github.com/lowkeylab/usearch/trace"
)

// Sentinel errors for the DFS family.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrRootNotFound is returned when the root ID is absent from the graph.
	ErrRootNotFound = errors.New("dfs: root vertex not found")

	// ErrInvalidDepthLimit is returned by SearchLimited for limits below 1.
	ErrInvalidDepthLimit = errors.New("dfs: depth limit must be at least 1")

	// ErrInvalidMaxDepth is returned by SearchDeepening for bounds below 1.
	ErrInvalidMaxDepth = errors.New("dfs: max depth must be at least 1")
)

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and hooks customizing a search call.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per loop iteration.
	Ctx context.Context

	// Visitor observes the path-so-far at each expansion and on success.
	Visitor trace.Visitor
}

// DefaultOptions returns Options with a background context and a no-op
// visitor.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Visitor: trace.Nop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVisitor registers a path visitor notified as the search progresses.
func WithVisitor(v trace.Visitor) Option {
	return func(o *Options) {
		if v != nil {
			o.Visitor = v
		}
	}
}

// Result holds the outcome of a depth-first goal search.
type Result struct {
	// Path is the root-to-goal path, nil when Found is false.
	Path []string

	// Found reports whether the goal was reached.
	Found bool

	// Expanded lists vertices in the order they were removed from the
	// frontier and processed.
	Expanded []string

	// Parent maps each reached vertex to its predecessor in the search
	// tree. The root has no entry.
	Parent map[string]string

	// Depth maps each reached vertex to its depth in the search tree
	// (root = 0). Populated by SearchLimited and SearchDeepening only;
	// nil for plain Search.
	Depth map[string]int
}
