// Package bfs provides option and error definitions for breadth-first
// goal search over a core.Graph.
package bfs

import (
	"context"
	"errors"

	"github.com/lowkeylab/usearch/trace"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrRootNotFound is returned when the root ID is absent from the graph.
	ErrRootNotFound = errors.New("bfs: root vertex not found")
)

// Option configures Search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and hooks customizing a Search call.
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

// Result holds the outcome of a breadth-first goal search.
//
// Found distinguishes "no path" from success; in particular the root==goal
// case succeeds with the single-element path [root], which an empty-slice
// convention could not tell apart from failure.
type Result struct {
	// Path is the root-to-goal path, nil when Found is false.
	// Shortest by edge count: all vertices at distance k are expanded
	// before any at distance k+1.
	Path []string

	// Found reports whether the goal was reached.
	Found bool

	// Expanded lists vertices in the order they were removed from the
	// frontier and processed.
	Expanded []string

	// Parent maps each reached vertex to its predecessor in the search
	// tree. The root has no entry.
	Parent map[string]string
}
