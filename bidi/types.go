// Package bidi provides option and error definitions for bidirectional
// goal search over a core.Graph.
package bidi

import (
	"context"
	"errors"

	"github.com/lowkeylab/usearch/trace"
)

// Sentinel errors for bidirectional search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bidi: graph is nil")

	// ErrRootNotFound is returned when the root ID is absent from the graph.
	ErrRootNotFound = errors.New("bidi: root vertex not found")
)

// Option configures Search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and hooks customizing a Search call.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per loop iteration.
	Ctx context.Context

	// Visitor observes the path-so-far of each expanded vertex, from
	// whichever side expanded it, and the joined path on success.
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

// Result holds the outcome of a bidirectional goal search.
type Result struct {
	// Path is the joined root-to-goal path, nil when Found is false.
	Path []string

	// Found reports whether the two explorations met.
	Found bool

	// Meeting is the vertex at which the two search trees met: the first
	// vertex one side discovered as a neighbor after the other side had
	// already claimed it. Empty when Found is false.
	Meeting string

	// ExpandedRoot lists vertices expanded by the root-side search, in
	// order. ExpandedGoal is the goal side's counterpart.
	ExpandedRoot []string
	ExpandedGoal []string
}
