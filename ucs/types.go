// Package ucs provides option and error definitions for uniform-cost
// search over a core.Graph and core.CostTable.
package ucs

import (
	"context"
	"errors"

	"github.com/lowkeylab/usearch/trace"
)

// Sentinel errors for UCS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("ucs: graph is nil")

	// ErrCostsNil is returned if a nil cost table is passed.
	ErrCostsNil = errors.New("ucs: cost table is nil")

	// ErrRootNotFound is returned when the root ID is absent from the graph.
	ErrRootNotFound = errors.New("ucs: root vertex not found")
)

// Option configures Search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and hooks customizing a Search call.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per loop iteration.
	Ctx context.Context

	// Visitor observes exploration order: the path-so-far on every pop,
	// each edge relaxation probe, and the solution path on success.
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

// Result holds the outcome of a uniform-cost search.
type Result struct {
	// Path is the cheapest root-to-goal path, nil when Found is false.
	Path []string

	// Found reports whether the goal was reached.
	Found bool

	// TotalCost is the summed edge cost of Path; 0 when Found is false.
	TotalCost float64

	// Expanded lists vertices in the order their cost was finalized.
	Expanded []string

	// Parent maps each reached vertex to its predecessor on the cheapest
	// known path. The root has no entry.
	Parent map[string]string

	// Cost maps each reached vertex to its cheapest known path cost from
	// the root. Vertices never reached have no entry.
	Cost map[string]float64
}
