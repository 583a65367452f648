// Package trace defines the optional path-visitor hook the search strategies
// notify as they run. Visitors exist for visualization and diagnostics; the
// searches never read anything back from them, and a visitor cannot abort or
// alter a search.
//
// Each notification carries the path-so-far from the root to the vertex the
// strategy just acted on, plus a PaintHint describing how a renderer would
// color that step. The hint palette mirrors the classic canvas animation
// these searches are usually demonstrated with.
package trace

import "sync"

// PaintHint tells a renderer how to draw a notified path.
type PaintHint struct {
	Color string
	Width int
}

// The hint palette used by the search strategies.
var (
	// HintExplore marks the path to a vertex just removed from the frontier.
	HintExplore = PaintHint{Color: "orange", Width: 4}

	// HintProbe marks a single edge being considered for relaxation.
	HintProbe = PaintHint{Color: "yellow", Width: 2}

	// HintSolution marks the final root-to-goal path.
	HintSolution = PaintHint{Color: "green", Width: 8}

	// HintReset marks a previously painted path being cleared back to the
	// base style. The searches never emit it; renderers that erase between
	// steps use it when replaying recorded explorations.
	HintReset = PaintHint{Color: "white", Width: 1}
)

// Visitor observes search progress. VisitPath is called synchronously from
// the search loop; implementations that block will stall the search, which
// is intentional: animation delays live in the visitor, not the core.
//
// Implementations must not retain path: strategies may reuse the backing
// array between notifications.
type Visitor interface {
	VisitPath(path []string, hint PaintHint)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(path []string, hint PaintHint)

// VisitPath implements Visitor.
func (f VisitorFunc) VisitPath(path []string, hint PaintHint) { f(path, hint) }

// Nop returns a Visitor that ignores every notification.
func Nop() Visitor { return VisitorFunc(func([]string, PaintHint) {}) }

// Multi fans every notification out to each of vs in order.
func Multi(vs ...Visitor) Visitor {
	return VisitorFunc(func(path []string, hint PaintHint) {
		for _, v := range vs {
			v.VisitPath(path, hint)
		}
	})
}

// Step is one recorded notification.
type Step struct {
	// Handle is a monotonically increasing identifier for the drawn step,
	// the way a canvas renderer hands back element IDs.
	Handle int
	Path   []string
	Hint   PaintHint
}

// Recorder is a Visitor that retains every notification. Useful in tests and
// for replaying an exploration after the search returns.
//
// A Recorder may be shared by concurrent searches; recorded steps are safe
// to read once the searches have returned.
type Recorder struct {
	mu    sync.Mutex
	steps []Step
	next  int
}

// VisitPath implements Visitor. The path is copied.
func (r *Recorder) VisitPath(path []string, hint PaintHint) {
	cp := make([]string, len(path))
	copy(cp, path)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, Step{Handle: r.next, Path: cp, Hint: hint})
	r.next++
}

// Steps returns the recorded notifications in arrival order.
func (r *Recorder) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Step, len(r.steps))
	copy(out, r.steps)

	return out
}

// Handles returns the handle IDs of every recorded step.
func (r *Recorder) Handles() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	hs := make([]int, len(r.steps))
	for i, s := range r.steps {
		hs[i] = s.Handle
	}

	return hs
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.steps)
}
