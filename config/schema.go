// Package config loads graph-definition files for the search strategies:
// the root and goal vertices, the adjacency structure, optional depth
// bounds, optional canvas positions for renderers, and optional edge costs
// keyed "from-to".
//
// Files may be JSON or YAML with identical shape. Vertex names in the file
// may carry stray whitespace; trimming is this package's responsibility and
// happens during validation, so the core never sees padded IDs.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lowkeylab/usearch/core"
)

// Sentinel errors for graph-definition validation.
var (
	// ErrNoRoot indicates a definition without a root vertex.
	ErrNoRoot = errors.New("config: root vertex missing")

	// ErrNoGoal indicates a definition without a goal vertex.
	ErrNoGoal = errors.New("config: goal vertex missing")

	// ErrBadDepthLimit indicates a non-positive depth_limit.
	ErrBadDepthLimit = errors.New("config: depth_limit must be at least 1")

	// ErrBadMaxDepth indicates a non-positive max_depth.
	ErrBadMaxDepth = errors.New("config: max_depth must be at least 1")

	// ErrUnknownFormat indicates a file extension that is neither JSON nor YAML.
	ErrUnknownFormat = errors.New("config: unknown file format")
)

// Position is an (x, y) canvas coordinate for a vertex. The search
// strategies never read positions; they ride along for renderers.
type Position struct {
	X float64
	Y float64
}

// GraphSpec is a parsed graph-definition file.
//
// Adjacency lists vertices referenced as neighbors but absent as keys are
// tolerated: Graph materializes them with empty neighbor sets, matching the
// core's documented policy.
type GraphSpec struct {
	Root       string               `json:"root" yaml:"root"`
	Goal       string               `json:"goal" yaml:"goal"`
	DepthLimit int                  `json:"depth_limit,omitempty" yaml:"depth_limit,omitempty"`
	MaxDepth   int                  `json:"max_depth,omitempty" yaml:"max_depth,omitempty"`
	Adjacency  map[string][]string  `json:"graph" yaml:"graph"`
	Positions  map[string][]float64 `json:"node_positions,omitempty" yaml:"node_positions,omitempty"`
	EdgeCosts  map[string]float64   `json:"edge_costs,omitempty" yaml:"edge_costs,omitempty"`
}

// normalize trims whitespace from every vertex name in place: root, goal,
// adjacency keys and values, position keys, and edge-cost keys.
func (s *GraphSpec) normalize() {
	s.Root = strings.TrimSpace(s.Root)
	s.Goal = strings.TrimSpace(s.Goal)

	adj := make(map[string][]string, len(s.Adjacency))
	for v, nbrs := range s.Adjacency {
		trimmed := make([]string, 0, len(nbrs))
		for _, n := range nbrs {
			if n = strings.TrimSpace(n); n != "" {
				trimmed = append(trimmed, n)
			}
		}
		adj[strings.TrimSpace(v)] = trimmed
	}
	s.Adjacency = adj

	if s.Positions != nil {
		pos := make(map[string][]float64, len(s.Positions))
		for v, p := range s.Positions {
			pos[strings.TrimSpace(v)] = p
		}
		s.Positions = pos
	}
	if s.EdgeCosts != nil {
		costs := make(map[string]float64, len(s.EdgeCosts))
		for k, c := range s.EdgeCosts {
			costs[strings.TrimSpace(k)] = c
		}
		s.EdgeCosts = costs
	}
}

// validate checks the normalized spec. Depth bounds are optional; when
// present they must be usable by the corresponding search, so zero means
// "not set" and negatives are rejected outright.
func (s *GraphSpec) validate() error {
	if s.Root == "" {
		return ErrNoRoot
	}
	if s.Goal == "" {
		return ErrNoGoal
	}
	if s.DepthLimit < 0 {
		return fmt.Errorf("%w: got %d", ErrBadDepthLimit, s.DepthLimit)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("%w: got %d", ErrBadMaxDepth, s.MaxDepth)
	}
	for key, c := range s.EdgeCosts {
		if c < 0 {
			return fmt.Errorf("%w: edge %q cost=%v", core.ErrNegativeCost, key, c)
		}
	}

	return nil
}

// Graph builds the core.Graph described by the spec. Neighbors without
// their own adjacency entry become vertices with empty neighbor sets.
func (s *GraphSpec) Graph() *core.Graph {
	g := core.NewGraph()
	for v, nbrs := range s.Adjacency {
		_ = g.AddVertex(v)
		for _, n := range nbrs {
			_ = g.AddEdge(v, n)
		}
	}

	return g
}

// Costs builds the core.CostTable described by the spec's edge_costs
// section. The table is empty when the section is absent.
func (s *GraphSpec) Costs() *core.CostTable {
	t := core.NewCostTable()
	for key, c := range s.EdgeCosts {
		from, to, ok := strings.Cut(key, "-")
		if !ok {
			continue
		}
		_ = t.Set(strings.TrimSpace(from), strings.TrimSpace(to), c)
	}

	return t
}

// HasCosts reports whether the definition carries an edge_costs section.
func (s *GraphSpec) HasCosts() bool { return len(s.EdgeCosts) > 0 }

// Position returns the canvas coordinate recorded for v, if any.
func (s *GraphSpec) Position(v string) (Position, bool) {
	p, ok := s.Positions[v]
	if !ok || len(p) < 2 {
		return Position{}, false
	}

	return Position{X: p[0], Y: p[1]}, true
}
