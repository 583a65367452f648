// Package dot renders a core.Graph, and optionally a found path, as
// Graphviz DOT text and as images. The search strategies never import this
// package; it sits behind the trace hook on the rendering side.
//
// Output is deterministic: vertices and edges are emitted in sorted order,
// so identical graphs marshal to identical bytes.
package dot

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"github.com/goccy/go-graphviz"

	"github.com/lowkeylab/usearch/core"
)

const tmplGraph = `digraph usearch {
	rankdir="LR";
	fontname="Arial";
	node [shape="circle" style="filled" fillcolor="white" fontname="Verdana"];
{{range .Nodes}}	{{printf "%q [ fillcolor=%q ]" .ID .Fill}}
{{end}}{{range .Edges}}	{{printf "%q -> %q [ color=%q penwidth=%q ]" .From .To .Color .Width}}
{{end}}}
`

var graphTmpl = template.Must(template.New("graph").Parse(tmplGraph))

type nodeView struct {
	ID   string
	Fill string
}

type edgeView struct {
	From  string
	To    string
	Color string
	Width string
}

type graphView struct {
	Nodes []nodeView
	Edges []edgeView
}

// Marshal renders g as DOT text. Vertices and edges on path are highlighted
// green with heavier pen width; pass a nil or empty path for a plain render.
func Marshal(g *core.Graph, path []string) ([]byte, error) {
	onPath := make(map[string]bool, len(path))
	pathEdge := make(map[string]bool, len(path))
	for i, v := range path {
		onPath[v] = true
		if i > 0 {
			pathEdge[core.EdgeKey(path[i-1], v)] = true
		}
	}

	var view graphView
	for _, v := range g.Vertices() {
		fill := "white"
		if onPath[v] {
			fill = "green"
		}
		view.Nodes = append(view.Nodes, nodeView{ID: v, Fill: fill})
		for _, nbr := range g.NeighborIDs(v) {
			e := edgeView{From: v, To: nbr, Color: "black", Width: "1.0"}
			if pathEdge[core.EdgeKey(v, nbr)] {
				e.Color = "green"
				e.Width = "3.0"
			}
			view.Edges = append(view.Edges, e)
		}
	}
	sort.Slice(view.Edges, func(i, j int) bool {
		if view.Edges[i].From != view.Edges[j].From {
			return view.Edges[i].From < view.Edges[j].From
		}

		return view.Edges[i].To < view.Edges[j].To
	})

	var buf bytes.Buffer
	if err := graphTmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("dot: render template: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteImage renders DOT bytes to outPath in the given format (e.g. "svg",
// "png") using the embedded graphviz layout engine.
func WriteImage(dot []byte, format, outPath string) error {
	gv := graphviz.New()
	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		return fmt.Errorf("dot: parse: %w", err)
	}
	defer func() {
		_ = graph.Close()
		_ = gv.Close()
	}()

	if err := gv.RenderFilename(graph, graphviz.Format(format), outPath); err != nil {
		return fmt.Errorf("dot: render %s: %w", outPath, err)
	}

	return nil
}
