// Command usearch loads a graph-definition file and runs one of the
// uninformed search strategies over it, tracing the exploration to the
// terminal. With -watch it re-runs the search whenever the definition file
// changes on disk.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"

	"github.com/lowkeylab/usearch/bfs"
	"github.com/lowkeylab/usearch/bidi"
	"github.com/lowkeylab/usearch/config"
	"github.com/lowkeylab/usearch/dfs"
	"github.com/lowkeylab/usearch/dot"
	"github.com/lowkeylab/usearch/trace"
	"github.com/lowkeylab/usearch/ucs"
)

var level = new(slog.LevelVar)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func main() {
	cfgPath := flag.String("config", "graph-config.json", "graph definition file (.json, .yaml)")
	algo := flag.String("algo", "bfs", "search strategy: dfs|bfs|dls|ids|ucs|bidi")
	watch := flag.Bool("watch", false, "re-run the search when the definition file changes")
	dotOut := flag.String("dot", "", "write a DOT render of the graph and found path to this file")
	imgOut := flag.String("img", "", "write an image render (format from extension: .svg, .png) to this file")
	quiet := flag.Bool("quiet", false, "suppress per-step exploration output")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		level.Set(slog.LevelDebug)
	}

	loader, err := config.NewLoader(*cfgPath)
	if err != nil {
		slog.Error("load graph definition", "path", *cfgPath, "err", err)
		os.Exit(1)
	}

	run := func(spec *config.GraphSpec) {
		if err := runSearch(*algo, spec, *quiet, *dotOut, *imgOut); err != nil {
			slog.Error("search failed", "algo", *algo, "err", err)
			if !*watch {
				os.Exit(1)
			}
		}
	}
	run(loader.Spec())

	if !*watch {
		return
	}

	loader.OnChange(func(spec *config.GraphSpec) {
		slog.Info("definition changed, re-running", "path", *cfgPath)
		run(spec)
	})
	stop, err := loader.Watch()
	if err != nil {
		slog.Error("watch definition", "path", *cfgPath, "err", err)
		os.Exit(1)
	}
	defer stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}

// runSearch executes the chosen strategy over the loaded definition and
// reports the outcome. An unreachable goal is reported, not failed on.
func runSearch(algo string, spec *config.GraphSpec, quiet bool, dotOut, imgOut string) error {
	g := spec.Graph()
	visitor := trace.Console(os.Stdout)
	if quiet {
		visitor = trace.Nop()
	}

	slog.Debug("running search",
		"algo", algo, "root", spec.Root, "goal", spec.Goal,
		"vertices", g.VertexCount(), "edges", g.EdgeCount())

	var (
		path  []string
		found bool
		cost  float64
		err   error
	)
	switch algo {
	case "dfs":
		var res *dfs.Result
		res, err = dfs.Search(g, spec.Root, spec.Goal, dfs.WithVisitor(visitor))
		if res != nil {
			path, found = res.Path, res.Found
		}
	case "bfs":
		var res *bfs.Result
		res, err = bfs.Search(g, spec.Root, spec.Goal, bfs.WithVisitor(visitor))
		if res != nil {
			path, found = res.Path, res.Found
		}
	case "dls":
		var res *dfs.Result
		res, err = dfs.SearchLimited(g, spec.Root, spec.Goal, spec.DepthLimit, dfs.WithVisitor(visitor))
		if res != nil {
			path, found = res.Path, res.Found
		}
	case "ids":
		var res *dfs.Result
		res, err = dfs.SearchDeepening(g, spec.Root, spec.Goal, spec.MaxDepth, dfs.WithVisitor(visitor))
		if res != nil {
			path, found = res.Path, res.Found
		}
	case "ucs":
		var res *ucs.Result
		res, err = ucs.Search(g, spec.Costs(), spec.Root, spec.Goal, ucs.WithVisitor(visitor))
		if res != nil {
			path, found, cost = res.Path, res.Found, res.TotalCost
		}
	case "bidi":
		var res *bidi.Result
		res, err = bidi.Search(g, spec.Root, spec.Goal, bidi.WithVisitor(visitor))
		if res != nil {
			path, found = res.Path, res.Found
		}
	default:
		return fmt.Errorf("unknown strategy %q", algo)
	}
	if err != nil {
		return err
	}

	if !found {
		color.New(color.FgRed).Printf("[%s] no path from %s to %s\n", algo, spec.Root, spec.Goal)

		return nil
	}

	painter := color.New(color.FgGreen, color.Bold)
	if algo == "ucs" {
		painter.Printf("[%s] %s (cost %v)\n", algo, strings.Join(path, " -> "), cost)
	} else {
		painter.Printf("[%s] %s\n", algo, strings.Join(path, " -> "))
	}

	if dotOut != "" || imgOut != "" {
		data, err := dot.Marshal(g, path)
		if err != nil {
			return err
		}
		if dotOut != "" {
			if err := os.WriteFile(dotOut, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", dotOut, err)
			}
			slog.Info("wrote DOT render", "path", dotOut)
		}
		if imgOut != "" {
			format := strings.TrimPrefix(filepath.Ext(imgOut), ".")
			if format == "" {
				return fmt.Errorf("image output %q has no format extension", imgOut)
			}
			if err := dot.WriteImage(data, format, imgOut); err != nil {
				return err
			}
			slog.Info("wrote image render", "path", imgOut)
		}
	}

	return nil
}
