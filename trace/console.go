package trace

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// consoleVisitor paints notified paths to a terminal, one line per step,
// mapping hint colors to ANSI attributes.
type consoleVisitor struct {
	w       io.Writer
	explore *color.Color
	probe   *color.Color
	done    *color.Color
	plain   *color.Color
}

// Console returns a Visitor that writes each notified path to w as a colored
// "A -> B -> C" line. Solution paths are bolded. Color output degrades to
// plain text when w is not a terminal (fatih/color handles the detection).
func Console(w io.Writer) Visitor {
	return &consoleVisitor{
		w:       w,
		explore: color.New(color.FgYellow),
		probe:   color.New(color.FgHiBlack),
		done:    color.New(color.FgGreen, color.Bold),
		plain:   color.New(),
	}
}

// VisitPath implements Visitor.
func (c *consoleVisitor) VisitPath(path []string, hint PaintHint) {
	if len(path) == 0 {
		return
	}
	painter := c.plain
	switch hint {
	case HintExplore:
		painter = c.explore
	case HintProbe:
		painter = c.probe
	case HintSolution:
		painter = c.done
	}
	// rendering failures are outside the search's error domain; drop them
	_, _ = painter.Fprintln(c.w, strings.Join(path, " -> "))
}
