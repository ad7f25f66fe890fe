package reactor

import (
	"io"

	"github.com/coreflux/reactor/engine"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// Named pairs a façade with a human-readable label purely for
// diagnostics; the engine itself has no concept of property names.
type Named struct {
	Label string
	B     Bindable
}

func (n Named) cell() *engine.Cell { return n.B.cell() }
func (n Named) Name() string       { return n.Label }

// DumpGraph renders a table of the given properties' current state —
// name, whether it has a binding, whether it is currently dirty, and
// any recorded BindingError — to w. Grounded on the table layout in
// cmd/benchmark_reactively/main.go.
func DumpGraph(w io.Writer, props []Named) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"property", "bound", "dirty", "observers", "error"})

	for _, p := range props {
		c := p.cell()
		errCol := "-"
		if berr := c.Err(); berr != nil {
			errCol = berr.Kind.String() + ": " + berr.Description
		}
		table.Append([]string{
			p.Name(),
			yesNo(c.HasBinding()),
			yesNo(c.IsDirty()),
			humanize.Comma(int64(c.ObserverCount())),
			errCol,
		})
	}
	table.Render()
}

// Explain renders a human-readable incident report for a property
// whose binding currently holds a binding-loop error. It returns "" if
// b has no error or an error of another kind.
func Explain(name string, b Bindable) string {
	c := b.cell()
	berr := c.Err()
	if berr == nil || berr.Kind != engine.KindBindingLoop {
		return ""
	}
	loc := ""
	if bd := c.Binding(); bd != nil {
		loc = bd.SourceLocation().String()
	}
	return BindingLoopReport(name, loc, berr.Description)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
