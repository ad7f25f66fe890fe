// Command bench times a chain-of-bindings propagation, the same shape
// cmd/benchmark measures for the alien/rocket/dumbdumb signal
// implementations, applied here to the engine+reactor property graph.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/coreflux/reactor/engine"
	"github.com/coreflux/reactor/reactor"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	widths = []int{1, 10, 100, 1_000}
	depths = []int{1, 10, 100, 1_000}
	iters  = 100
)

func main() {
	flag.Parse()

	tbl := table.NewWriter()
	tbl.SetTitle("Property Bindings")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range widths {
		for _, d := range depths {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			g := engine.NewGraph()
			src := reactor.NewProperty(g, 1)

			var leaves []*reactor.Property[int]
			for i := 0; i < w; i++ {
				prev := src
				var last *reactor.Property[int]
				for j := 0; j < d; j++ {
					p := reactor.NewProperty(g, 0)
					dep := prev
					p.SetBinding(func() (int, error) {
						return dep.Value() + 1, nil
					})
					prev = p
					last = p
				}
				last.OnChange(func(old, new int) {})
				leaves = append(leaves, last)
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.SetValue(src.Value() + 1)
				for _, leaf := range leaves {
					leaf.Value()
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, d),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	tbl.Render()
}
