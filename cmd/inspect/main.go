// Command inspect builds a small demo property graph and prints its
// current state as a table, exercising reactor.DumpGraph the way
// cmd/codegen exercises the template package: as a thin cli.Command
// wrapper around a library call.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/coreflux/reactor/engine"
	"github.com/coreflux/reactor/reactor"
	"github.com/urfave/cli/v3"
)

const widthKey = "width"

func main() {
	cmd := &cli.Command{
		Name:  "inspect",
		Usage: "Build a demo property graph and dump its state",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  widthKey,
				Usage: "Number of dependent properties bound directly to the root",
				Value: 3,
			},
		},
		Action: inspect,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func inspect(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("inspect started")
	defer func() {
		log.Printf("inspect finished in %v", time.Since(start))
	}()

	width := int(cmd.Uint(widthKey))

	g := engine.NewGraph()
	root := reactor.NewProperty(g, 1)

	named := []reactor.Named{{Label: "root", B: root}}
	for i := 0; i < width; i++ {
		p := reactor.NewProperty(g, 0)
		p.SetBinding(func() (int, error) {
			return root.Value() * 2, nil
		})
		named = append(named, reactor.Named{Label: "dependent", B: p})
	}

	root.SetValue(root.Value() + 1)
	reactor.DumpGraph(os.Stdout, named)
	return nil
}
