package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopgraph/bfs"
	"github.com/katalvlaran/hopgraph/core"
)

// demoEdges is the sample network: two routes from A to E, one of them a hop shorter.
//
//	A ──▶ C ──▶ E
//	│     ▲
//	▼     │
//	B ────┘        D (isolated)
var demoEdges = []struct {
	from, to string
	payload  []int
}{
	{"A", "C", []int{10, 5}},
	{"B", "C", []int{3, 2}},
	{"A", "B", []int{1, 2}},
	{"C", "E", []int{1, 2}},
}

func newDemoCmd(newLogger func(*cobra.Command) *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in five-vertex directed sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, newLogger(cmd))
		},
	}
}

func runDemo(cmd *cobra.Command, logger *slog.Logger) error {
	g := core.NewGraph[string, []int](core.WithDirected(true), core.WithLogger(logger))

	handles := make(map[string]*core.Vertex[string])
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		handles[name] = g.InsertVertex(name)
	}
	for _, e := range demoEdges {
		if _, err := g.InsertEdge(handles[e.from], handles[e.to], e.payload); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for _, q := range [][2]string{{"A", "E"}, {"D", "A"}, {"A", "A"}} {
		res, err := bfs.ShortestPath(g, handles[q[0]], handles[q[1]], bfs.WithContext(cmd.Context()))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s -> %s: %v\n", q[0], q[1], res)
	}

	return nil
}
