// Package main provides the hopgraph CLI, a small harness that builds a
// graph from flags and prints fewest-hop paths between its vertices.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopgraph/bfs"
	"github.com/katalvlaran/hopgraph/core"
)

// Version is the current hopgraph CLI version
var Version = "0.1.0"

type graph = core.Graph[string, string]

// pathFlags holds the flags of the path command.
type pathFlags struct {
	directed    bool
	vertices    []string
	edges       []string
	queries     []string
	maxDepth    int
	parallelism int
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "hopgraph",
		Short:         "hopgraph - build a graph and query fewest-hop paths",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log graph operations to stderr")

	newLogger := func(cmd *cobra.Command) *slog.Logger {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	}

	root.AddCommand(newPathCmd(newLogger), newDemoCmd(newLogger))

	return root
}

func newPathCmd(newLogger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var f pathFlags

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Build a graph from --vertex/--edge flags and answer --query pairs",
		Long: `Build a graph from flags and print the fewest-hop path for each query.

Vertices are named by their payload and must be unique. Edges are
FROM:TO or FROM:TO:PAYLOAD; queries are FROM:TO.

Examples:
  hopgraph path --directed -V A -V B -V C -e A:B -e B:C -q A:C
  hopgraph path -V x -V y -e x:y:link -q y:x -q x:x`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPath(cmd, f, newLogger(cmd))
		},
	}
	cmd.Flags().BoolVarP(&f.directed, "directed", "d", false, "build a directed graph")
	cmd.Flags().StringArrayVarP(&f.vertices, "vertex", "V", nil, "vertex payload (repeatable)")
	cmd.Flags().StringArrayVarP(&f.edges, "edge", "e", nil, "edge FROM:TO[:PAYLOAD] (repeatable)")
	cmd.Flags().StringArrayVarP(&f.queries, "query", "q", nil, "query FROM:TO (repeatable)")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "ignore paths longer than this many hops (0 = no limit)")
	cmd.Flags().IntVar(&f.parallelism, "parallelism", 4, "concurrent searches when several queries are given")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}

func runPath(cmd *cobra.Command, f pathFlags, logger *slog.Logger) error {
	g := core.NewGraph[string, string](core.WithDirected(f.directed), core.WithLogger(logger))
	for _, v := range f.vertices {
		g.InsertVertex(v)
	}
	for _, raw := range f.edges {
		parts := strings.SplitN(raw, ":", 3)
		if len(parts) < 2 {
			return fmt.Errorf("edge %q: want FROM:TO[:PAYLOAD]", raw)
		}
		var payload string
		if len(parts) == 3 {
			payload = parts[2]
		}
		if _, err := g.InsertEdgeByPayload(parts[0], parts[1], payload); err != nil {
			return fmt.Errorf("edge %q: %w", raw, err)
		}
	}

	pairs := make([]bfs.Pair[string], 0, len(f.queries))
	for _, q := range f.queries {
		p, err := parsePair(g, q)
		if err != nil {
			return err
		}
		pairs = append(pairs, p)
	}

	stats := g.Stats()
	logger.Debug("graph built",
		slog.Bool("directed", stats.Directed),
		slog.Int("vertices", stats.VertexCount),
		slog.Int("edges", stats.EdgeCount))

	results, err := bfs.ShortestPaths(g, pairs,
		bfs.WithContext(cmd.Context()),
		bfs.WithMaxDepth(f.maxDepth),
		bfs.WithParallelism(f.parallelism))
	if err != nil {
		return err
	}
	for i, res := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %v\n", pairs[i].Source, pairs[i].Destination, res)
	}

	return nil
}

// parsePair resolves a FROM:TO query against g.
func parsePair(g *graph, q string) (bfs.Pair[string], error) {
	from, to, ok := strings.Cut(q, ":")
	if !ok {
		return bfs.Pair[string]{}, fmt.Errorf("query %q: want FROM:TO", q)
	}
	src, err := g.Lookup(from)
	if err != nil {
		return bfs.Pair[string]{}, fmt.Errorf("query %q: %w", q, err)
	}
	dst, err := g.Lookup(to)
	if err != nil {
		return bfs.Pair[string]{}, fmt.Errorf("query %q: %w", q, err)
	}
	return bfs.Pair[string]{Source: src, Destination: dst}, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
