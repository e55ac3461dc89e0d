package bfs

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hopgraph/core"
)

// ShortestPaths answers every pair with ShortestPath, running up to
// Parallelism searches at once. results[i] belongs to pairs[i].
//
// Searches only take the graph's read lock, so they may overlap each other;
// inserts issued meanwhile are serialized against them but may or may not be
// observed. The first failing pair cancels the rest and its error is
// returned, prefixed with the pair index.
func ShortestPaths[V comparable, E any](g *core.Graph[V, E], pairs []Pair[V], opts ...Option) ([]*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	results := make([]*Result[V], len(pairs))
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Parallelism)

	for i, p := range pairs {
		eg.Go(func() error {
			res, err := shortestPath(ctx, g, p.Source, p.Destination, o)
			if err != nil {
				return fmt.Errorf("bfs: pair %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
