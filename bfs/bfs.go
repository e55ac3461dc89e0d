// Package bfs provides breadth-first shortest-path search over a core.Graph,
// returning the fewest-hop path between two vertices.
//
// BFS explores vertices in increasing distance from the source along
// outgoing edges, stopping as soon as the destination is dequeued.
package bfs

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/hopgraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	vertex *core.Vertex[V]
	depth  int
}

// walker encapsulates mutable BFS state.
type walker[V comparable, E any] struct {
	graph       *core.Graph[V, E]
	opts        BFSOptions
	ctx         context.Context
	destination *core.Vertex[V]
	queue       []queueItem[V]
	visited     map[*core.Vertex[V]]bool
	parent      map[*core.Vertex[V]]*core.Vertex[V]
	dequeued    int
}

// ShortestPath runs breadth-first search on g from source and returns the
// fewest-hop path to destination. Edge payloads are never read.
//
// Among equal-length paths the first one discovered wins: neighbors are
// expanded in the order their edges were linked into each outgoing adjacency.
// For directed graphs only edge direction is followed; for undirected graphs
// every incident edge is outgoing.
//
// An unreachable destination is a normal result (Reachable == false).
// Errors are reserved for misuse: ErrGraphNil, core.ErrNilVertex,
// core.ErrVertexNotFound (either endpoint not in g), ErrOptionViolation, and
// the context's error on cancellation.
//
// Complexity: O(V + E) time, O(V) memory.
func ShortestPath[V comparable, E any](g *core.Graph[V, E], source, destination *core.Vertex[V], opts ...Option) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return shortestPath(o.Ctx, g, source, destination, o)
}

// shortestPath validates endpoints and runs one walker under ctx.
func shortestPath[V comparable, E any](ctx context.Context, g *core.Graph[V, E], source, destination *core.Vertex[V], o BFSOptions) (*Result[V], error) {
	if err := g.CheckVertex(source); err != nil {
		return nil, fmt.Errorf("bfs: source: %w", err)
	}
	if err := g.CheckVertex(destination); err != nil {
		return nil, fmt.Errorf("bfs: destination: %w", err)
	}

	n := g.VertexCount()
	w := &walker[V, E]{
		graph:       g,
		opts:        o,
		ctx:         ctx,
		destination: destination,
		queue:       make([]queueItem[V], 0, n),
		visited:     make(map[*core.Vertex[V]]bool, n),
		parent:      make(map[*core.Vertex[V]]*core.Vertex[V], n),
	}

	// Seed queue with the source (no parent)
	w.enqueue(source, 0, nil)
	res, err := w.loop()
	if err != nil {
		return nil, err
	}

	g.Logger().Debug("bfs: shortest path",
		slog.String("source", source.String()),
		slog.String("destination", destination.String()),
		slog.Bool("reachable", res.Reachable),
		slog.Int("distance", res.Distance),
		slog.Int("visited", res.Visited))

	return res, nil
}

// enqueue marks v visited at depth d, records its parent and queues it.
func (w *walker[V, E]) enqueue(v *core.Vertex[V], d int, parent *core.Vertex[V]) {
	w.visited[v] = true
	if parent != nil {
		w.parent[v] = parent
	}
	w.queue = append(w.queue, queueItem[V]{vertex: v, depth: d})
}

// loop processes the queue until the destination is dequeued, the queue
// drains (unreachable), or the context is cancelled.
func (w *walker[V, E]) loop() (*Result[V], error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if item.vertex == w.destination {
			return &Result[V]{
				Reachable: true,
				Distance:  item.depth,
				Path:      w.pathTo(item.vertex),
				Visited:   w.dequeued,
			}, nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return nil, err
		}
	}

	return &Result[V]{Distance: -1, Visited: w.dequeued}, nil
}

// dequeue pops the first item.
func (w *walker[V, E]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.dequeued++
	return item
}

// enqueueNeighbors walks the outgoing edges of item, honoring MaxDepth, and
// enqueues each unseen neighbor.
func (w *walker[V, E]) enqueueNeighbors(item queueItem[V]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	edges, err := w.graph.IncidentEdges(item.vertex, true)
	if err != nil {
		return fmt.Errorf("bfs: incident edges of %v: %w", item.vertex, err)
	}
	for e := range edges {
		nbr, err := e.Opposite(item.vertex)
		if err != nil {
			return fmt.Errorf("bfs: edge %v: %w", e, err)
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.vertex)
		}
	}
	return nil
}

// pathTo follows parent links back to the source and returns source → dest.
func (w *walker[V, E]) pathTo(dest *core.Vertex[V]) []*core.Vertex[V] {
	path := []*core.Vertex[V]{dest}
	for cur := dest; ; {
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path
}
