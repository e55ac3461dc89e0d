// File: methods_edges.go
// Role: Edge lifecycle & queries: InsertEdge/InsertEdgeByPayload/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() walks vertices in insertion order, then each outgoing adjacency in
//     link order, reporting every distinct edge once.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"log/slog"
)

// InsertEdge links origin to destination with payload and returns the new edge.
//
// Steps:
//  1. Lock mu; validate both handles (nil → ErrNilVertex, foreign → ErrVertexNotFound).
//  2. Store the edge at outgoing[origin][destination].
//  3. Store the same edge at incoming[destination][origin] (directed) or
//     outgoing[destination][origin] (undirected, single table).
//
// An existing edge for the same ordered pair is replaced (last insertion wins)
// and EdgeCount does not grow. In an undirected graph (v,u) addresses the same
// pair as (u,v). On error the graph is untouched.
//
// Complexity: O(1) amortized.
func (g *Graph[V, E]) InsertEdge(origin, destination *Vertex[V], payload E) (*Edge[V, E], error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex(origin); err != nil {
		return nil, err
	}
	if err := g.checkVertex(destination); err != nil {
		return nil, err
	}

	return g.insertEdge(origin, destination, payload), nil
}

// InsertEdgeByPayload resolves both endpoints by payload and links them.
// Resolution happens before any mutation, so a failed lookup leaves the
// graph unchanged.
//
// Errors:
//   - ErrVertexNotFound: an endpoint payload matches no vertex.
//   - ErrAmbiguousPayload: an endpoint payload matches several vertices.
//
// Complexity: O(1) amortized (payload index, not a vertex scan).
func (g *Graph[V, E]) InsertEdgeByPayload(originPayload, destinationPayload V, payload E) (*Edge[V, E], error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	origin, err := g.lookup(originPayload)
	if err != nil {
		return nil, err
	}
	destination, err := g.lookup(destinationPayload)
	if err != nil {
		return nil, err
	}

	return g.insertEdge(origin, destination, payload), nil
}

// insertEdge performs the insertion; callers hold mu and have validated both ends.
func (g *Graph[V, E]) insertEdge(origin, destination *Vertex[V], payload E) *Edge[V, E] {
	e := &Edge[V, E]{origin: origin, destination: destination, payload: payload}

	prev := g.outgoing[origin].put(destination, e)
	g.table(false)[destination].put(origin, e)

	if prev != nil {
		g.logger.Debug("edge overwritten",
			slog.String("origin", origin.String()),
			slog.String("destination", destination.String()),
			slog.Any("previous", prev.payload),
			slog.Any("payload", payload))
		return e
	}

	g.edgeCount++
	g.logger.Debug("edge inserted",
		slog.String("origin", origin.String()),
		slog.String("destination", destination.String()),
		slog.Any("payload", payload),
		slog.Int("edges", g.edgeCount))

	return e
}

// GetEdge returns the edge from u to v. ok is false when u has no edge to v,
// including when v belongs to another graph; that is not an error.
// In an undirected graph GetEdge(u, v) and GetEdge(v, u) return the same edge.
//
// Errors:
//   - ErrNilVertex: u or v is nil.
//   - ErrVertexNotFound: u was not inserted into this graph.
//
// Complexity: O(1).
func (g *Graph[V, E]) GetEdge(u, v *Vertex[V]) (e *Edge[V, E], ok bool, err error) {
	if v == nil {
		return nil, false, ErrNilVertex
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err = g.checkVertex(u); err != nil {
		return nil, false, err
	}
	e, ok = g.outgoing[u].get(v)

	return e, ok, nil
}

// Edges returns every distinct edge once. Undirected edges are reachable from
// both endpoints and are deduplicated by handle.
// Complexity: O(V + E) time, O(E) space.
func (g *Graph[V, E]) Edges() []*Edge[V, E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge[V, E], 0, g.edgeCount)
	seen := make(map[*Edge[V, E]]struct{}, g.edgeCount)
	for _, v := range g.vertices {
		for _, e := range g.outgoing[v].edges {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}

	return out
}

// EdgeCount returns the number of distinct edges.
// Complexity: O(1).
func (g *Graph[V, E]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
