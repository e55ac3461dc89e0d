// File: methods_vertices.go
// Role: Vertex lifecycle & queries: InsertVertex, HasVertex, CheckVertex,
//       VertexCount, Vertices, FindByPayload, Lookup.
//
// Determinism:
//   - Vertices() and FindByPayload() follow insertion order.
//
// Concurrency:
//   - Insertion under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// InsertVertex creates a vertex owning payload and returns its handle.
//
// Implementation:
//   - Stage 1: Allocate the Vertex with the next insertion sequence.
//   - Stage 2: Register it in the vertex list and the payload index.
//   - Stage 3: Bootstrap an empty adjacency in every kept table.
//
// Behavior highlights:
//   - Never fails. Duplicate payloads are allowed and create distinct vertices;
//     payload lookups over duplicates report ErrAmbiguousPayload.
//   - V values must be usable as map keys: an interface-typed V holding an
//     uncomparable dynamic value panics, exactly as a map insert would.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[V, E]) InsertVertex(payload V) *Vertex[V] {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := &Vertex[V]{payload: payload, seq: uint64(len(g.vertices))}
	g.vertices = append(g.vertices, v)
	g.byPayload[payload] = append(g.byPayload[payload], v)

	g.outgoing[v] = newAdjacency[V, E]()
	if g.directed {
		g.incoming[v] = newAdjacency[V, E]()
	}

	g.logger.Debug("vertex inserted",
		slog.Any("payload", payload),
		slog.Int("vertices", len(g.vertices)),
		slog.Int("duplicates", len(g.byPayload[payload])-1))

	return v
}

// HasVertex reports whether v is a vertex of this graph (nil ⇒ false).
// Complexity: O(1).
func (g *Graph[V, E]) HasVertex(v *Vertex[V]) bool {
	if v == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.outgoing[v]

	return ok
}

// CheckVertex returns nil if v belongs to this graph, ErrNilVertex for a nil
// handle and a wrapped ErrVertexNotFound for a handle from another graph.
func (g *Graph[V, E]) CheckVertex(v *Vertex[V]) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.checkVertex(v)
}

// checkVertex is CheckVertex without locking; callers hold mu.
func (g *Graph[V, E]) checkVertex(v *Vertex[V]) error {
	if v == nil {
		return ErrNilVertex
	}
	if _, ok := g.outgoing[v]; !ok {
		return fmt.Errorf("%w: handle %v is not registered in this graph", ErrVertexNotFound, v)
	}
	return nil
}

// VertexCount returns the number of vertices. It only ever grows.
// Complexity: O(1).
func (g *Graph[V, E]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Vertices returns a sequence over all vertex handles in insertion order.
// Each range takes a fresh snapshot, so the sequence is restartable and sees
// vertices inserted after the call.
// Complexity: O(1) per snapshot, O(V) per full iteration.
func (g *Graph[V, E]) Vertices() iter.Seq[*Vertex[V]] {
	return func(yield func(*Vertex[V]) bool) {
		g.mu.RLock()
		// vertices is append-only, so a length-capped header is a stable view.
		snap := g.vertices[:len(g.vertices):len(g.vertices)]
		g.mu.RUnlock()

		for _, v := range snap {
			if !yield(v) {
				return
			}
		}
	}
}

// FindByPayload returns every vertex whose payload equals p, in insertion
// order. The result is a copy; an empty result means no match.
// Complexity: O(k) for k matches.
func (g *Graph[V, E]) FindByPayload(p V) []*Vertex[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.byPayload[p])
}

// Lookup resolves p to exactly one vertex.
//
// Errors:
//   - ErrVertexNotFound: no vertex carries p.
//   - ErrAmbiguousPayload: more than one vertex carries p; use FindByPayload
//     and pick a handle explicitly.
func (g *Graph[V, E]) Lookup(p V) (*Vertex[V], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.lookup(p)
}

// lookup is Lookup without locking; callers hold mu.
func (g *Graph[V, E]) lookup(p V) (*Vertex[V], error) {
	matches := g.byPayload[p]
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: payload %v", ErrVertexNotFound, p)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: payload %v matches %d vertices", ErrAmbiguousPayload, p, len(matches))
	}
}
