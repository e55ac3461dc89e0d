// File: methods_adjacent.go
// Role: Per-vertex adjacency (ordered neighbor → edge map) and the neighborhood
//       queries built on it: Degree and IncidentEdges.
// Determinism:
//   - Neighbors iterate in the order they were first linked; overwriting an
//     existing (u,v) edge keeps its slot.
// Concurrency:
//   - adjacency itself is not synchronized; callers hold Graph.mu.

package core

import (
	"iter"
	"slices"
)

// adjacency is an insertion-ordered neighbor → edge map.
// index[n] is the slot of neighbor n in both neighbors and edges.
type adjacency[V comparable, E any] struct {
	index     map[*Vertex[V]]int
	neighbors []*Vertex[V]
	edges     []*Edge[V, E]
}

func newAdjacency[V comparable, E any]() *adjacency[V, E] {
	return &adjacency[V, E]{index: make(map[*Vertex[V]]int)}
}

// get returns the edge to neighbor n, if any.
func (a *adjacency[V, E]) get(n *Vertex[V]) (*Edge[V, E], bool) {
	i, ok := a.index[n]
	if !ok {
		return nil, false
	}
	return a.edges[i], true
}

// put links n to e and returns the edge it replaced, or nil.
// Complexity: O(1) amortized.
func (a *adjacency[V, E]) put(n *Vertex[V], e *Edge[V, E]) *Edge[V, E] {
	if i, ok := a.index[n]; ok {
		prev := a.edges[i]
		a.edges[i] = e
		return prev
	}
	a.index[n] = len(a.edges)
	a.neighbors = append(a.neighbors, n)
	a.edges = append(a.edges, e)

	return nil
}

func (a *adjacency[V, E]) len() int { return len(a.edges) }

// table picks the adjacency table for the requested direction.
// Undirected graphs keep one table, so the flag is ignored for them.
func (g *Graph[V, E]) table(outgoing bool) map[*Vertex[V]]*adjacency[V, E] {
	if outgoing || !g.directed {
		return g.outgoing
	}
	return g.incoming
}

// Degree counts the edges incident to v in the requested direction.
// For undirected graphs outgoing is ignored and a self-loop counts once.
//
// Errors:
//   - ErrNilVertex: v is nil.
//   - ErrVertexNotFound: v was not inserted into this graph.
//
// Complexity: O(1).
func (g *Graph[V, E]) Degree(v *Vertex[V], outgoing bool) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	return g.table(outgoing)[v].len(), nil
}

// IncidentEdges returns a sequence over the edges incident to v in the
// requested direction, in adjacency order. Outgoing edges of a directed
// graph all have v as origin; incoming edges all have v as destination.
//
// Implementation:
//   - Stage 1: Validate v under the read lock; errors are reported immediately.
//   - Stage 2: Each range over the returned sequence re-reads the adjacency under the
//     read lock and copies it, so the sequence is restartable, reflects edges added
//     since the call, and never holds the lock while yielding.
//
// Errors:
//   - ErrNilVertex, ErrVertexNotFound: same conditions as Degree.
//
// Complexity:
//   - Time O(1) for the call, O(d) per iteration; Space O(d) per iteration.
func (g *Graph[V, E]) IncidentEdges(v *Vertex[V], outgoing bool) (iter.Seq[*Edge[V, E]], error) {
	g.mu.RLock()
	err := g.checkVertex(v)
	g.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	return func(yield func(*Edge[V, E]) bool) {
		g.mu.RLock()
		edges := slices.Clone(g.table(outgoing)[v].edges)
		g.mu.RUnlock()

		for _, e := range edges {
			if !yield(e) {
				return
			}
		}
	}, nil
}
