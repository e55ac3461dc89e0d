// File: methods_clone.go
// Role: Deep copy of a graph instance.
// Determinism:
//   - The clone reproduces vertex order and every adjacency's link order.
// Concurrency:
//   - Read lock on the source for the whole copy; the clone is not shared until returned.

package core

// Clone returns a deep copy of the Graph (configuration, vertices, edges and
// adjacency order) together with a map from each source handle to its copy.
// Payloads are copied by value; payloads that are references stay shared.
//
// Behavior highlights:
//   - Edge sharing is preserved: an undirected edge is still one *Edge in the
//     clone, reachable from both endpoints.
//   - Mutating the clone never affects the source.
//
// Complexity: O(V + E)
func (g *Graph[V, E]) Clone() (*Graph[V, E], map[*Vertex[V]]*Vertex[V]) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph[V, E](WithDirected(g.directed), WithLogger(g.logger))
	clone.edgeCount = g.edgeCount
	clone.vertices = make([]*Vertex[V], 0, len(g.vertices))

	handles := make(map[*Vertex[V]]*Vertex[V], len(g.vertices))
	for _, v := range g.vertices {
		nv := &Vertex[V]{payload: v.payload, seq: v.seq}
		handles[v] = nv
		clone.vertices = append(clone.vertices, nv)
		clone.byPayload[v.payload] = append(clone.byPayload[v.payload], nv)
	}

	edges := make(map[*Edge[V, E]]*Edge[V, E], g.edgeCount)
	copyTable := func(src, dst map[*Vertex[V]]*adjacency[V, E]) {
		for _, v := range g.vertices {
			adj := newAdjacency[V, E]()
			for i, n := range src[v].neighbors {
				e := src[v].edges[i]
				ne, ok := edges[e]
				if !ok {
					ne = &Edge[V, E]{origin: handles[e.origin], destination: handles[e.destination], payload: e.payload}
					edges[e] = ne
				}
				adj.put(handles[n], ne)
			}
			dst[handles[v]] = adj
		}
	}
	copyTable(g.outgoing, clone.outgoing)
	if g.directed {
		copyTable(g.incoming, clone.incoming)
	}

	return clone, handles
}
