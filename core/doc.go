// Package core provides an in-memory adjacency-map Graph with opaque,
// payload-carrying Vertex and Edge handles.
//
// The Graph G = (V,E) is either directed or undirected, fixed at construction:
//
//   - Vertices are created by InsertVertex and identified by their handle.
//     Payloads are arbitrary comparable values and need not be unique.
//   - Edges are created by InsertEdge (by handle) or InsertEdgeByPayload (by
//     payload, which must resolve to exactly one vertex per endpoint).
//   - Each vertex owns an insertion-ordered adjacency map neighbor → edge:
//     outgoing[u][v] = e, and for directed graphs incoming[v][u] = e.
//   - Undirected graphs keep one table: outgoing[u][v] and outgoing[v][u]
//     hold the same *Edge, and every "outgoing" flag is ignored.
//   - Nothing is ever removed. Re-inserting an edge for the same ordered
//     pair replaces it in place.
//
// Type parameters:
//
//	V – vertex payload type (comparable; used as the payload index key)
//	E – edge payload type (opaque; never read by the package)
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)   directed vs. undirected (default undirected)
//	– WithLogger(*slog.Logger)      debug records for inserts and overwrites
//
// Core Methods:
//
//	// Vertex lifecycle & lookup
//	InsertVertex(p V) *Vertex[V]                          // O(1)
//	HasVertex(v) bool / CheckVertex(v) error              // O(1)
//	FindByPayload(p V) []*Vertex[V]                       // O(k), all matches
//	Lookup(p V) (*Vertex[V], error)                       // O(1), exactly one match
//
//	// Edge lifecycle
//	InsertEdge(u, v *Vertex[V], p E) (*Edge[V,E], error)  // O(1)
//	InsertEdgeByPayload(up, vp V, p E) (*Edge[V,E], error)// O(1)
//
//	// Query
//	Vertices() iter.Seq[*Vertex[V]]                       // insertion order
//	IncidentEdges(v, outgoing) (iter.Seq[*Edge[V,E]], error)
//	Degree(v, outgoing) (int, error)                      // O(1)
//	GetEdge(u, v) (*Edge[V,E], bool, error)               // O(1)
//	Edges() []*Edge[V,E]                                  // O(V+E), deduplicated
//	VertexCount() int / EdgeCount() int                   // O(1)
//	Stats() *GraphStats                                   // O(V+E)
//	Clone() (*Graph[V,E], map[*Vertex[V]]*Vertex[V])      // O(V+E)
//
// Errors:
//
//	ErrNilVertex        – nil handle
//	ErrVertexNotFound   – payload matched nothing, or handle from another graph
//	ErrAmbiguousPayload – payload matched several vertices
//	ErrInvalidEndpoint  – Edge.Opposite with a vertex that is not an endpoint
//
// Concurrency: a single sync.RWMutex guards the store. Inserts take the write
// lock, queries the read lock; sequences returned by Vertices and
// IncidentEdges snapshot under the read lock each time they are ranged over.
package core
