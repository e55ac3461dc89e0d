// Package hopgraph is an in-memory graph store with fewest-hop path search.
//
// Vertices and edges are opaque handles carrying caller payloads; the store
// never interprets them, so a path is measured in hops, not weights.
//
// Layout:
//
//	core/          Graph, Vertex and Edge: insertion, payload lookup, degree,
//	               incident edges, edge set, stats and cloning
//	bfs/           ShortestPath and the concurrent ShortestPaths batch runner
//	cmd/hopgraph/  command line front end: build a graph from flags and query it
//
// Quick example:
//
//	A ── B ── C
//	     │
//	     D
//
//	g := core.NewGraph[string, struct{}]()
//	a := g.InsertVertex("A")
//	g.InsertVertex("B")
//	c := g.InsertVertex("C")
//	g.InsertVertex("D")
//	g.InsertEdgeByPayload("A", "B", struct{}{})
//	g.InsertEdgeByPayload("B", "C", struct{}{})
//	g.InsertEdgeByPayload("B", "D", struct{}{})
//
//	res, _ := bfs.ShortestPath(g, a, c)
//	fmt.Println(res) // distance=2 path=[A B C]
//
// Graphs are either directed or undirected for their whole life. There is no
// removal: vertices and edges only accumulate, and re-linking an existing pair
// replaces its edge.
package hopgraph
