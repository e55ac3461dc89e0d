// Package bfs provides breadth-first shortest-path search over a core.Graph,
// counting hops and ignoring edge payloads.
//
// What
//
//   - ShortestPath(g, source, destination, opts...) explores vertices in
//     non-decreasing hop distance from source along outgoing edges and stops
//     as soon as destination is dequeued.
//   - Returns a Result containing:
//   - Reachable: whether destination was found
//   - Distance: hop count (0 when source == destination, -1 when unreachable)
//   - Path: source … destination inclusive (nil when unreachable)
//   - Visited: number of vertices dequeued
//   - ShortestPaths(g, pairs, opts...) answers many independent pairs
//     concurrently on an errgroup bounded by WithParallelism.
//
// Determinism
//
//	core.Graph.IncidentEdges yields edges in the order they were linked into
//	the vertex's adjacency, and BFS enqueues neighbors in that order, so
//	among equal-length paths the first discovered is always the one returned.
//
// Directedness
//
//	Directed graphs are searched along edge direction only. In undirected
//	graphs every incident edge is outgoing, so the search is symmetric.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, visited set, parent links)
//
// Usage
//
//	res, err := bfs.ShortestPath(g, a, e)
//	if err != nil {
//	    // ErrGraphNil, core.ErrNilVertex, core.ErrVertexNotFound,
//	    // ErrOptionViolation or a context error
//	}
//	if !res.Reachable {
//	    // no path; not an error
//	}
//
//	res, err := bfs.ShortestPath(g, a, e,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no depth limit, GOMAXPROCS parallelism.
//   - WithContext(ctx):     set a custom context for cancellation.
//   - WithMaxDepth(d):      never follow paths longer than d hops (d>0).
//   - WithParallelism(n):   bound concurrent searches in ShortestPaths (n>0).
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - core.ErrNilVertex       if source or destination is nil.
//   - core.ErrVertexNotFound  if source or destination belongs to another graph.
//   - ErrOptionViolation      if an Option is invalid.
//   - ctx.Err()               if the context is cancelled mid-search.
package bfs
