// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: configuration getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

import "log/slog"

// GraphStats is a read-only snapshot of configuration and catalog sizes.
type GraphStats struct {
	Directed         bool
	VertexCount      int
	EdgeCount        int
	DistinctPayloads int // number of distinct vertex payloads
	SelfLoops        int // edges whose origin equals their destination
	MaxOutDegree     int
}

// Directed reports the directedness fixed at construction.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[V, E]) Directed() bool {
	// directed is immutable after NewGraph; no lock needed.
	return g.directed
}

// Logger returns the logger configured with WithLogger, or a discarding
// logger. Algorithms built on the graph log through it.
func (g *Graph[V, E]) Logger() *slog.Logger {
	return g.logger
}

// Stats produces a deterministic snapshot of flags and counts.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Read counters, then scan outgoing adjacencies once for loops and degree.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph[V, E]) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Directed:         g.directed,
		VertexCount:      len(g.vertices),
		EdgeCount:        g.edgeCount,
		DistinctPayloads: len(g.byPayload),
	}
	for v, adj := range g.outgoing {
		if adj.len() > stats.MaxOutDegree {
			stats.MaxOutDegree = adj.len()
		}
		if _, loop := adj.get(v); loop {
			stats.SelfLoops++
		}
	}

	return &stats
}
