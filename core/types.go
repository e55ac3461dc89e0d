// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge and Graph declarations, sentinel errors, GraphOption and NewGraph.
// Policy:
//   - Vertex identity is the handle (pointer), never the payload.
//   - Edge identity inside one adjacency is its (origin, destination) pair.
//   - Undirected graphs keep a single adjacency table (incoming == nil).

package core

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates a nil *Vertex was passed where a handle is required.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrVertexNotFound indicates a payload matched no vertex, or a handle
	// does not belong to this graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrAmbiguousPayload indicates a payload lookup matched more than one vertex.
	ErrAmbiguousPayload = errors.New("core: payload matches more than one vertex")

	// ErrInvalidEndpoint indicates Opposite was called with a vertex that is
	// neither endpoint of the edge.
	ErrInvalidEndpoint = errors.New("core: vertex is not an endpoint of the edge")
)

// Vertex is an opaque node handle carrying a caller-supplied payload.
//
// Vertices are created only by Graph.InsertVertex. Two vertices with equal
// payloads are distinct: compare handles, not payloads.
type Vertex[V comparable] struct {
	payload V
	seq     uint64 // insertion sequence; also keeps the struct non-zero-sized
}

// Payload returns the value supplied at insertion.
func (v *Vertex[V]) Payload() V { return v.payload }

// String formats the payload.
func (v *Vertex[V]) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprint(v.payload)
}

// Edge connects an origin vertex to a destination vertex and carries an
// opaque payload. The core never interprets the payload (it is not a weight).
type Edge[V comparable, E any] struct {
	origin      *Vertex[V]
	destination *Vertex[V]
	payload     E
}

// Payload returns the value supplied at insertion.
func (e *Edge[V, E]) Payload() E { return e.payload }

// Endpoints returns (origin, destination) in insertion order.
func (e *Edge[V, E]) Endpoints() (origin, destination *Vertex[V]) {
	return e.origin, e.destination
}

// Opposite returns the endpoint that is not v. For a self-loop it returns v.
//
// Errors:
//   - ErrNilVertex: v is nil.
//   - ErrInvalidEndpoint: v is neither the origin nor the destination (handle comparison).
func (e *Edge[V, E]) Opposite(v *Vertex[V]) (*Vertex[V], error) {
	switch {
	case v == nil:
		return nil, ErrNilVertex
	case v == e.origin:
		return e.destination, nil
	case v == e.destination:
		return e.origin, nil
	default:
		return nil, fmt.Errorf("%w: %v not in %v", ErrInvalidEndpoint, v, e)
	}
}

// String renders "origin -> destination (payload)".
func (e *Edge[V, E]) String() string {
	return fmt.Sprintf("%v -> %v (%v)", e.origin, e.destination, e.payload)
}

// GraphOption configures a Graph before creation.
type GraphOption func(c *graphConfig)

type graphConfig struct {
	directed bool
	logger   *slog.Logger
}

// WithDirected fixes the graph's directedness (default false).
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// WithLogger routes debug records for insertions and overwrites to l.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) GraphOption {
	return func(c *graphConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Graph is an adjacency-map graph store owning all of its vertices and edges.
//
// outgoing[u] maps each neighbor v to the edge u→v. For directed graphs
// incoming[v] maps each u to the same edge; for undirected graphs incoming is
// nil and outgoing holds both directions of every edge.
// mu guards everything below it.
type Graph[V comparable, E any] struct {
	mu sync.RWMutex

	directed bool
	logger   *slog.Logger

	vertices  []*Vertex[V]         // insertion order, append-only
	byPayload map[V][]*Vertex[V]   // payload → matching vertices, insertion order
	edgeCount int                  // distinct edges currently stored
	outgoing  map[*Vertex[V]]*adjacency[V, E]
	incoming  map[*Vertex[V]]*adjacency[V, E] // nil when undirected
}

// NewGraph creates an empty Graph. By default the graph is undirected and
// logs nothing. Directedness cannot change afterwards.
// Complexity: O(1)
func NewGraph[V comparable, E any](opts ...GraphOption) *Graph[V, E] {
	cfg := graphConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[V, E]{
		directed:  cfg.directed,
		logger:    cfg.logger,
		byPayload: make(map[V][]*Vertex[V]),
		outgoing:  make(map[*Vertex[V]]*adjacency[V, E]),
	}
	if g.directed {
		g.incoming = make(map[*Vertex[V]]*adjacency[V, E])
	}

	return g
}
