// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for hopgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep *testing.T usage out of goroutines (helpers return values, tests assert).

package core_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopgraph/core"
)

// Common vertex payloads used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexX = "X"
)

// Concurrency sizes (avoid magic numbers in test bodies).
const (
	NConcurrentInserts = 200
	NReaders           = 50
)

// Payload is the edge payload used by fixtures: a small ordered sequence of numbers.
type Payload = []int

// Graph is the fixture graph type.
type Graph = core.Graph[string, Payload]

// sampleEdges is the five-vertex fixture: A→C, B→C, A→B, C→E; D isolated.
var sampleEdges = [][2]string{
	{VertexA, VertexC},
	{VertexB, VertexC},
	{VertexA, VertexB},
	{VertexC, VertexE},
}

// newSample builds the sample graph and returns it with a payload → handle map.
// Edge payloads are their index in sampleEdges wrapped in a slice.
func newSample(t testing.TB, directed bool) (*Graph, map[string]*core.Vertex[string]) {
	t.Helper()

	g := core.NewGraph[string, Payload](core.WithDirected(directed))
	handles := make(map[string]*core.Vertex[string])
	for _, p := range []string{VertexA, VertexB, VertexC, VertexD, VertexE} {
		handles[p] = g.InsertVertex(p)
	}
	for i, e := range sampleEdges {
		_, err := g.InsertEdgeByPayload(e[0], e[1], Payload{i})
		require.NoError(t, err, "InsertEdgeByPayload(%s,%s)", e[0], e[1])
	}

	return g, handles
}

// collect drains a sequence into a slice.
func collect[T any](seq iter.Seq[T]) []T {
	return slices.Collect(seq)
}

// payloadsOf maps vertex handles to their payloads.
func payloadsOf(vs []*core.Vertex[string]) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Payload()
	}
	return out
}

// mustIncident returns the incident edges of v, failing the test on error.
func mustIncident(t testing.TB, g *Graph, v *core.Vertex[string], outgoing bool) []*core.Edge[string, Payload] {
	t.Helper()

	seq, err := g.IncidentEdges(v, outgoing)
	require.NoError(t, err, "IncidentEdges(%v,%v)", v, outgoing)

	return collect(seq)
}
