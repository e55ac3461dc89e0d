// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in insertion, lookup and query behavior for both directednesses.
//   - Anchor ordering guarantees (insertion order for vertices and adjacency).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopgraph/core"
)

// TestGraph_VertexCountMonotonic: each InsertVertex adds exactly one vertex.
func TestGraph_VertexCountMonotonic(t *testing.T) {
	g := core.NewGraph[string, Payload]()
	require.Equal(t, 0, g.VertexCount())

	for i, p := range []string{VertexA, VertexB, VertexA, VertexC} {
		g.InsertVertex(p)
		assert.Equal(t, i+1, g.VertexCount(), "after inserting %s", p)
	}
	assert.Equal(t, []string{VertexA, VertexB, VertexA, VertexC}, payloadsOf(collect(g.Vertices())))
}

// TestGraph_VerticesRestartable: every range is a fresh pass and sees later inserts.
func TestGraph_VerticesRestartable(t *testing.T) {
	g := core.NewGraph[string, Payload]()
	g.InsertVertex(VertexA)
	seq := g.Vertices()

	assert.Len(t, collect(seq), 1)
	assert.Len(t, collect(seq), 1)

	g.InsertVertex(VertexB)
	assert.Equal(t, []string{VertexA, VertexB}, payloadsOf(collect(seq)))

	// early break stops cleanly
	n := 0
	for range seq {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

// TestGraph_InsertEdgeByPayload_NotFound: a missing payload fails without mutation.
func TestGraph_InsertEdgeByPayload_NotFound(t *testing.T) {
	for _, directed := range []bool{true, false} {
		g, h := newSample(t, directed)
		edgesBefore := len(g.Edges())
		degBefore, err := g.Degree(h[VertexC], false)
		require.NoError(t, err)

		_, err = g.InsertEdgeByPayload(VertexX, VertexC, Payload{1})
		assert.ErrorIs(t, err, core.ErrVertexNotFound, "directed=%v", directed)

		_, err = g.InsertEdgeByPayload(VertexC, VertexX, Payload{1})
		assert.ErrorIs(t, err, core.ErrVertexNotFound, "directed=%v", directed)

		assert.Len(t, g.Edges(), edgesBefore)
		assert.Equal(t, edgesBefore, g.EdgeCount())
		degAfter, err := g.Degree(h[VertexC], false)
		require.NoError(t, err)
		assert.Equal(t, degBefore, degAfter)
		outC, err := g.Degree(h[VertexC], true)
		require.NoError(t, err)
		assert.Equal(t, map[bool]int{true: 1, false: 3}[directed], outC)
	}
}

// TestGraph_InsertEdgeByPayload_Ambiguous: duplicate payloads are never guessed.
func TestGraph_InsertEdgeByPayload_Ambiguous(t *testing.T) {
	g := core.NewGraph[string, Payload](core.WithDirected(true))
	a1 := g.InsertVertex(VertexA)
	a2 := g.InsertVertex(VertexA)
	b := g.InsertVertex(VertexB)

	_, err := g.InsertEdgeByPayload(VertexA, VertexB, nil)
	require.ErrorIs(t, err, core.ErrAmbiguousPayload)
	assert.Equal(t, 0, g.EdgeCount())

	// FindByPayload exposes every match so the caller can choose
	matches := g.FindByPayload(VertexA)
	require.Len(t, matches, 2)
	assert.Same(t, a1, matches[0])
	assert.Same(t, a2, matches[1])
	assert.Empty(t, g.FindByPayload(VertexX))

	_, err = g.InsertEdge(matches[1], b, Payload{7})
	require.NoError(t, err)
	_, ok, err := g.GetEdge(a1, b)
	require.NoError(t, err)
	assert.False(t, ok)
	e, ok, err := g.GetEdge(a2, b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Payload{7}, e.Payload())

	// FindByPayload returns a copy
	matches[0] = nil
	assert.Same(t, a1, g.FindByPayload(VertexA)[0])
}

// TestGraph_Lookup covers the single-match resolver.
func TestGraph_Lookup(t *testing.T) {
	g := core.NewGraph[string, Payload]()
	a := g.InsertVertex(VertexA)

	got, err := g.Lookup(VertexA)
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = g.Lookup(VertexX)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	g.InsertVertex(VertexA)
	_, err = g.Lookup(VertexA)
	assert.ErrorIs(t, err, core.ErrAmbiguousPayload)
}

// TestGraph_ForeignAndNilHandles: handles from another graph are not found, nil is misuse.
func TestGraph_ForeignAndNilHandles(t *testing.T) {
	g, h := newSample(t, true)
	other := core.NewGraph[string, Payload](core.WithDirected(true))
	foreign := other.InsertVertex(VertexA)

	assert.False(t, g.HasVertex(foreign))
	assert.False(t, g.HasVertex(nil))
	assert.ErrorIs(t, g.CheckVertex(foreign), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.CheckVertex(nil), core.ErrNilVertex)
	assert.NoError(t, g.CheckVertex(h[VertexA]))

	_, err := g.Degree(foreign, true)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(nil, true)
	assert.ErrorIs(t, err, core.ErrNilVertex)

	_, err = g.IncidentEdges(foreign, false)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.IncidentEdges(nil, false)
	assert.ErrorIs(t, err, core.ErrNilVertex)

	_, _, err = g.GetEdge(foreign, h[VertexC])
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, _, err = g.GetEdge(h[VertexA], nil)
	assert.ErrorIs(t, err, core.ErrNilVertex)
	// a foreign destination is simply "no edge"
	_, ok, err := g.GetEdge(h[VertexA], foreign)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = g.InsertEdge(h[VertexA], foreign, nil)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.InsertEdge(nil, h[VertexA], nil)
	assert.ErrorIs(t, err, core.ErrNilVertex)
	assert.Equal(t, len(sampleEdges), g.EdgeCount())
}

// TestGraph_UndirectedSymmetry: one shared edge, visible from both endpoints.
func TestGraph_UndirectedSymmetry(t *testing.T) {
	g, h := newSample(t, false)

	for _, pair := range sampleEdges {
		u, v := h[pair[0]], h[pair[1]]
		uv, ok, err := g.GetEdge(u, v)
		require.NoError(t, err)
		require.True(t, ok, "GetEdge(%s,%s)", pair[0], pair[1])
		vu, ok, err := g.GetEdge(v, u)
		require.NoError(t, err)
		require.True(t, ok, "GetEdge(%s,%s)", pair[1], pair[0])
		assert.Same(t, uv, vu)

		assert.Contains(t, mustIncident(t, g, u, true), uv)
		assert.Contains(t, mustIncident(t, g, v, true), uv)
		// the flag is ignored for undirected graphs
		assert.Equal(t, mustIncident(t, g, u, true), mustIncident(t, g, u, false))
	}
}

// TestGraph_DirectedAsymmetry: u→v never implies v→u.
func TestGraph_DirectedAsymmetry(t *testing.T) {
	g, h := newSample(t, true)

	for _, pair := range sampleEdges {
		u, v := h[pair[0]], h[pair[1]]
		uv, ok, err := g.GetEdge(u, v)
		require.NoError(t, err)
		require.True(t, ok)
		_, ok, err = g.GetEdge(v, u)
		require.NoError(t, err)
		assert.False(t, ok, "GetEdge(%s,%s) must be absent", pair[1], pair[0])

		assert.Contains(t, mustIncident(t, g, u, true), uv)
		assert.Contains(t, mustIncident(t, g, v, false), uv)
		assert.NotContains(t, mustIncident(t, g, v, true), uv)
	}

	// reverse insertion creates a second, distinct edge
	ca, err := g.InsertEdge(h[VertexC], h[VertexA], Payload{9})
	require.NoError(t, err)
	ac, _, _ := g.GetEdge(h[VertexA], h[VertexC])
	assert.NotSame(t, ac, ca)
	assert.Equal(t, len(sampleEdges)+1, g.EdgeCount())
}

// TestGraph_DegreeMatchesIncident: Degree(v, dir) == len(IncidentEdges(v, dir)).
func TestGraph_DegreeMatchesIncident(t *testing.T) {
	for _, directed := range []bool{true, false} {
		g, _ := newSample(t, directed)
		for v := range g.Vertices() {
			for _, outgoing := range []bool{true, false} {
				d, err := g.Degree(v, outgoing)
				require.NoError(t, err)
				assert.Len(t, mustIncident(t, g, v, outgoing), d, "directed=%v v=%v outgoing=%v", directed, v, outgoing)
			}
		}
	}
}

// TestGraph_Degrees pins concrete degrees on the sample.
func TestGraph_Degrees(t *testing.T) {
	directed, h := newSample(t, true)
	want := map[string][2]int{ // payload → {out, in}
		VertexA: {2, 0},
		VertexB: {1, 1},
		VertexC: {1, 2},
		VertexD: {0, 0},
		VertexE: {0, 1},
	}
	for p, w := range want {
		out, err := directed.Degree(h[p], true)
		require.NoError(t, err)
		in, err := directed.Degree(h[p], false)
		require.NoError(t, err)
		assert.Equal(t, w, [2]int{out, in}, "directed degree of %s", p)
	}

	undirected, uh := newSample(t, false)
	for p, w := range want {
		d, err := undirected.Degree(uh[p], true)
		require.NoError(t, err)
		assert.Equal(t, w[0]+w[1], d, "undirected degree of %s", p)
	}
}

// TestGraph_IncidentOrder: adjacency iterates in link order; overwrite keeps the slot.
func TestGraph_IncidentOrder(t *testing.T) {
	g := core.NewGraph[string, Payload](core.WithDirected(true))
	a := g.InsertVertex(VertexA)
	b := g.InsertVertex(VertexB)
	c := g.InsertVertex(VertexC)
	d := g.InsertVertex(VertexD)

	for _, v := range []*core.Vertex[string]{d, b, c} {
		_, err := g.InsertEdge(a, v, Payload{1})
		require.NoError(t, err)
	}
	_, err := g.InsertEdge(a, b, Payload{2})
	require.NoError(t, err)

	var dests []string
	var payloads []Payload
	for _, e := range mustIncident(t, g, a, true) {
		_, dst := e.Endpoints()
		dests = append(dests, dst.Payload())
		payloads = append(payloads, e.Payload())
	}
	assert.Equal(t, []string{VertexD, VertexB, VertexC}, dests)
	assert.Equal(t, []Payload{{1}, {2}, {1}}, payloads)
}

// TestGraph_IncidentRestartable: the sequence can be ranged repeatedly and reflects new edges.
func TestGraph_IncidentRestartable(t *testing.T) {
	g, h := newSample(t, true)
	seq, err := g.IncidentEdges(h[VertexA], true)
	require.NoError(t, err)

	assert.Len(t, collect(seq), 2)
	assert.Len(t, collect(seq), 2)

	_, err = g.InsertEdge(h[VertexA], h[VertexD], nil)
	require.NoError(t, err)
	assert.Len(t, collect(seq), 3)
}

// TestGraph_EdgeSetSize: len(Edges()) == successful inserts − overwrites.
func TestGraph_EdgeSetSize(t *testing.T) {
	tests := []struct {
		name     string
		directed bool
		inserts  [][2]string
		want     int
	}{
		{"directed distinct", true, [][2]string{{"A", "B"}, {"B", "A"}, {"A", "C"}}, 3},
		{"directed overwrite", true, [][2]string{{"A", "B"}, {"A", "B"}, {"A", "B"}}, 1},
		{"undirected reverse overwrites", false, [][2]string{{"A", "B"}, {"B", "A"}}, 1},
		{"undirected distinct", false, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}}, 3},
		{"self-loops", false, [][2]string{{"A", "A"}, {"A", "A"}, {"B", "B"}}, 2},
		{"directed self-loop", true, [][2]string{{"A", "A"}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := core.NewGraph[string, Payload](core.WithDirected(tt.directed))
			for _, p := range []string{"A", "B", "C"} {
				g.InsertVertex(p)
			}
			for i, in := range tt.inserts {
				_, err := g.InsertEdgeByPayload(in[0], in[1], Payload{i})
				require.NoError(t, err)
			}

			edges := g.Edges()
			assert.Len(t, edges, tt.want)
			assert.Equal(t, tt.want, g.EdgeCount())

			seen := make(map[*core.Edge[string, Payload]]bool)
			for _, e := range edges {
				assert.False(t, seen[e], "edge %v reported twice", e)
				seen[e] = true
			}
		})
	}
}

// TestGraph_OverwriteUndirected: (v,u) after (u,v) replaces the shared edge on both sides.
func TestGraph_OverwriteUndirected(t *testing.T) {
	g := core.NewGraph[string, Payload]()
	a := g.InsertVertex(VertexA)
	b := g.InsertVertex(VertexB)
	first, err := g.InsertEdge(a, b, Payload{1})
	require.NoError(t, err)
	second, err := g.InsertEdge(b, a, Payload{2})
	require.NoError(t, err)

	ab, _, _ := g.GetEdge(a, b)
	ba, _, _ := g.GetEdge(b, a)
	assert.Same(t, second, ab)
	assert.Same(t, second, ba)
	assert.NotSame(t, first, ab)
	assert.Equal(t, []*core.Edge[string, Payload]{second}, g.Edges())
}

// TestGraph_EdgesOrder: vertex insertion order, then adjacency order.
func TestGraph_EdgesOrder(t *testing.T) {
	g, _ := newSample(t, true)

	var got [][2]string
	for _, e := range g.Edges() {
		o, d := e.Endpoints()
		got = append(got, [2]string{o.Payload(), d.Payload()})
	}
	assert.Equal(t, [][2]string{{"A", "C"}, {"A", "B"}, {"B", "C"}, {"C", "E"}}, got)
}

// TestGraph_Stats pins the snapshot on a small graph with a loop and duplicates.
func TestGraph_Stats(t *testing.T) {
	g, h := newSample(t, true)
	g.InsertVertex(VertexA)
	_, err := g.InsertEdge(h[VertexD], h[VertexD], nil)
	require.NoError(t, err)

	s := g.Stats()
	assert.Equal(t, &core.GraphStats{
		Directed:         true,
		VertexCount:      6,
		EdgeCount:        5,
		DistinctPayloads: 5,
		SelfLoops:        1,
		MaxOutDegree:     2,
	}, s)
}

// TestGraph_Clone: deep copy with identical structure and independent mutation.
func TestGraph_Clone(t *testing.T) {
	for _, directed := range []bool{true, false} {
		g, h := newSample(t, directed)
		clone, handles := g.Clone()

		require.Equal(t, g.Directed(), clone.Directed())
		require.Equal(t, g.VertexCount(), clone.VertexCount())
		require.Equal(t, g.EdgeCount(), clone.EdgeCount())
		assert.Equal(t, payloadsOf(collect(g.Vertices())), payloadsOf(collect(clone.Vertices())))

		for v := range g.Vertices() {
			nv := handles[v]
			require.NotNil(t, nv)
			assert.NotSame(t, v, nv)
			assert.True(t, clone.HasVertex(nv))
			assert.False(t, clone.HasVertex(v))
			for _, outgoing := range []bool{true, false} {
				src := mustIncident(t, g, v, outgoing)
				dst := mustIncident(t, clone, nv, outgoing)
				require.Len(t, dst, len(src))
				for i := range src {
					so, sd := src[i].Endpoints()
					do, dd := dst[i].Endpoints()
					assert.Same(t, handles[so], do)
					assert.Same(t, handles[sd], dd)
					assert.Equal(t, src[i].Payload(), dst[i].Payload())
				}
			}
		}

		if !directed {
			ac, _, _ := clone.GetEdge(handles[h[VertexA]], handles[h[VertexC]])
			ca, _, _ := clone.GetEdge(handles[h[VertexC]], handles[h[VertexA]])
			assert.Same(t, ac, ca, "clone must keep undirected edges shared")
		}

		_, err := clone.InsertEdge(handles[h[VertexD]], handles[h[VertexE]], nil)
		require.NoError(t, err)
		assert.Equal(t, len(sampleEdges)+1, clone.EdgeCount())
		assert.Equal(t, len(sampleEdges), g.EdgeCount())
		clone.InsertVertex(VertexX)
		assert.Empty(t, g.FindByPayload(VertexX))
	}
}
