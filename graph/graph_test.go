package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensornet/graph"
	"github.com/katalvlaran/tensornet/tensor"
)

func TestBuild_NilSeed(t *testing.T) {
	g, err := graph.Build(nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, graph.ErrNilSeed)

	g, err = graph.Build((*tensor.Dense)(nil))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, graph.ErrNilSeed)
}

func TestBuild_Isolated(t *testing.T) {
	n := newNetwork()
	a, err := n.NewSquare(2, 3, Rank2)
	require.NoError(t, err)

	g, err := graph.Build(a, graph.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, 5, g.EndpointCount())
	assert.True(t, g.HasVertex(a))
	assert.Same(t, tensor.Tensor(a), g.Seed())
}

// TestBuild_Diamond builds from every seed and expects the same snapshot.
func TestBuild_Diamond(t *testing.T) {
	d := newDiamond(t)

	want := []graph.Edge{
		{Input: d.t2, InputPort: 0, Output: d.t1, OutputPort: 0},
		{Input: d.t3, InputPort: 0, Output: d.t1, OutputPort: 1},
		{Input: d.t4, InputPort: 0, Output: d.t2, OutputPort: 0},
		{Input: d.t4, InputPort: 1, Output: d.t3, OutputPort: 0},
		{Input: d.t5, InputPort: 0, Output: d.t4, OutputPort: 0},
		{Input: d.t2, InputPort: 1, Output: d.t3, OutputPort: 1},
	}

	for _, seed := range d.all() {
		g, err := graph.Build(seed, graph.WithLogger(quietLogger()))
		require.NoError(t, err)

		assert.Equal(t, 5, g.VertexCount())
		for _, x := range d.all() {
			assert.True(t, g.HasVertex(x), "vertex %s", x.ID())
		}

		require.Equal(t, len(want), g.EdgeCount())
		for _, e := range want {
			assert.True(t, g.HasEdge(e), "edge %s", e)
		}

		// Edges() must not contain duplicates.
		edges := g.Edges()
		require.Len(t, edges, len(want))
		for i := range edges {
			for j := i + 1; j < len(edges); j++ {
				assert.False(t, edges[i].Equal(edges[j]), "duplicate %s", edges[i])
			}
		}

		assert.Equal(t, 8, g.EndpointCount())
		var ins, outs int
		for _, ep := range g.Endpoints() {
			if ep.Side == graph.Input {
				ins++
			} else {
				outs++
			}
		}
		assert.Equal(t, 4, ins)
		assert.Equal(t, 4, outs)
	}
}

// TestBuild_OutputSideEdgeAbsent checks that an edge is only known by its
// input-side orientation.
func TestBuild_OutputSideEdgeAbsent(t *testing.T) {
	d := newDiamond(t)
	g, err := graph.Build(d.t1, graph.WithLogger(quietLogger()))
	require.NoError(t, err)

	assert.False(t, g.HasEdge(graph.Edge{Input: d.t1, InputPort: 0, Output: d.t2, OutputPort: 0}))
	assert.False(t, g.HasEdge(graph.Edge{Input: d.t2, InputPort: 0, Output: d.t1, OutputPort: 1}))
	assert.False(t, g.HasEdge(graph.Edge{}))
}

func TestBuild_SelfLoop(t *testing.T) {
	n := newNetwork()
	a, err := n.NewSquare(1, 1, Rank2)
	require.NoError(t, err)
	require.NoError(t, a.SetInput(0, a, 0))

	g, err := graph.Build(a, graph.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Zero(t, g.EndpointCount())
	assert.True(t, g.HasEdge(graph.Edge{Input: a, InputPort: 0, Output: a, OutputPort: 0}))
}

// TestBuild_ExcludesUnreachable keeps a separate component out.
func TestBuild_ExcludesUnreachable(t *testing.T) {
	d := newDiamond(t)
	x, err := d.net.NewSquare(1, 1, Rank2)
	require.NoError(t, err)

	g, err := graph.Build(d.t3, graph.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.False(t, g.HasVertex(x))
	assert.False(t, g.HasVertex(nil))
}

// TestRebuild_AfterRelink reflects link changes only after Rebuild.
func TestRebuild_AfterRelink(t *testing.T) {
	d := newDiamond(t)
	g, err := graph.Build(d.t1, graph.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())

	// Detach t5; the snapshot is unaffected until rebuilt.
	require.NoError(t, d.t5.SetInput(0, nil, 0))
	assert.Equal(t, 5, g.VertexCount())

	require.NoError(t, g.Rebuild())
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.False(t, g.HasVertex(d.t5))
}

// TestBuild_OnVisit sees each vertex exactly once and can abort.
func TestBuild_OnVisit(t *testing.T) {
	d := newDiamond(t)

	seen := make(map[tensor.Tensor]int)
	_, err := graph.Build(d.t4,
		graph.WithLogger(quietLogger()),
		graph.WithOnVisit(func(x tensor.Tensor) error {
			seen[x]++
			return nil
		}))
	require.NoError(t, err)
	assert.Len(t, seen, 5)
	for x, c := range seen {
		assert.Equal(t, 1, c, "vertex %s", x.ID())
	}

	stop := errors.New("stop")
	g, err := graph.Build(d.t4, graph.WithOnVisit(func(tensor.Tensor) error { return stop }))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, stop)
}

// TestRebuild_KeepsSnapshotOnError leaves the previous state in place.
func TestRebuild_KeepsSnapshotOnError(t *testing.T) {
	a, b := newStub(1, 1), newStub(1, 1)
	b.link(0, a, 0)

	g, err := graph.Build(a, graph.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.Equal(t, 2, g.VertexCount())

	b.failInput = 0
	err = g.Rebuild()
	assert.ErrorIs(t, err, errStub)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
}

// TestBuild_Stub runs the walker over a non-Dense implementation.
func TestBuild_Stub(t *testing.T) {
	a, b, c := newStub(1, 2), newStub(2, 1), newStub(1, 0)
	b.link(0, a, 0)
	b.link(1, a, 1)
	c.link(0, b, 0)

	g, err := graph.Build(c, graph.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 1, g.EndpointCount())

	ep := g.Endpoints()[0]
	assert.Equal(t, a.ID(), ep.Tensor.ID())
	assert.Equal(t, graph.Input, ep.Side)
	assert.Equal(t, "input", ep.Side.String())
	assert.Equal(t, "output", graph.Output.String())
}

// TestBuild_TypedNilPeer treats a typed nil pointer from a link query as an
// unset port.
func TestBuild_TypedNilPeer(t *testing.T) {
	a, b := newStub(1, 1), newStub(1, 1)
	a.typedNil, b.typedNil = true, true
	b.link(0, a, 0)

	var g *graph.Graph
	var err error
	require.NotPanics(t, func() {
		g, err = graph.Build(a, graph.WithLogger(quietLogger()))
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.EndpointCount())

	_, err = graph.Build((*stub)(nil))
	assert.ErrorIs(t, err, graph.ErrNilSeed)
	assert.False(t, g.HasVertex((*stub)(nil)))
}

func TestGraph_Iterators(t *testing.T) {
	d := newDiamond(t)
	g, err := graph.Build(d.t2, graph.WithLogger(quietLogger()))
	require.NoError(t, err)

	var nv, ne int
	for range g.AllVertices() {
		nv++
	}
	for e := range g.AllEdges() {
		assert.True(t, g.HasEdge(e))
		ne++
	}
	assert.Equal(t, g.VertexCount(), nv)
	assert.Equal(t, g.EdgeCount(), ne)

	vs := g.Vertices()
	for i := 1; i < len(vs); i++ {
		assert.Less(t, vs[i-1].ID().String(), vs[i].ID().String())
	}
}

func TestEdge_Equal(t *testing.T) {
	a, b := newStub(2, 2), newStub(2, 2)
	e := graph.Edge{Input: a, InputPort: 1, Output: b, OutputPort: 0}

	assert.True(t, e.Equal(graph.Edge{Input: a, InputPort: 1, Output: b, OutputPort: 0}))
	assert.False(t, e.Equal(graph.Edge{Input: a, InputPort: 0, Output: b, OutputPort: 0}))
	assert.False(t, e.Equal(graph.Edge{Input: a, InputPort: 1, Output: b, OutputPort: 1}))
	assert.False(t, e.Equal(graph.Edge{Input: b, InputPort: 1, Output: a, OutputPort: 0}))
	assert.Contains(t, e.String(), a.ID().String())
}
