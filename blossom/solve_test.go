package blossom_test

import (
	"testing"

	"github.com/froseb/blossom-match/blossom"
	"github.com/froseb/blossom-match/core"
	"github.com/froseb/blossom-match/internal/testgraphs"
	"github.com/froseb/blossom-match/matching"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValidMaximumMatching checks the two universal properties every
// Solve result must satisfy: every matched edge is an edge of g, and the
// matching has exactly the expected size.
func assertValidMaximumMatching(t *testing.T, g *core.Graph, m *matching.Matching, wantSize int) {
	t.Helper()
	assert.True(t, testgraphs.IsValidMatching(g, m), "matching contains an edge not present in the graph")
	assert.Equal(t, wantSize, m.Size())
}

func TestSolve_FiveCycle(t *testing.T) {
	g := testgraphs.FiveCycle()
	m := blossom.Solve(g)
	assertValidMaximumMatching(t, g, m, 2)
	assert.Len(t, m.Exposed(), 1)
}

func TestSolve_FiveCycleWithPendant(t *testing.T) {
	g := testgraphs.FiveCycleWithPendant()
	m := blossom.Solve(g)
	assertValidMaximumMatching(t, g, m, 3)
	assert.Empty(t, m.Exposed())
}

func TestSolve_NestedBlossoms(t *testing.T) {
	g := testgraphs.NestedBlossoms()
	m := blossom.Solve(g)
	assertValidMaximumMatching(t, g, m, 3)
	assert.Len(t, m.Exposed(), 1)
}

func TestSolve_Petersen(t *testing.T) {
	g := testgraphs.Petersen()
	m := blossom.Solve(g)
	assertValidMaximumMatching(t, g, m, 5)
	assert.Empty(t, m.Exposed())
}

func TestSolve_TwoDisjointTriangles(t *testing.T) {
	g := testgraphs.TwoDisjointTriangles()
	m := blossom.Solve(g)
	assertValidMaximumMatching(t, g, m, 2)
	assert.Len(t, m.Exposed(), 2)
}

func TestSolve_BipartiteK33(t *testing.T) {
	g := testgraphs.BipartiteK33()
	m := blossom.Solve(g)
	assertValidMaximumMatching(t, g, m, 3)
	assert.Empty(t, m.Exposed())
}

func TestSolve_EmptyGraph(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)

	m := blossom.Solve(g)
	assertValidMaximumMatching(t, g, m, 0)
}

func TestSolve_IsolatedVertices(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)

	m := blossom.Solve(g)
	assertValidMaximumMatching(t, g, m, 0)
	assert.Len(t, m.Exposed(), 4)
}

func TestSolve_SingleEdge(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	m := blossom.Solve(g)
	assertValidMaximumMatching(t, g, m, 1)
}

func TestSolve_Triangle(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))

	m := blossom.Solve(g)
	assertValidMaximumMatching(t, g, m, 1)
}

func TestSolve_K4(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			require.NoError(t, g.AddEdge(u, v))
		}
	}

	m := blossom.Solve(g)
	assertValidMaximumMatching(t, g, m, 2)
}

func TestSolve_OddPath(t *testing.T) {
	// 0-1-2-3-4, a path on 5 vertices: maximum matching has size 2.
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 4))

	m := blossom.Solve(g)
	assertValidMaximumMatching(t, g, m, 2)
}

func TestSolve_Deterministic(t *testing.T) {
	g := testgraphs.NestedBlossoms()

	first := blossom.Solve(g)
	second := blossom.Solve(g)

	if diff := cmp.Diff(first.Edges(), second.Edges()); diff != "" {
		t.Errorf("Solve is not deterministic across repeated runs (-first +second):\n%s", diff)
	}
}

func TestSolve_OnlyInputEdges(t *testing.T) {
	g := testgraphs.Petersen()
	m := blossom.Solve(g)

	for _, e := range m.Edges() {
		assert.True(t, g.HasEdge(e.From, e.To))
	}
}
