package core_test

import (
	"testing"

	"github.com/froseb/blossom-match/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_NegativeSize(t *testing.T) {
	_, err := core.NewGraph(-1)
	assert.ErrorIs(t, err, core.ErrNegativeSize)
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(0, 3), core.ErrVertexOutOfRange)
	assert.Equal(t, 0, g.NumEdges())
}

func TestAddEdge_SelfLoopIgnored(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 0))
	assert.Equal(t, 0, g.NumEdges())
	assert.Empty(t, g.Neighbors(0))
}

func TestAddEdge_DuplicateIgnored(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0))

	assert.Equal(t, 1, g.NumEdges())
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, []int{0}, g.Neighbors(1))
}

func TestNeighbors_PreservesInsertionOrder(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))

	assert.Equal(t, []int{3, 1, 2}, g.Neighbors(0))
	assert.Equal(t, 3, g.NumEdges())
}

func TestHasEdge(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(0, 5))
}

func TestNeighbors_OutOfRangeReturnsNil(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)

	assert.Nil(t, g.Neighbors(5))
	assert.Equal(t, 0, g.Degree(5))
}
