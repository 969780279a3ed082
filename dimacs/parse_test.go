package dimacs_test

import (
	"strings"
	"testing"

	"github.com/froseb/blossom-match/dimacs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FiveCycle(t *testing.T) {
	src := "c a comment line\np edge 5 5\ne 1 2\ne 2 3\ne 3 4\ne 4 5\ne 5 1\n"

	g, err := dimacs.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumNodes())
	assert.Equal(t, 5, g.NumEdges())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(4, 0))
}

func TestParse_IgnoresBlankLinesAndTrailingTokens(t *testing.T) {
	src := "p edge 2 1\n\ne 1 2 this is ignored\n"

	g, err := dimacs.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumEdges())
}

func TestParse_SelfLoopAndDuplicateTolerated(t *testing.T) {
	src := "p edge 2 3\ne 1 1\ne 1 2\ne 1 2\n"

	g, err := dimacs.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumEdges())
}

func TestParse_MissingHeader(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("e 1 2\n"))
	assert.ErrorIs(t, err, dimacs.ErrNoHeader)
}

func TestParse_DuplicateHeader(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge 2 0\np edge 2 0\n"))
	assert.ErrorIs(t, err, dimacs.ErrDuplicateHeader)
}

func TestParse_EdgeCountMismatch(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge 2 2\ne 1 2\n"))
	assert.ErrorIs(t, err, dimacs.ErrEdgeCountMismatch)
}

func TestParse_VertexOutOfRange(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge 2 1\ne 1 3\n"))
	var fe *dimacs.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 2, fe.Line)
}

func TestParse_MalformedHeader(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge notanumber 1\n"))
	var fe *dimacs.FormatError
	require.ErrorAs(t, err, &fe)
}

func TestParse_EmptyGraph(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader("p edge 0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, g.NumNodes())
}
