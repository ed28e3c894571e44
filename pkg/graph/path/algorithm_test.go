package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlgorithm(t *testing.T) {
	g := gridGraph(t)

	for _, name := range []string{"bfs", "dfs", "astar"} {
		algorithm, err := NewAlgorithm(name, g)
		require.NoError(t, err)
		assert.Equal(t, name, algorithm.Name())
	}
}

func TestNewAlgorithmUnknown(t *testing.T) {
	g := gridGraph(t)

	_, err := NewAlgorithm("dijkstra", g)
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "found", OutcomeFound.String())
	assert.Equal(t, "same-location", OutcomeSameLocation.String())
	assert.Equal(t, "no-path", OutcomeNoPath.String())
	assert.Equal(t, "constraint-violated", OutcomeConstraintViolated.String())
	assert.Equal(t, "budget-exceeded", OutcomeBudgetExceeded.String())
}

func TestSearchResultPaths(t *testing.T) {
	empty := SearchResult{}
	assert.Nil(t, empty.Paths())

	result := SearchResult{
		PrimaryPath:      Path{0, 1},
		AlternativePaths: []Path{{0, 2}},
	}
	assert.Equal(t, []Path{{0, 1}, {0, 2}}, result.Paths())
}
