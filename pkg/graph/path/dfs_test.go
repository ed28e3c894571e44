package path

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepthFirstFindsPath(t *testing.T) {
	g := gridGraph(t)
	dfs := NewDepthFirst(g)

	result, err := dfs.Find(context.Background(), 0, 8, nil, 1)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, OutcomeFound, result.Outcome)
	requireValidPath(t, g, result.PrimaryPath, 0, 8)
}

func TestDepthFirstPathsAreCycleFree(t *testing.T) {
	g := gridGraph(t)
	dfs := NewDepthFirst(g)

	result, err := dfs.Find(context.Background(), 0, 8, nil, 10)
	require.NoError(t, err)
	require.True(t, result.Success)

	for _, p := range result.Paths() {
		seen := make(map[int]bool, len(p))
		for _, node := range p {
			require.False(t, seen[node], "node %d repeats in %v", node, p)
			seen[node] = true
		}
	}
}

func TestDepthFirstCollectsMultiplePaths(t *testing.T) {
	g := gridGraph(t)
	dfs := NewDepthFirst(g)

	result, err := dfs.Find(context.Background(), 0, 8, nil, 4)
	require.NoError(t, err)
	require.True(t, result.Success)

	paths := result.Paths()
	assert.Len(t, paths, 4)
	requireDistinctPaths(t, paths)
	for _, p := range paths {
		requireValidPath(t, g, p, 0, 8)
	}
}

func TestDepthFirstSameLocation(t *testing.T) {
	g := gridGraph(t)
	dfs := NewDepthFirst(g)

	result, err := dfs.Find(context.Background(), 2, 2, nil, 1)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, OutcomeSameLocation, result.Outcome)
	assert.Equal(t, Path{2}, result.PrimaryPath)
}

func TestDepthFirstNoPath(t *testing.T) {
	g := gridGraph(t)
	dfs := NewDepthFirst(g)

	result, err := dfs.Find(context.Background(), 0, 9, nil, 1)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, OutcomeNoPath, result.Outcome)
}

func TestDepthFirstConstraintRejectsAllCandidates(t *testing.T) {
	g := gridGraph(t)
	dfs := NewDepthFirst(g)

	// every path from corner to corner needs at least 5 nodes
	result, err := dfs.Find(context.Background(), 0, 8, []Constraint{NewNodeLimitConstraint(4)}, 3)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, OutcomeConstraintViolated, result.Outcome)
	assert.Equal(t, "maximum node limit (4) reached", result.Message)
}

func TestDepthFirstRejectedCandidatesDoNotCount(t *testing.T) {
	g := gridGraph(t)
	dfs := NewDepthFirst(g)

	// only the 5-node candidates pass, longer detours are rejected but the
	// search keeps going until enough passing paths are found
	result, err := dfs.Find(context.Background(), 0, 8, []Constraint{NewNodeLimitConstraint(5)}, 3)
	require.NoError(t, err)
	require.True(t, result.Success)

	paths := result.Paths()
	assert.Len(t, paths, 3)
	for _, p := range paths {
		assert.LessOrEqual(t, len(p), 5)
	}
}

func TestDepthFirstCancelled(t *testing.T) {
	g := gridGraph(t)
	dfs := NewDepthFirst(g)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.Find(ctx, 0, 8, nil, 1)
	require.ErrorIs(t, err, context.Canceled)
}
