package path

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreadthFirstFindsHopShortestPath(t *testing.T) {
	g := gridGraph(t)
	bfs := NewBreadthFirst(g)

	result, err := bfs.Find(context.Background(), 0, 8, nil, 1)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, OutcomeFound, result.Outcome)
	assert.Equal(t, 4, result.PrimaryPath.Steps())
	requireValidPath(t, g, result.PrimaryPath, 0, 8)
	assert.NotEmpty(t, result.Visited)
	assert.Equal(t, 0, result.Visited[0])
}

func TestBreadthFirstSameLocation(t *testing.T) {
	g := gridGraph(t)
	bfs := NewBreadthFirst(g)

	result, err := bfs.Find(context.Background(), 4, 4, nil, 1)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, OutcomeSameLocation, result.Outcome)
	assert.Equal(t, Path{4}, result.PrimaryPath)
}

func TestBreadthFirstNoPath(t *testing.T) {
	g := gridGraph(t)
	bfs := NewBreadthFirst(g)

	result, err := bfs.Find(context.Background(), 0, 9, nil, 1)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, OutcomeNoPath, result.Outcome)
	assert.Empty(t, result.PrimaryPath)
	assert.NotEmpty(t, result.Visited)
}

func TestBreadthFirstUnknownNode(t *testing.T) {
	g := gridGraph(t)
	bfs := NewBreadthFirst(g)

	_, err := bfs.Find(context.Background(), 0, 42, nil, 1)
	require.ErrorIs(t, err, ErrUnknownNode)

	_, err = bfs.Find(context.Background(), -1, 8, nil, 1)
	require.ErrorIs(t, err, ErrUnknownNode)
}

func TestBreadthFirstNodeBudget(t *testing.T) {
	g := gridGraph(t)
	bfs := NewBreadthFirst(g)

	result, err := bfs.Find(context.Background(), 0, 8, []Constraint{NewNodeLimitConstraint(2)}, 1)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, OutcomeBudgetExceeded, result.Outcome)
	assert.Equal(t, "maximum node limit (2) reached", result.Message)
	assert.NotEmpty(t, result.Visited)
}

func TestBreadthFirstFailsClosedOnDistance(t *testing.T) {
	g := gridGraph(t)
	bfs := NewBreadthFirst(g)

	// the hop-shortest path is 400m, the limit below that
	result, err := bfs.Find(context.Background(), 0, 8, []Constraint{NewDistanceConstraint(300)}, 1)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, OutcomeConstraintViolated, result.Outcome)
	assert.Equal(t, "path distance (400m) exceeds limit (300m)", result.Message)
}

func TestBreadthFirstCollectsAlternatives(t *testing.T) {
	g := gridGraph(t)
	bfs := NewBreadthFirst(g)

	result, err := bfs.Find(context.Background(), 0, 8, nil, 5)
	require.NoError(t, err)
	require.True(t, result.Success)

	paths := result.Paths()
	assert.Len(t, paths, 5)
	requireDistinctPaths(t, paths)
	for _, p := range paths {
		assert.Equal(t, 4, p.Steps())
		requireValidPath(t, g, p, 0, 8)
	}
}

func TestBreadthFirstAlternativesRespectConstraints(t *testing.T) {
	g := gridGraph(t)
	bfs := NewBreadthFirst(g)

	// every equal-length path measures 400m, so the limit admits all of them
	result, err := bfs.Find(context.Background(), 0, 8, []Constraint{NewDistanceConstraint(450)}, 3)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Len(t, result.Paths(), 3)
}

func TestBreadthFirstCancelled(t *testing.T) {
	g := gridGraph(t)
	bfs := NewBreadthFirst(g)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.Find(ctx, 0, 8, nil, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBreadthFirstKPIs(t *testing.T) {
	g := gridGraph(t)
	bfs := NewBreadthFirst(g)

	_, err := bfs.Find(context.Background(), 0, 8, nil, 1)
	require.NoError(t, err)

	kpis := bfs.KPIs()
	assert.Greater(t, kpis.NodesProcessed, 0)
	assert.Greater(t, kpis.RelaxedEdges, 0)
}
