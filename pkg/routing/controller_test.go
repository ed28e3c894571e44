package routing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	geo "github.com/mgetachew/addis-routing/pkg/geometry"
	"github.com/mgetachew/addis-routing/pkg/graph"
	"github.com/mgetachew/addis-routing/pkg/graph/path"
	"github.com/mgetachew/addis-routing/pkg/location"
)

// testFmi is a 3x3 grid with 100m edges plus one unreachable node (9).
const testFmi = `10
24
# nodes
0 9.0 38.7
1 9.0 38.7008
2 9.0 38.7016
3 8.9992 38.7
4 8.9992 38.7008
5 8.9992 38.7016
6 8.9984 38.7
7 8.9984 38.7008
8 8.9984 38.7016
9 9.1 38.9
# edges
0 1 100
1 0 100
1 2 100
2 1 100
3 4 100
4 3 100
4 5 100
5 4 100
6 7 100
7 6 100
7 8 100
8 7 100
0 3 100
3 0 100
3 6 100
6 3 100
1 4 100
4 1 100
4 7 100
7 4 100
2 5 100
5 2 100
5 8 100
8 5 100
`

func testController(t *testing.T) *Controller {
	t.Helper()
	g, err := graph.NewAdjacencyArrayFromFmiString(testFmi)
	require.NoError(t, err)

	resolver := location.NewTableResolver(g, map[string]geo.Point{
		"Alpha": geo.MakePoint(9.0, 38.7),       // node 0
		"Omega": geo.MakePoint(8.9984, 38.7016), // node 8
		"Isle":  geo.MakePoint(9.1, 38.9),       // node 9, unreachable
	})
	return NewController(g, resolver, nil)
}

func TestFindRoute(t *testing.T) {
	c := testController(t)

	route, err := c.FindRoute(context.Background(), Request{Start: "Alpha", Goal: "Omega"})
	require.NoError(t, err)

	assert.True(t, route.Success)
	assert.Equal(t, "found", route.Outcome)
	assert.Equal(t, "bfs", route.Algorithm)
	assert.Equal(t, 0, route.StartNode)
	assert.Equal(t, 8, route.GoalNode)
	require.NotEmpty(t, route.Paths)
	assert.Equal(t, 4, route.Paths[0].Steps())
	require.NotEmpty(t, route.PathCosts)
	assert.InDelta(t, 400.0, route.PathCosts[0], 1e-6)
	assert.Equal(t, len(route.Paths), route.Statistics.Count)
}

func TestFindRouteByCoordinate(t *testing.T) {
	c := testController(t)

	route, err := c.FindRoute(context.Background(), Request{Start: "9.0,38.7", Goal: "Omega", Algorithm: "astar"})
	require.NoError(t, err)

	assert.True(t, route.Success)
	assert.Equal(t, "astar", route.Algorithm)
	assert.Equal(t, 0, route.StartNode)
}

func TestFindRouteUnknownLocation(t *testing.T) {
	c := testController(t)

	route, err := c.FindRoute(context.Background(), Request{Start: "Nowhere", Goal: "Omega"})
	require.NoError(t, err)

	assert.False(t, route.Success)
	assert.Equal(t, "location-unresolvable", route.Outcome)
	assert.Contains(t, route.Message, "could not find location")
	assert.Empty(t, route.Paths)
}

func TestFindRouteUnknownAlgorithm(t *testing.T) {
	c := testController(t)

	_, err := c.FindRoute(context.Background(), Request{Start: "Alpha", Goal: "Omega", Algorithm: "dijkstra"})
	require.ErrorIs(t, err, path.ErrUnknownAlgorithm)
}

func TestFindRouteNoPath(t *testing.T) {
	c := testController(t)

	route, err := c.FindRoute(context.Background(), Request{Start: "Alpha", Goal: "Isle"})
	require.NoError(t, err)

	assert.False(t, route.Success)
	assert.Equal(t, "no-path", route.Outcome)
}

func TestFindRouteConstraintsApplied(t *testing.T) {
	c := testController(t)

	route, err := c.FindRoute(context.Background(), Request{
		Start:       "Alpha",
		Goal:        "Omega",
		MaxNodes:    100,
		MaxDistance: 1000,
		MaxTime:     600,
	})
	require.NoError(t, err)

	assert.True(t, route.Success)
	assert.Len(t, route.ConstraintsApplied, 3)
}

func TestFindRouteConstraintViolated(t *testing.T) {
	c := testController(t)

	route, err := c.FindRoute(context.Background(), Request{
		Start:       "Alpha",
		Goal:        "Omega",
		MaxDistance: 300,
	})
	require.NoError(t, err)

	assert.False(t, route.Success)
	assert.Equal(t, "constraint-violated", route.Outcome)
	assert.Equal(t, "path distance (400m) exceeds limit (300m)", route.Message)
}

func TestFindRouteDepthFirstFallback(t *testing.T) {
	c := testController(t)

	// every candidate needs at least 5 nodes, so the limit rejects them all
	blocked, err := c.FindRoute(context.Background(), Request{
		Start:     "Alpha",
		Goal:      "Omega",
		Algorithm: "dfs",
		MaxNodes:  4,
	})
	require.NoError(t, err)
	assert.False(t, blocked.Success)
	assert.Empty(t, blocked.Warning)

	relaxed, err := c.FindRoute(context.Background(), Request{
		Start:         "Alpha",
		Goal:          "Omega",
		Algorithm:     "dfs",
		MaxNodes:      4,
		AllowFallback: true,
	})
	require.NoError(t, err)
	assert.True(t, relaxed.Success)
	assert.Contains(t, relaxed.Warning, "constraints were too restrictive")
	assert.NotEmpty(t, relaxed.Paths)
}

func TestFindRouteMultiplePaths(t *testing.T) {
	c := testController(t)

	route, err := c.FindRoute(context.Background(), Request{Start: "Alpha", Goal: "Omega", MaxPaths: 5})
	require.NoError(t, err)

	require.True(t, route.Success)
	assert.Len(t, route.Paths, 5)
	assert.Len(t, route.PathCosts, 5)
}

func TestFindRouteCancelled(t *testing.T) {
	c := testController(t)
	c.SetTimeout(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FindRoute(ctx, Request{Start: "Alpha", Goal: "Omega"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestEnumerateShortest(t *testing.T) {
	c := testController(t)

	route, err := c.EnumerateShortest(context.Background(), Request{Start: "Alpha", Goal: "Omega", MaxPaths: 10})
	require.NoError(t, err)

	require.True(t, route.Success)
	assert.Equal(t, "enumerate", route.Algorithm)
	assert.Len(t, route.Paths, 6)
	for _, p := range route.Paths {
		assert.Equal(t, 4, p.Steps())
	}
}

func TestEnumerateShortestNoPath(t *testing.T) {
	c := testController(t)

	route, err := c.EnumerateShortest(context.Background(), Request{Start: "Alpha", Goal: "Isle"})
	require.NoError(t, err)

	assert.False(t, route.Success)
	assert.Equal(t, "no-path", route.Outcome)
}

func TestRouteFeatureCollection(t *testing.T) {
	c := testController(t)

	route, err := c.FindRoute(context.Background(), Request{Start: "Alpha", Goal: "Omega", MaxPaths: 2})
	require.NoError(t, err)
	require.True(t, route.Success)

	fc := RouteFeatureCollection(c.Graph(), route)
	require.NotNil(t, fc)

	roles := make(map[string]int)
	for _, feature := range fc.Features {
		role, _ := feature.Properties["role"].(string)
		roles[role]++
	}
	assert.Equal(t, 1, roles["primary"])
	assert.Equal(t, 1, roles["alternative"])
	assert.Equal(t, 1, roles["start"])
	assert.Equal(t, 1, roles["goal"])
	assert.Equal(t, 1, roles["visited"])
}
