package path

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgetachew/addis-routing/pkg/graph"
)

// gridFmi is a 3x3 grid with 100m edges plus one unreachable node (9).
//
//	0 - 1 - 2
//	|   |   |
//	3 - 4 - 5
//	|   |   |
//	6 - 7 - 8
//
// The coordinates space the nodes roughly 89m apart, so the great-circle
// estimate stays below the 100m edge weights.
const gridFmi = `10
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

// triangleFmi has a 250m direct arc between 0 and 2 plus a cheaper 200m
// detour via node 1.
const triangleFmi = `3
6
# nodes
0 9.0 38.7
1 9.0 38.7008
2 9.0 38.7016
# edges
0 1 100
1 0 100
1 2 100
2 1 100
0 2 250
2 0 250
`

func gridGraph(t *testing.T) graph.Graph {
	t.Helper()
	g, err := graph.NewAdjacencyArrayFromFmiString(gridFmi)
	require.NoError(t, err)
	return g
}

func triangleGraph(t *testing.T) graph.Graph {
	t.Helper()
	g, err := graph.NewAdjacencyArrayFromFmiString(triangleFmi)
	require.NoError(t, err)
	return g
}

// requireValidPath checks that p runs from start to goal over existing arcs.
func requireValidPath(t *testing.T, g graph.Graph, p Path, start, goal graph.NodeId) {
	t.Helper()
	require.NotEmpty(t, p)
	require.Equal(t, start, p[0])
	require.Equal(t, goal, p[len(p)-1])
	for i := 0; i < len(p)-1; i++ {
		_, ok := g.EdgeWeight(p[i], p[i+1])
		require.True(t, ok, "no arc from %d to %d", p[i], p[i+1])
	}
}

func requireDistinctPaths(t *testing.T, paths []Path) {
	t.Helper()
	for i := range paths {
		for j := i + 1; j < len(paths); j++ {
			require.False(t, paths[i].Equal(paths[j]), "paths %d and %d are identical", i, j)
		}
	}
}
