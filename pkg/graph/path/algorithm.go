package path

import (
	"context"
	"errors"
	"fmt"

	"github.com/mgetachew/addis-routing/pkg/graph"
)

// ErrUnknownNode is returned when a search is asked to start or end at a node
// the graph does not contain. This is a caller precondition violation, unlike
// the expected outcomes a SearchResult reports.
var ErrUnknownNode = errors.New("path: node not contained in the graph")

// ErrUnknownAlgorithm is returned by NewAlgorithm for unsupported names.
var ErrUnknownAlgorithm = errors.New("path: unknown search algorithm")

// SearchAlgorithm finds paths from start to goal on the graph it was built
// for. Implementations are synchronous and keep all working state per
// invocation, so one instance must not be shared by concurrent searches, but
// separate instances may search the same graph concurrently.
//
// Expected conditions (no path, violated constraint, exhausted budget) are
// reported through the SearchResult; the error is reserved for precondition
// violations and context cancellation.
type SearchAlgorithm interface {
	Find(ctx context.Context, start, goal graph.NodeId, constraints []Constraint, maxPaths int) (SearchResult, error)
	Name() string
}

// SearchKPIs collects diagnostic counters for the last search.
type SearchKPIs struct {
	NodesProcessed int // nodes taken from the frontier
	PqPops         int // pops performed on the priority queue (A* only)
	PqUpdates      int // pushes and updates on the priority queue (A* only)
	RelaxedEdges   int // edges relaxed or neighbor links followed
}

func (kpi *SearchKPIs) Reset() {
	*kpi = SearchKPIs{}
}

// NewAlgorithm creates the search algorithm with the given name for g.
// Supported names are "bfs", "dfs" and "astar".
func NewAlgorithm(name string, g graph.Graph) (SearchAlgorithm, error) {
	switch name {
	case "bfs":
		return NewBreadthFirst(g), nil
	case "dfs":
		return NewDepthFirst(g), nil
	case "astar":
		return NewAStar(g), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// checkSearchPreconditions validates the endpoints against the graph.
func checkSearchPreconditions(g graph.Graph, start, goal graph.NodeId) error {
	if !g.HasNode(start) {
		return fmt.Errorf("%w: start %d", ErrUnknownNode, start)
	}
	if !g.HasNode(goal) {
		return fmt.Errorf("%w: goal %d", ErrUnknownNode, goal)
	}
	return nil
}

// cancelled performs the per-expansion deadline check; searches honor a
// caller-enforced ceiling deterministically rather than best effort.
func cancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
