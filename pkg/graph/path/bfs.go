package path

import (
	"context"

	"github.com/mgetachew/addis-routing/pkg/graph"
	"github.com/mgetachew/addis-routing/pkg/slice"
)

// BreadthFirst finds hop-shortest paths on an unweighted view of the graph.
//
// The search moves through these states: expanding the frontier level by
// level, then either the goal is found, the frontier is exhausted, or the
// node budget is reached. A reached budget is a valid exhausted-budget
// outcome, not an error.
type BreadthFirst struct {
	g                   graph.Graph
	similarityThreshold float64
	kpis                SearchKPIs
}

func NewBreadthFirst(g graph.Graph) *BreadthFirst {
	return &BreadthFirst{g: g, similarityThreshold: DefaultSimilarityThreshold}
}

func (b *BreadthFirst) Name() string { return "bfs" }

// KPIs returns the diagnostic counters of the previous search.
func (b *BreadthFirst) KPIs() SearchKPIs { return b.kpis }

// Find computes the hop-shortest path from start to goal.
//
// Node-limit constraints are checked against the running nodes-processed
// counter on every dequeue. Distance and time constraints are evaluated once
// against the first goal path: if any fails, the whole search fails even
// though a hop-shortest path exists. This fail-closed policy is deliberate;
// finding the best path that satisfies the constraints would need a different
// search.
//
// With maxPaths > 1 the shortest-path enumerator supplies equal-length
// alternatives, filtered by the node-overlap similarity heuristic.
func (b *BreadthFirst) Find(ctx context.Context, start, goal graph.NodeId, constraints []Constraint, maxPaths int) (SearchResult, error) {
	if err := checkSearchPreconditions(b.g, start, goal); err != nil {
		return SearchResult{}, err
	}
	b.kpis.Reset()
	if maxPaths < 1 {
		maxPaths = 1
	}

	if start == goal {
		return sameLocationResult(start), nil
	}

	limit, limitMessage := nodeBudget(constraints)

	parent := make([]graph.NodeId, b.g.NodeCount())
	for i := range parent {
		parent[i] = -1
	}
	visited := slice.MakeFixedSizeSlice(b.g.NodeCount())
	visited.Add(start)
	visitOrder := []graph.NodeId{start}

	queue := []graph.NodeId{start}
	goalFound := false

	for len(queue) > 0 && !goalFound {
		if err := cancelled(ctx); err != nil {
			return SearchResult{}, err
		}

		current := queue[0]
		queue = queue[1:]
		b.kpis.NodesProcessed++

		if limit > 0 && b.kpis.NodesProcessed > limit {
			return SearchResult{
				Outcome: OutcomeBudgetExceeded,
				Visited: visitOrder,
				Message: limitMessage,
			}, nil
		}

		for _, neighbor := range b.g.GetNeighbors(current) {
			b.kpis.RelaxedEdges++
			if visited.Contains(neighbor) {
				continue
			}
			visited.Add(neighbor)
			visitOrder = append(visitOrder, neighbor)
			parent[neighbor] = current
			queue = append(queue, neighbor)

			if neighbor == goal {
				goalFound = true
				break
			}
		}
	}

	if !goalFound {
		return SearchResult{
			Outcome: OutcomeNoPath,
			Visited: visitOrder,
			Message: "no path found between the given nodes",
		}, nil
	}

	primary := reconstructPath(parent, goal)
	candidateConstraints := pathConstraints(constraints)
	if ok, message := ValidateAll(candidateConstraints, primary, b.g); !ok {
		return SearchResult{
			Outcome: OutcomeConstraintViolated,
			Visited: visitOrder,
			Message: message,
		}, nil
	}

	result := SearchResult{
		Success:     true,
		Outcome:     OutcomeFound,
		PrimaryPath: primary,
		Visited:     visitOrder,
	}

	if maxPaths > 1 {
		alternatives, err := b.findAlternatives(ctx, start, goal, primary, candidateConstraints, maxPaths-1)
		if err != nil {
			return SearchResult{}, err
		}
		result.AlternativePaths = alternatives
	}

	return result, nil
}

// findAlternatives collects up to limit equal-length paths that differ from
// the primary path and from each other.
func (b *BreadthFirst) findAlternatives(ctx context.Context, start, goal graph.NodeId, primary Path, constraints []Constraint, limit int) ([]Path, error) {
	stream, err := NewShortestPathEnumerator(b.g).Stream(ctx, start, goal, 0)
	if err != nil {
		return nil, err
	}

	kept := []Path{primary}
	alternatives := make([]Path, 0, limit)
	for len(alternatives) < limit {
		candidate, ok := stream.Next()
		if !ok {
			break
		}
		if b.isDuplicate(candidate, kept) {
			continue
		}
		if ok, _ := ValidateAll(constraints, candidate, b.g); !ok {
			continue
		}
		kept = append(kept, candidate)
		alternatives = append(alternatives, candidate)
	}
	return alternatives, nil
}

func (b *BreadthFirst) isDuplicate(candidate Path, kept []Path) bool {
	for _, p := range kept {
		if candidate.Equal(p) || PathsAreSimilar(candidate, p, b.similarityThreshold) {
			return true
		}
	}
	return false
}

// reconstructPath walks the parent links from goal back to the root and
// reverses the result into start -> goal order.
func reconstructPath(parent []graph.NodeId, goal graph.NodeId) Path {
	path := make(Path, 0)
	for node := goal; node != -1; node = parent[node] {
		path = append(path, node)
	}
	slice.ReverseInPlace(path)
	return path
}
