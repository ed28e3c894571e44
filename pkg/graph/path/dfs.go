package path

import (
	"context"

	"github.com/mgetachew/addis-routing/pkg/graph"
	"github.com/mgetachew/addis-routing/pkg/slice"
)

// DepthFirst enumerates cycle-free paths from start to goal. The paths are
// candidates in exploration order, independent of whether they are
// length-optimal.
//
// The exploration uses an explicit stack to stay stack-safe on deep graphs.
type DepthFirst struct {
	g    graph.Graph
	kpis SearchKPIs
}

func NewDepthFirst(g graph.Graph) *DepthFirst {
	return &DepthFirst{g: g}
}

func (d *DepthFirst) Name() string { return "dfs" }

// KPIs returns the diagnostic counters of the previous search.
func (d *DepthFirst) KPIs() SearchKPIs { return d.kpis }

type dfsFrame struct {
	node graph.NodeId
	path Path // path from start up to and including node
}

// Find collects up to maxPaths goal paths that pass all constraints.
// Candidates rejected by a constraint do not count against maxPaths. When no
// candidate passes, the result is a constraint violation carrying the first
// failure message; callers wanting the documented fallback to the
// unconstrained candidate set re-run Find without constraints and attach an
// explicit warning.
func (d *DepthFirst) Find(ctx context.Context, start, goal graph.NodeId, constraints []Constraint, maxPaths int) (SearchResult, error) {
	if err := checkSearchPreconditions(d.g, start, goal); err != nil {
		return SearchResult{}, err
	}
	d.kpis.Reset()
	if maxPaths < 1 {
		maxPaths = 1
	}

	if start == goal {
		return sameLocationResult(start), nil
	}

	visited := slice.MakeFixedSizeSlice(d.g.NodeCount())
	visitOrder := make([]graph.NodeId, 0)

	stack := []dfsFrame{{node: start, path: Path{start}}}
	accepted := make([]Path, 0, maxPaths)
	candidatesSeen := false
	firstFailure := ""

	for len(stack) > 0 && len(accepted) < maxPaths {
		if err := cancelled(ctx); err != nil {
			return SearchResult{}, err
		}

		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		d.kpis.NodesProcessed++

		if !visited.Contains(frame.node) {
			visited.Add(frame.node)
			visitOrder = append(visitOrder, frame.node)
		}

		if frame.node == goal {
			candidatesSeen = true
			if ok, message := ValidateAll(constraints, frame.path, d.g); ok {
				accepted = append(accepted, frame.path)
			} else if firstFailure == "" {
				firstFailure = message
			}
			continue
		}

		neighbors := d.g.GetNeighbors(frame.node)
		// push in reverse so the first neighbor is explored first
		for i := len(neighbors) - 1; i >= 0; i-- {
			neighbor := neighbors[i]
			d.kpis.RelaxedEdges++
			if slice.Contains(frame.path, neighbor) {
				// no node repeats within a single path
				continue
			}
			next := frame.path.Clone()
			next = append(next, neighbor)
			stack = append(stack, dfsFrame{node: neighbor, path: next})
		}
	}

	if len(accepted) == 0 {
		if candidatesSeen {
			return SearchResult{
				Outcome: OutcomeConstraintViolated,
				Visited: visitOrder,
				Message: firstFailure,
			}, nil
		}
		return SearchResult{
			Outcome: OutcomeNoPath,
			Visited: visitOrder,
			Message: "no path found between the given nodes",
		}, nil
	}

	return SearchResult{
		Success:          true,
		Outcome:          OutcomeFound,
		PrimaryPath:      accepted[0],
		AlternativePaths: accepted[1:],
		Visited:          visitOrder,
	}, nil
}
