package path

import (
	"context"
	"math"

	"github.com/mgetachew/addis-routing/pkg/graph"
	"github.com/mgetachew/addis-routing/pkg/queue"
	"github.com/mgetachew/addis-routing/pkg/slice"
)

// costEpsilon absorbs floating point noise when comparing path costs.
const costEpsilon = 1e-9

// implements queue.Priorizable
type aStarItem struct {
	nodeId    graph.NodeId
	distance  float64 // accumulated cost from the origin
	heuristic float64 // weighted estimate of the remaining cost
	path      Path    // the path from the origin up to and including nodeId
	index     int     // internal heap usage
}

func newAStarItem(nodeId graph.NodeId, distance, heuristic float64, path Path) *aStarItem {
	return &aStarItem{nodeId: nodeId, distance: distance, heuristic: heuristic, path: path, index: -1}
}

func (item *aStarItem) Priority() float64 { return item.distance + item.heuristic }

// Tiebreak prefers the deeper confirmed cost on equal f.
func (item *aStarItem) Tiebreak() float64 { return item.distance }
func (item *aStarItem) Index() int        { return item.index }
func (item *aStarItem) SetIndex(i int)    { item.index = i }

// AStar is a heuristic guided search over the weighted graph. The open set is
// ordered by f = g + w*h where h is the great-circle distance to the goal;
// with w <= 1.0 the heuristic never overestimates, so the first goal pop is
// cost-optimal.
type AStar struct {
	g                   graph.Graph
	heuristicWeight     float64
	similarityThreshold float64
	kpis                SearchKPIs
}

func NewAStar(g graph.Graph) *AStar {
	return &AStar{g: g, heuristicWeight: 1.0, similarityThreshold: DefaultSimilarityThreshold}
}

func (a *AStar) Name() string { return "astar" }

// SetHeuristicWeight scales the heuristic term. Weights above 1.0 trade
// optimality for speed.
func (a *AStar) SetHeuristicWeight(weight float64) {
	a.heuristicWeight = weight
}

// KPIs returns the diagnostic counters of the previous search.
func (a *AStar) KPIs() SearchKPIs { return a.kpis }

func (a *AStar) heuristicValue(node, goal graph.NodeId) float64 {
	return a.heuristicWeight * a.g.GetNode(node).Haversine(a.g.GetNode(goal))
}

// Find computes up to maxPaths minimal-cost paths from start to goal.
//
// The node-limit constraint is checked per expansion against the pop counter;
// distance and time constraints are evaluated on each completed path. A
// constraint failure on the first (optimal) path fails the whole search, the
// same fail-closed policy breadth-first search applies. Additional paths are
// collected by continuing the expansion while the f bound still equals the
// optimal cost; near-duplicates are dropped by the node-overlap heuristic.
func (a *AStar) Find(ctx context.Context, start, goal graph.NodeId, constraints []Constraint, maxPaths int) (SearchResult, error) {
	if err := checkSearchPreconditions(a.g, start, goal); err != nil {
		return SearchResult{}, err
	}
	a.kpis.Reset()
	if maxPaths < 1 {
		maxPaths = 1
	}

	if start == goal {
		return sameLocationResult(start), nil
	}

	limit, limitMessage := nodeBudget(constraints)
	candidateConstraints := pathConstraints(constraints)

	// tentative best-known cost per node, only binding when a single path is
	// requested; equal-cost alternatives need to pass through nodes at a
	// worse g
	bestKnown := make([]float64, a.g.NodeCount())
	for i := range bestKnown {
		bestKnown[i] = math.Inf(1)
	}
	bestKnown[start] = 0

	visited := slice.MakeFixedSizeSlice(a.g.NodeCount())
	visitOrder := make([]graph.NodeId, 0)

	open := queue.NewMinHeap[*aStarItem](nil)
	open.Push(newAStarItem(start, 0, a.heuristicValue(start, goal), Path{start}))
	a.kpis.PqUpdates++

	collected := make([]Path, 0, maxPaths)
	bestCost := math.Inf(1)
	haveBest := false

	for open.Len() > 0 {
		if err := cancelled(ctx); err != nil {
			return SearchResult{}, err
		}

		item := open.Pop()
		a.kpis.PqPops++
		a.kpis.NodesProcessed++

		if limit > 0 && a.kpis.NodesProcessed > limit {
			if haveBest {
				break
			}
			return SearchResult{
				Outcome: OutcomeBudgetExceeded,
				Visited: visitOrder,
				Message: limitMessage,
			}, nil
		}

		if !visited.Contains(item.nodeId) {
			visited.Add(item.nodeId)
			visitOrder = append(visitOrder, item.nodeId)
		}

		if haveBest && item.Priority() > bestCost+costEpsilon {
			// every remaining item completes at a higher cost
			break
		}

		if item.nodeId == goal {
			if !haveBest {
				if ok, message := ValidateAll(candidateConstraints, item.path, a.g); !ok {
					return SearchResult{
						Outcome: OutcomeConstraintViolated,
						Visited: visitOrder,
						Message: message,
					}, nil
				}
				bestCost = item.distance
				haveBest = true
				collected = append(collected, item.path)
			} else if item.distance <= bestCost+costEpsilon && !a.isDuplicate(item.path, collected) {
				if ok, _ := ValidateAll(candidateConstraints, item.path, a.g); ok {
					collected = append(collected, item.path)
				}
			}
			if len(collected) >= maxPaths {
				break
			}
			continue
		}

		for _, arc := range a.g.GetArcsFrom(item.nodeId) {
			a.kpis.RelaxedEdges++
			successor := arc.Destination()
			if slice.Contains(item.path, successor) {
				// keep paths cycle-free
				continue
			}

			tentative := item.distance + arc.Cost()
			if maxPaths == 1 {
				if tentative >= bestKnown[successor] {
					continue
				}
				bestKnown[successor] = tentative
			}

			heuristic := a.heuristicValue(successor, goal)
			if haveBest && tentative+heuristic > bestCost+costEpsilon {
				continue
			}

			next := item.path.Clone()
			next = append(next, successor)
			open.Push(newAStarItem(successor, tentative, heuristic, next))
			a.kpis.PqUpdates++
		}
	}

	if len(collected) == 0 {
		return SearchResult{
			Outcome: OutcomeNoPath,
			Visited: visitOrder,
			Message: "no path found between the given nodes",
		}, nil
	}

	return SearchResult{
		Success:          true,
		Outcome:          OutcomeFound,
		PrimaryPath:      collected[0],
		AlternativePaths: collected[1:],
		Visited:          visitOrder,
	}, nil
}

func (a *AStar) isDuplicate(candidate Path, kept []Path) bool {
	for _, p := range kept {
		if candidate.Equal(p) || PathsAreSimilar(candidate, p, a.similarityThreshold) {
			return true
		}
	}
	return false
}
