package path

import (
	"github.com/mgetachew/addis-routing/pkg/graph"
)

// DefaultSimilarityThreshold is the node-overlap ratio above which two paths
// are considered the same route.
const DefaultSimilarityThreshold = 0.8

// PathCost computes the total real-world cost of a path in meters.
//
// Consecutive pairs without a stored edge weight fall back to the
// great-circle distance between the node coordinates. Pairs whose data is
// entirely unavailable (a node id outside the graph) are skipped and
// contribute nothing; this leniency keeps cost annotation usable for
// visualization even with partial data and is intentional.
func PathCost(g graph.Graph, p Path) float64 {
	total := 0.0
	for i := 0; i < len(p)-1; i++ {
		if weight, ok := g.EdgeWeight(p[i], p[i+1]); ok {
			total += weight
			continue
		}
		if !g.HasNode(p[i]) || !g.HasNode(p[i+1]) {
			continue
		}
		total += g.GetNode(p[i]).Haversine(g.GetNode(p[i+1]))
	}
	return total
}

// PathStatistics summarizes a collection of paths.
type PathStatistics struct {
	Count    int     `json:"count"`
	AvgCost  float64 `json:"avgCost"`
	AvgSteps float64 `json:"avgSteps"`
	MinCost  float64 `json:"minCost"`
	MaxCost  float64 `json:"maxCost"`
	MinSteps int     `json:"minSteps"`
	MaxSteps int     `json:"maxSteps"`
}

// Statistics computes cost and step statistics over the given paths.
// An empty collection yields a zeroed record.
func Statistics(g graph.Graph, paths []Path) PathStatistics {
	if len(paths) == 0 {
		return PathStatistics{}
	}

	stats := PathStatistics{Count: len(paths)}
	costSum, stepSum := 0.0, 0
	for i, p := range paths {
		cost := PathCost(g, p)
		steps := p.Steps()
		costSum += cost
		stepSum += steps
		if i == 0 || cost < stats.MinCost {
			stats.MinCost = cost
		}
		if cost > stats.MaxCost {
			stats.MaxCost = cost
		}
		if i == 0 || steps < stats.MinSteps {
			stats.MinSteps = steps
		}
		if steps > stats.MaxSteps {
			stats.MaxSteps = steps
		}
	}
	stats.AvgCost = costSum / float64(len(paths))
	stats.AvgSteps = float64(stepSum) / float64(len(paths))
	return stats
}

// PathsAreSimilar reports whether two paths overlap in more than threshold of
// their nodes: |common| / max(|set(p1)|, |set(p2)|) > threshold.
//
// The heuristic decides whether a newly discovered path counts as a genuinely
// distinct alternative. It can misclassify structurally different paths as
// duplicates; callers needing strict distinctness should compare edge sets
// instead. The formula is kept as is for compatibility.
func PathsAreSimilar(p1, p2 Path, threshold float64) bool {
	if len(p2) == 0 {
		return false
	}

	set1 := make(map[graph.NodeId]struct{}, len(p1))
	for _, node := range p1 {
		set1[node] = struct{}{}
	}
	set2 := make(map[graph.NodeId]struct{}, len(p2))
	for _, node := range p2 {
		set2[node] = struct{}{}
	}

	common := 0
	for node := range set1 {
		if _, ok := set2[node]; ok {
			common++
		}
	}

	larger := len(set1)
	if len(set2) > larger {
		larger = len(set2)
	}
	return float64(common)/float64(larger) > threshold
}
