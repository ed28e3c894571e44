package path

import (
	"github.com/mgetachew/addis-routing/pkg/graph"
)

// Path is a non-empty sequence of node ids where every consecutive pair is an
// edge in the graph. The first element is the start, the last the goal; a
// one-node path means start and goal coincide.
type Path []graph.NodeId

func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p Path) Clone() Path {
	clone := make(Path, len(p))
	copy(clone, p)
	return clone
}

// Outcome classifies how a search ended. All outcomes are expected domain
// results, not errors.
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeSameLocation
	OutcomeNoPath
	OutcomeConstraintViolated
	OutcomeBudgetExceeded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeSameLocation:
		return "same-location"
	case OutcomeNoPath:
		return "no-path"
	case OutcomeConstraintViolated:
		return "constraint-violated"
	case OutcomeBudgetExceeded:
		return "budget-exceeded"
	}
	return "invalid"
}

// SearchResult is the outcome of one search invocation.
//
// If Success is true, PrimaryPath is non-empty and satisfies every constraint
// the search was given. AlternativePaths are kept in discovery order. Visited
// holds the nodes the algorithm expanded, also in discovery order; it exists
// for diagnostics and visualization only and carries no correctness meaning.
type SearchResult struct {
	Success          bool
	Outcome          Outcome
	PrimaryPath      Path
	AlternativePaths []Path
	Visited          []graph.NodeId
	Message          string
}

// Paths returns the primary path followed by the alternatives.
func (r SearchResult) Paths() []Path {
	if len(r.PrimaryPath) == 0 {
		return nil
	}
	paths := make([]Path, 0, 1+len(r.AlternativePaths))
	paths = append(paths, r.PrimaryPath)
	paths = append(paths, r.AlternativePaths...)
	return paths
}

func sameLocationResult(node graph.NodeId) SearchResult {
	return SearchResult{
		Success:     true,
		Outcome:     OutcomeSameLocation,
		PrimaryPath: Path{node},
		Visited:     []graph.NodeId{node},
		Message:     "start and goal are the same location",
	}
}
