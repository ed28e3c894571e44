package path

import (
	"fmt"

	"github.com/mgetachew/addis-routing/pkg/graph"
)

// Constraint validates a completed path against a rule. Implementations are
// stateless across calls and may only carry immutable configuration, so a
// single constraint can be shared by concurrent searches.
type Constraint interface {
	// Validate reports whether the path satisfies the constraint. When it
	// does not, the returned message explains why.
	Validate(p Path, g graph.Graph) (bool, string)
	// Describe returns a human readable summary of the configured rule.
	Describe() string
}

// NodeBudget is implemented by constraints that bound the search itself
// rather than the returned path. Algorithms consult it against their running
// nodes-processed counter on every expansion.
type NodeBudget interface {
	MaxNodes() int
}

// ValidateAll runs the constraints in list order and returns the message of
// the first failure.
func ValidateAll(constraints []Constraint, p Path, g graph.Graph) (bool, string) {
	for _, c := range constraints {
		if ok, message := c.Validate(p, g); !ok {
			return false, message
		}
	}
	return true, ""
}

// Describe returns the descriptions of all constraints in list order.
func Describe(constraints []Constraint) []string {
	descriptions := make([]string, len(constraints))
	for i, c := range constraints {
		descriptions[i] = c.Describe()
	}
	return descriptions
}

// nodeBudget extracts the tightest node budget from the constraint list.
// Zero means unbounded.
func nodeBudget(constraints []Constraint) (int, string) {
	limit := 0
	message := ""
	for _, c := range constraints {
		if b, ok := c.(NodeBudget); ok {
			if limit == 0 || b.MaxNodes() < limit {
				limit = b.MaxNodes()
				message = fmt.Sprintf("maximum node limit (%d) reached", limit)
			}
		}
	}
	return limit, message
}

// pathConstraints filters out search-budget constraints. A completed path is
// not re-checked against a budget the search already enforced.
func pathConstraints(constraints []Constraint) []Constraint {
	filtered := make([]Constraint, 0, len(constraints))
	for _, c := range constraints {
		if _, ok := c.(NodeBudget); ok {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// SameLocationConstraint accepts only trivial paths where no traversal is
// needed.
type SameLocationConstraint struct{}

func (SameLocationConstraint) Validate(p Path, _ graph.Graph) (bool, string) {
	if len(p) == 1 {
		return true, ""
	}
	return false, "start and goal are not the same location"
}

func (SameLocationConstraint) Describe() string {
	return "start and goal must be the same location"
}

// NodeLimitConstraint bounds how many nodes a search may expand. It also
// rejects candidate paths longer than the limit, which is how exhaustive
// enumeration keeps city routes at a sane depth.
type NodeLimitConstraint struct {
	maxNodes int
}

func NewNodeLimitConstraint(maxNodes int) NodeLimitConstraint {
	return NodeLimitConstraint{maxNodes: maxNodes}
}

func (c NodeLimitConstraint) MaxNodes() int { return c.maxNodes }

func (c NodeLimitConstraint) Validate(p Path, _ graph.Graph) (bool, string) {
	if len(p) > c.maxNodes {
		return false, fmt.Sprintf("maximum node limit (%d) reached", c.maxNodes)
	}
	return true, ""
}

func (c NodeLimitConstraint) Describe() string {
	return fmt.Sprintf("maximum nodes: %d", c.maxNodes)
}

// DistanceConstraint bounds the real-world length of a path in meters.
type DistanceConstraint struct {
	maxDistance float64
}

func NewDistanceConstraint(maxDistanceMeters float64) DistanceConstraint {
	return DistanceConstraint{maxDistance: maxDistanceMeters}
}

func (c DistanceConstraint) Validate(p Path, g graph.Graph) (bool, string) {
	distance := PathCost(g, p)
	if distance > c.maxDistance {
		return false, fmt.Sprintf("path distance (%.0fm) exceeds limit (%.0fm)", distance, c.maxDistance)
	}
	return true, ""
}

func (c DistanceConstraint) Describe() string {
	return fmt.Sprintf("maximum distance: %.0fm", c.maxDistance)
}

// TimeConstraint bounds the estimated travel time of a path, derived from its
// distance and an assumed average speed. A degenerate speed (<= 0) disables
// the constraint.
type TimeConstraint struct {
	maxTimeSeconds  float64
	averageSpeedMPS float64
}

func NewTimeConstraint(maxTimeSeconds, averageSpeedMPS float64) TimeConstraint {
	return TimeConstraint{maxTimeSeconds: maxTimeSeconds, averageSpeedMPS: averageSpeedMPS}
}

func (c TimeConstraint) Validate(p Path, g graph.Graph) (bool, string) {
	if c.averageSpeedMPS <= 0 {
		return true, ""
	}

	estimated := PathCost(g, p) / c.averageSpeedMPS
	if estimated > c.maxTimeSeconds {
		return false, fmt.Sprintf("estimated travel time (%.1f min) exceeds maximum (%.1f min)",
			estimated/60.0, c.maxTimeSeconds/60.0)
	}
	return true, ""
}

func (c TimeConstraint) Describe() string {
	return fmt.Sprintf("maximum travel time: %.1f min", c.maxTimeSeconds/60.0)
}
