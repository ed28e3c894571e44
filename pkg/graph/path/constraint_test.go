package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeLimitConstraint(t *testing.T) {
	g := gridGraph(t)
	c := NewNodeLimitConstraint(4)

	assert.Equal(t, 4, c.MaxNodes())

	ok, _ := c.Validate(Path{0, 1, 2, 5}, g)
	assert.True(t, ok)

	ok, message := c.Validate(Path{0, 1, 2, 5, 8}, g)
	assert.False(t, ok)
	assert.Equal(t, "maximum node limit (4) reached", message)

	assert.Equal(t, "maximum nodes: 4", c.Describe())
}

func TestDistanceConstraint(t *testing.T) {
	g := gridGraph(t)
	c := NewDistanceConstraint(250)

	ok, _ := c.Validate(Path{0, 1, 2}, g)
	assert.True(t, ok)

	ok, message := c.Validate(Path{0, 1, 2, 5}, g)
	assert.False(t, ok)
	assert.Equal(t, "path distance (300m) exceeds limit (250m)", message)

	assert.Equal(t, "maximum distance: 250m", c.Describe())
}

func TestTimeConstraint(t *testing.T) {
	g := gridGraph(t)

	// 400m at 2 m/s takes 200s
	c := NewTimeConstraint(180, 2.0)
	ok, message := c.Validate(Path{0, 1, 2, 5, 8}, g)
	assert.False(t, ok)
	assert.Equal(t, "estimated travel time (3.3 min) exceeds maximum (3.0 min)", message)

	relaxed := NewTimeConstraint(240, 2.0)
	ok, _ = relaxed.Validate(Path{0, 1, 2, 5, 8}, g)
	assert.True(t, ok)
}

func TestTimeConstraintDegenerateSpeed(t *testing.T) {
	g := gridGraph(t)

	c := NewTimeConstraint(1, 0)
	ok, _ := c.Validate(Path{0, 1, 2, 5, 8}, g)
	assert.True(t, ok)
}

func TestSameLocationConstraint(t *testing.T) {
	g := gridGraph(t)
	c := SameLocationConstraint{}

	ok, _ := c.Validate(Path{4}, g)
	assert.True(t, ok)

	ok, _ = c.Validate(Path{0, 1}, g)
	assert.False(t, ok)
}

func TestValidateAllReturnsFirstFailure(t *testing.T) {
	g := gridGraph(t)
	constraints := []Constraint{
		NewDistanceConstraint(300),
		NewNodeLimitConstraint(2),
	}

	ok, message := ValidateAll(constraints, Path{0, 1, 2, 5, 8}, g)
	require.False(t, ok)
	assert.Equal(t, "path distance (400m) exceeds limit (300m)", message)

	ok, _ = ValidateAll(nil, Path{0, 1}, g)
	assert.True(t, ok)
}

func TestDescribe(t *testing.T) {
	descriptions := Describe([]Constraint{
		NewNodeLimitConstraint(10),
		NewDistanceConstraint(500),
	})
	assert.Equal(t, []string{"maximum nodes: 10", "maximum distance: 500m"}, descriptions)
}

func TestNodeBudgetExtraction(t *testing.T) {
	limit, message := nodeBudget([]Constraint{
		NewDistanceConstraint(500),
		NewNodeLimitConstraint(7),
		NewNodeLimitConstraint(3),
	})
	assert.Equal(t, 3, limit)
	assert.Equal(t, "maximum node limit (3) reached", message)

	limit, _ = nodeBudget(nil)
	assert.Zero(t, limit)
}

func TestPathConstraintsFiltersBudgets(t *testing.T) {
	filtered := pathConstraints([]Constraint{
		NewNodeLimitConstraint(7),
		NewDistanceConstraint(500),
	})
	require.Len(t, filtered, 1)
	assert.Equal(t, "maximum distance: 500m", filtered[0].Describe())
}
