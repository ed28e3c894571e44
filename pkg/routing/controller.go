// Package routing orchestrates route searches: it resolves endpoints to graph
// nodes, selects a search algorithm, assembles constraints, and annotates the
// search result with real-world costs.
package routing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	geo "github.com/mgetachew/addis-routing/pkg/geometry"
	"github.com/mgetachew/addis-routing/pkg/graph"
	"github.com/mgetachew/addis-routing/pkg/graph/path"
	"github.com/mgetachew/addis-routing/pkg/location"
)

const (
	DefaultAlgorithm = "bfs"
	DefaultMaxPaths  = 5
)

// Request describes one route search.
type Request struct {
	Start           string  `json:"start"`
	Goal            string  `json:"goal"`
	Algorithm       string  `json:"algorithm,omitempty"`       // bfs, dfs or astar
	MaxPaths        int     `json:"maxPaths,omitempty"`        // number of paths to collect
	MaxNodes        int     `json:"maxNodes,omitempty"`        // search budget, 0 = unbounded
	MaxDistance     float64 `json:"maxDistance,omitempty"`     // meters, 0 = unbounded
	MaxTime         float64 `json:"maxTime,omitempty"`         // seconds, 0 = unbounded
	HeuristicWeight float64 `json:"heuristicWeight,omitempty"` // astar only, 0 = default 1.0
	AllowFallback   bool    `json:"allowFallback,omitempty"`   // dfs only, see Route.Warning
}

// Route is the packaged outcome of a search, ready for a renderer or an API
// response.
type Route struct {
	Success            bool                `json:"success"`
	Outcome            string              `json:"outcome"`
	Message            string              `json:"message,omitempty"`
	Algorithm          string              `json:"algorithm"`
	Start              string              `json:"start"`
	Goal               string              `json:"goal"`
	StartNode          graph.NodeId        `json:"startNode"`
	GoalNode           graph.NodeId        `json:"goalNode"`
	Paths              []path.Path         `json:"paths,omitempty"`
	PathCosts          []float64           `json:"pathCosts,omitempty"`
	Visited            []graph.NodeId      `json:"visited,omitempty"`
	ConstraintsApplied []string            `json:"constraintsApplied,omitempty"`
	Warning            string              `json:"warning,omitempty"`
	Statistics         path.PathStatistics `json:"statistics"`
}

// Controller wires the resolver, the graph and the algorithms together.
// Safe for concurrent use; every search builds its own algorithm instance.
type Controller struct {
	g            graph.Graph
	resolver     location.Resolver
	logger       *log.Logger
	timeout      time.Duration
	averageSpeed float64 // m/s, for time constraints
}

func NewController(g graph.Graph, resolver location.Resolver, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		g:            g,
		resolver:     resolver,
		logger:       logger,
		averageSpeed: 30.0 * 1000.0 / 3600.0, // 30 km/h urban default
	}
}

// SetTimeout caps the wall-clock time of a single search. Zero disables the
// cap. The deadline is checked at every expansion step inside the algorithms.
func (c *Controller) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

// SetAverageSpeed sets the assumed travel speed in m/s used to derive travel
// time from path distance.
func (c *Controller) SetAverageSpeed(metersPerSecond float64) {
	c.averageSpeed = metersPerSecond
}

// Graph returns the controlled graph.
func (c *Controller) Graph() graph.Graph { return c.g }

// Nodes returns all node coordinates, for rendering.
func (c *Controller) Nodes() []geo.Point { return c.g.GetNodes() }

// FindRoute runs one search according to the request.
//
// Location resolution failures and all expected search outcomes (no path,
// violated constraint, exhausted budget) are reported inside the Route; the
// error covers invalid requests and cancellation only.
func (c *Controller) FindRoute(ctx context.Context, req Request) (Route, error) {
	name := req.Algorithm
	if name == "" {
		name = DefaultAlgorithm
	}
	maxPaths := req.MaxPaths
	if maxPaths <= 0 {
		maxPaths = DefaultMaxPaths
	}

	algorithm, err := path.NewAlgorithm(name, c.g)
	if err != nil {
		return Route{}, err
	}
	if astar, ok := algorithm.(*path.AStar); ok && req.HeuristicWeight > 0 {
		astar.SetHeuristicWeight(req.HeuristicWeight)
	}

	route := Route{Algorithm: algorithm.Name(), Start: req.Start, Goal: req.Goal, StartNode: -1, GoalNode: -1}

	startNode, goalNode, resolveErr := c.resolveEndpoints(req.Start, req.Goal)
	if resolveErr != nil {
		route.Outcome = "location-unresolvable"
		route.Message = fmt.Sprintf("could not find location: %v", resolveErr)
		return route, nil
	}
	route.StartNode = startNode
	route.GoalNode = goalNode

	constraints := c.buildConstraints(req)
	route.ConstraintsApplied = path.Describe(constraints)

	ctx, cancel := c.searchContext(ctx)
	defer cancel()

	c.logger.Debug("starting search",
		"algorithm", algorithm.Name(), "start", startNode, "goal", goalNode, "maxPaths", maxPaths)

	result, err := algorithm.Find(ctx, startNode, goalNode, constraints, maxPaths)
	if err != nil {
		return Route{}, err
	}

	if !result.Success && result.Outcome == path.OutcomeConstraintViolated &&
		algorithm.Name() == "dfs" && req.AllowFallback {
		// documented fallback: the constraints rejected every candidate, so
		// surface the unconstrained candidate set with an explicit warning
		unconstrained, err := algorithm.Find(ctx, startNode, goalNode, nil, maxPaths)
		if err != nil {
			return Route{}, err
		}
		if unconstrained.Success {
			c.logger.Warn("constraints rejected all candidate paths, falling back", "message", result.Message)
			route.Warning = fmt.Sprintf("constraints were too restrictive (%s), showing unconstrained paths", result.Message)
			result = unconstrained
		}
	}

	c.packageResult(&route, result)
	return route, nil
}

// EnumerateShortest returns up to MaxPaths equal-length shortest paths using
// the shortest-path enumerator instead of a single algorithm.
func (c *Controller) EnumerateShortest(ctx context.Context, req Request) (Route, error) {
	maxPaths := req.MaxPaths
	if maxPaths <= 0 {
		maxPaths = DefaultMaxPaths
	}

	route := Route{Algorithm: "enumerate", Start: req.Start, Goal: req.Goal, StartNode: -1, GoalNode: -1}

	startNode, goalNode, resolveErr := c.resolveEndpoints(req.Start, req.Goal)
	if resolveErr != nil {
		route.Outcome = "location-unresolvable"
		route.Message = fmt.Sprintf("could not find location: %v", resolveErr)
		return route, nil
	}
	route.StartNode = startNode
	route.GoalNode = goalNode

	ctx, cancel := c.searchContext(ctx)
	defer cancel()

	paths, err := path.NewShortestPathEnumerator(c.g).AllShortestPaths(ctx, startNode, goalNode, maxPaths)
	if err != nil {
		return Route{}, err
	}

	result := path.SearchResult{Outcome: path.OutcomeNoPath, Message: "no path found between the given nodes"}
	if len(paths) > 0 {
		result = path.SearchResult{
			Success:          true,
			Outcome:          path.OutcomeFound,
			PrimaryPath:      paths[0],
			AlternativePaths: paths[1:],
		}
	}
	c.packageResult(&route, result)
	return route, nil
}

func (c *Controller) resolveEndpoints(start, goal string) (graph.NodeId, graph.NodeId, error) {
	startNode, err := c.resolver.Resolve(start)
	if err != nil {
		return -1, -1, err
	}
	goalNode, err := c.resolver.Resolve(goal)
	if err != nil {
		return -1, -1, err
	}
	return startNode, goalNode, nil
}

func (c *Controller) buildConstraints(req Request) []path.Constraint {
	constraints := make([]path.Constraint, 0, 3)
	if req.MaxNodes > 0 {
		constraints = append(constraints, path.NewNodeLimitConstraint(req.MaxNodes))
	}
	if req.MaxDistance > 0 {
		constraints = append(constraints, path.NewDistanceConstraint(req.MaxDistance))
	}
	if req.MaxTime > 0 {
		constraints = append(constraints, path.NewTimeConstraint(req.MaxTime, c.averageSpeed))
	}
	return constraints
}

func (c *Controller) searchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return ctx, func() {}
}

func (c *Controller) packageResult(route *Route, result path.SearchResult) {
	route.Success = result.Success
	route.Outcome = result.Outcome.String()
	if route.Message == "" {
		route.Message = result.Message
	}
	route.Visited = result.Visited

	paths := result.Paths()
	if len(paths) == 0 {
		return
	}
	route.Paths = paths
	route.PathCosts = make([]float64, len(paths))
	for i, p := range paths {
		route.PathCosts[i] = path.PathCost(c.g, p)
	}
	route.Statistics = path.Statistics(c.g, paths)
}

// IsUnresolvable reports whether err comes from location resolution.
func IsUnresolvable(err error) bool {
	return errors.Is(err, location.ErrUnresolvable)
}
