// Package location turns place names and raw coordinates into graph nodes.
// The search engine itself only ever sees resolved node ids.
package location

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	geo "github.com/mgetachew/addis-routing/pkg/geometry"
	"github.com/mgetachew/addis-routing/pkg/graph"
)

// ErrUnresolvable is returned when a query cannot be mapped to a node.
var ErrUnresolvable = errors.New("location: could not resolve location")

// Resolver maps a free-text query to the nearest graph node.
type Resolver interface {
	Resolve(query string) (graph.NodeId, error)
	NodeName(id graph.NodeId) string
}

// TableResolver resolves queries against a table of named locations, falling
// back to parsing the query as a "lat,lon" pair. Either way the result is the
// graph node nearest to the coordinate.
type TableResolver struct {
	g         graph.Graph
	locations map[string]geo.Point // keyed by lower-cased name
	names     []string             // original names, insertion order
}

func NewTableResolver(g graph.Graph, locations map[string]geo.Point) *TableResolver {
	r := &TableResolver{g: g, locations: make(map[string]geo.Point, len(locations))}
	for name, point := range locations {
		r.locations[strings.ToLower(name)] = point
		r.names = append(r.names, name)
	}
	return r
}

func (r *TableResolver) Resolve(query string) (graph.NodeId, error) {
	point, err := r.resolvePoint(query)
	if err != nil {
		return -1, err
	}
	node, ok := NearestNode(r.g, point)
	if !ok {
		return -1, fmt.Errorf("%w: graph has no nodes", ErrUnresolvable)
	}
	return node, nil
}

func (r *TableResolver) resolvePoint(query string) (geo.Point, error) {
	trimmed := strings.TrimSpace(query)
	if point, ok := r.locations[strings.ToLower(trimmed)]; ok {
		return point, nil
	}
	if point, ok := parseCoordinate(trimmed); ok {
		return point, nil
	}
	return geo.Point{}, fmt.Errorf("%w: %q", ErrUnresolvable, query)
}

// NodeName returns a human readable name for the node: the closest known
// location within 250m, otherwise the plain node id.
func (r *TableResolver) NodeName(id graph.NodeId) string {
	if !r.g.HasNode(id) {
		return fmt.Sprintf("node %d", id)
	}
	point := r.g.GetNode(id)
	bestName := ""
	bestDistance := math.MaxFloat64
	for _, name := range r.names {
		known := r.locations[strings.ToLower(name)]
		if d := point.Haversine(known); d < bestDistance {
			bestDistance = d
			bestName = name
		}
	}
	if bestName != "" && bestDistance <= 250 {
		return bestName
	}
	return fmt.Sprintf("node %d", id)
}

// Locations lists the known location names.
func (r *TableResolver) Locations() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// NearestNode scans the graph for the node closest to the given point.
// The second return value is false for an empty graph.
func NearestNode(g graph.Graph, point geo.Point) (graph.NodeId, bool) {
	if g.NodeCount() == 0 {
		return -1, false
	}
	nearest := 0
	minDistance := math.MaxFloat64
	for id := 0; id < g.NodeCount(); id++ {
		if d := point.DistanceTo(g.GetNode(id)); d < minDistance {
			minDistance = d
			nearest = id
		}
	}
	return nearest, true
}

func parseCoordinate(s string) (geo.Point, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geo.Point{}, false
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return geo.Point{}, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return geo.Point{}, false
	}
	return geo.MakePoint(lat, lon), true
}
