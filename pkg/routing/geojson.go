package routing

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/mgetachew/addis-routing/pkg/graph"
	"github.com/mgetachew/addis-routing/pkg/graph/path"
)

// RouteFeatureCollection renders a route as GeoJSON. The primary path and
// each alternative become LineString features, the endpoints become Point
// features and the visited search space, when present, a MultiPoint.
func RouteFeatureCollection(g graph.Graph, route Route) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i, p := range route.Paths {
		feature := geojson.NewFeature(lineString(g, p))
		if i == 0 {
			feature.Properties["role"] = "primary"
		} else {
			feature.Properties["role"] = "alternative"
		}
		feature.Properties["rank"] = i
		if i < len(route.PathCosts) {
			feature.Properties["distance"] = route.PathCosts[i]
		}
		fc.Append(feature)
	}

	if route.StartNode >= 0 && g.HasNode(route.StartNode) {
		fc.Append(pointFeature(g, route.StartNode, "start", route.Start))
	}
	if route.GoalNode >= 0 && g.HasNode(route.GoalNode) {
		fc.Append(pointFeature(g, route.GoalNode, "goal", route.Goal))
	}

	if len(route.Visited) > 0 {
		visited := make(orb.MultiPoint, 0, len(route.Visited))
		for _, id := range route.Visited {
			visited = append(visited, g.GetNode(id).Orb())
		}
		feature := geojson.NewFeature(visited)
		feature.Properties["role"] = "visited"
		fc.Append(feature)
	}

	return fc
}

func lineString(g graph.Graph, p path.Path) orb.LineString {
	ls := make(orb.LineString, 0, len(p))
	for _, id := range p {
		ls = append(ls, g.GetNode(id).Orb())
	}
	return ls
}

func pointFeature(g graph.Graph, id graph.NodeId, role, name string) *geojson.Feature {
	feature := geojson.NewFeature(g.GetNode(id).Orb())
	feature.Properties["role"] = role
	if name != "" {
		feature.Properties["name"] = name
	}
	feature.Properties["node"] = id
	return feature
}
