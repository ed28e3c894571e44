// SPDX-License-Identifier: MIT

package openapi_server

import (
	"context"
	"net/http"

	"github.com/mgetachew/addis-routing/pkg/routing"
)

// RoutesApiRouter defines the required methods for binding the api requests to a responses for the RoutesApi
// The RoutesApiRouter implementation should parse necessary information from the http request,
// pass the data to a RoutesApiServicer to perform the required actions, then write the service results to the http response.
type RoutesApiRouter interface {
	ComputeRoute(http.ResponseWriter, *http.Request)
	EnumerateRoutes(http.ResponseWriter, *http.Request)
	GetNodes(http.ResponseWriter, *http.Request)
	GetLocations(http.ResponseWriter, *http.Request)
	GetHealth(http.ResponseWriter, *http.Request)
}

// RoutesApiServicer defines the api actions for the RoutesApi service
type RoutesApiServicer interface {
	ComputeRoute(context.Context, RouteRequest) (ImplResponse, error)
	EnumerateRoutes(context.Context, RouteRequest) (ImplResponse, error)
	GetNodes(context.Context) (ImplResponse, error)
	GetLocations(context.Context) (ImplResponse, error)
	GetHealth(context.Context) (ImplResponse, error)
}

// RouteRequest is the request body for the route endpoints. Format selects
// the response encoding, "json" (default) or "geojson".
type RouteRequest struct {
	routing.Request
	Format string `json:"format,omitempty"`
}

// AssertRouteRequestRequired checks if the required fields are not zero-ed
func AssertRouteRequestRequired(obj RouteRequest) error {
	elements := map[string]interface{}{
		"start": obj.Start,
		"goal":  obj.Goal,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}

// Point is a coordinate pair in the responses.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Nodes lists node coordinates, for rendering the whole graph.
type Nodes struct {
	Waypoints []Point `json:"waypoints"`
}

// Locations lists the named locations known to the resolver.
type Locations struct {
	Locations []string `json:"locations"`
}

// Health reports server liveness and graph dimensions.
type Health struct {
	Status string `json:"status"`
	Nodes  int    `json:"nodes"`
	Arcs   int    `json:"arcs"`
}
