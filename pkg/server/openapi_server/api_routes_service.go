// SPDX-License-Identifier: MIT

package openapi_server

import (
	"context"
	"net/http"

	"github.com/mgetachew/addis-routing/pkg/location"
	"github.com/mgetachew/addis-routing/pkg/routing"
)

// RoutesApiService is a service that implements the logic for the RoutesApiServicer
// This service should implement the business logic for every endpoint for the RoutesApi API.
type RoutesApiService struct {
	controller *routing.Controller
	resolver   *location.TableResolver
}

// NewRoutesApiService creates a routes api service
func NewRoutesApiService(controller *routing.Controller, resolver *location.TableResolver) RoutesApiServicer {
	return &RoutesApiService{
		controller: controller,
		resolver:   resolver,
	}
}

// ComputeRoute - Compute routes between two locations
func (s *RoutesApiService) ComputeRoute(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	route, err := s.controller.FindRoute(ctx, routeRequest.Request)
	if err != nil {
		return Response(http.StatusBadRequest, err.Error()), nil
	}
	return s.encodeRoute(route, routeRequest.Format), nil
}

// EnumerateRoutes - Enumerate equally short paths between two locations
func (s *RoutesApiService) EnumerateRoutes(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	route, err := s.controller.EnumerateShortest(ctx, routeRequest.Request)
	if err != nil {
		return Response(http.StatusBadRequest, err.Error()), nil
	}
	return s.encodeRoute(route, routeRequest.Format), nil
}

func (s *RoutesApiService) encodeRoute(route routing.Route, format string) ImplResponse {
	if route.Outcome == "location-unresolvable" {
		return Response(http.StatusNotFound, route)
	}
	if format == "geojson" {
		return Response(http.StatusOK, routing.RouteFeatureCollection(s.controller.Graph(), route))
	}
	return Response(http.StatusOK, route)
}

func (s *RoutesApiService) GetNodes(ctx context.Context) (ImplResponse, error) {
	points := s.controller.Nodes()

	waypoints := make([]Point, 0, len(points))
	for _, point := range points {
		waypoints = append(waypoints, Point{Lat: point.Lat(), Lon: point.Lon()})
	}

	return Response(http.StatusOK, Nodes{Waypoints: waypoints}), nil
}

func (s *RoutesApiService) GetLocations(ctx context.Context) (ImplResponse, error) {
	return Response(http.StatusOK, Locations{Locations: s.resolver.Locations()}), nil
}

func (s *RoutesApiService) GetHealth(ctx context.Context) (ImplResponse, error) {
	g := s.controller.Graph()
	return Response(http.StatusOK, Health{
		Status: "ok",
		Nodes:  g.NodeCount(),
		Arcs:   g.ArcCount(),
	}), nil
}
