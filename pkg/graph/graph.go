package graph

import (
	"fmt"
	"strings"

	geo "github.com/mgetachew/addis-routing/pkg/geometry"
)

type NodeId = int

// Graph is a read-only view of a road network. Implementations are immutable
// once built and safe for concurrent reads, so multiple searches can share a
// single graph.
type Graph interface {
	GetNode(id NodeId) geo.Point
	GetNodes() []geo.Point
	GetArcsFrom(id NodeId) []Arc
	GetNeighbors(id NodeId) []NodeId
	HasNode(id NodeId) bool
	// EdgeWeight returns the weight of the direct edge u -> v in meters.
	// The second return value is false if there is no direct edge; a caller
	// needing a cost must then fall back to a geometric estimate between the
	// node coordinates, never treat the missing weight as zero.
	EdgeWeight(from, to NodeId) (float64, bool)
	NodeCount() int
	ArcCount() int
	AsString() string
}

// DynamicGraph is a graph that is still being built, e.g. by an importer.
type DynamicGraph interface {
	Graph
	AddNode(n geo.Point) NodeId
	AddArc(from, to NodeId, distance float64) bool
}

// GraphAsString serializes the graph in the FMI text format.
func GraphAsString(g Graph) string {
	var sb strings.Builder

	// write number of nodes and number of edges
	sb.WriteString(fmt.Sprintf("%v\n", g.NodeCount()))
	sb.WriteString(fmt.Sprintf("%v\n", g.ArcCount()))

	sb.WriteString("#Nodes\n")
	// list all nodes structured as "id lat lon"
	for i := 0; i < g.NodeCount(); i++ {
		node := g.GetNode(i)
		sb.WriteString(fmt.Sprintf("%v %v %v\n", i, node.Lat(), node.Lon()))
	}

	sb.WriteString("#Edges\n")
	// list all edges structured as "fromId targetId distance"
	for i := 0; i < g.NodeCount(); i++ {
		for _, arc := range g.GetArcsFrom(i) {
			sb.WriteString(fmt.Sprintf("%v %v %v\n", i, arc.Destination(), arc.Cost()))
		}
	}
	return sb.String()
}
