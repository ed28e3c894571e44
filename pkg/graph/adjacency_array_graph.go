package graph

import (
	"fmt"

	geo "github.com/mgetachew/addis-routing/pkg/geometry"
)

// Implementation for static graphs. The arcs are stored in a single flattened
// slice with an offset table, which keeps a fully built graph compact and
// cache friendly for searches.
type AdjacencyArrayGraph struct {
	Nodes   []geo.Point
	arcs    []Arc
	Offsets []int
}

// Create an AdjacencyArrayGraph from the given graph
func NewAdjacencyArrayFromGraph(g Graph) *AdjacencyArrayGraph {
	nodes := make([]geo.Point, 0, g.NodeCount())
	arcs := make([]Arc, 0, g.ArcCount())
	offsets := make([]int, g.NodeCount()+1)

	for i := 0; i < g.NodeCount(); i++ {
		// add node
		nodes = append(nodes, g.GetNode(i))

		// add all edges of node
		arcs = append(arcs, g.GetArcsFrom(i)...)

		// set stop-offset
		offsets[i+1] = len(arcs)
	}

	return &AdjacencyArrayGraph{Nodes: nodes, arcs: arcs, Offsets: offsets}
}

// Get the node for the given id
func (aag *AdjacencyArrayGraph) GetNode(id NodeId) geo.Point {
	if id < 0 || id >= aag.NodeCount() {
		panic(fmt.Sprintf("NodeId %d is not contained in the graph.", id))
	}
	return aag.Nodes[id]
}

// Get all nodes of the graph
func (aag *AdjacencyArrayGraph) GetNodes() []geo.Point {
	return aag.Nodes
}

// Get the arcs for the given node id
func (aag *AdjacencyArrayGraph) GetArcsFrom(id NodeId) []Arc {
	if id < 0 || id >= aag.NodeCount() {
		panic(fmt.Sprintf("NodeId %d is not contained in the graph.", id))
	}
	return aag.arcs[aag.Offsets[id]:aag.Offsets[id+1]]
}

// Get the neighbor node ids for the given node, in arc order
func (aag *AdjacencyArrayGraph) GetNeighbors(id NodeId) []NodeId {
	arcs := aag.GetArcsFrom(id)
	neighbors := make([]NodeId, len(arcs))
	for i, arc := range arcs {
		neighbors[i] = arc.Destination()
	}
	return neighbors
}

func (aag *AdjacencyArrayGraph) HasNode(id NodeId) bool {
	return id >= 0 && id < aag.NodeCount()
}

func (aag *AdjacencyArrayGraph) EdgeWeight(from, to NodeId) (float64, bool) {
	if !aag.HasNode(from) || !aag.HasNode(to) {
		return 0, false
	}
	for _, arc := range aag.GetArcsFrom(from) {
		if arc.To == to {
			return arc.Distance, true
		}
	}
	return 0, false
}

// Returns the number of nodes in the graph
func (aag *AdjacencyArrayGraph) NodeCount() int {
	return len(aag.Nodes)
}

// Returns the total number of arcs in the graph
func (aag *AdjacencyArrayGraph) ArcCount() int {
	return len(aag.arcs)
}

// Returns a human readable string of the graph
func (aag *AdjacencyArrayGraph) AsString() string {
	return GraphAsString(aag)
}
