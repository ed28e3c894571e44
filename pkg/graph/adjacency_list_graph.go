package graph

import (
	"fmt"

	geo "github.com/mgetachew/addis-routing/pkg/geometry"
)

// Implementation for dynamic graphs
type AdjacencyListGraph struct {
	Nodes    []geo.Point // The nodes of the graph
	Edges    [][]Arc     // The arcs of the graph. The first index is the node the arcs belong to
	arcCount int         // the number of arcs in the graph
}

func NewAdjacencyListGraph() *AdjacencyListGraph {
	return &AdjacencyListGraph{
		Nodes: make([]geo.Point, 0),
		Edges: make([][]Arc, 0),
	}
}

// Return the node for the given id
func (alg *AdjacencyListGraph) GetNode(id NodeId) geo.Point {
	if id < 0 || id >= alg.NodeCount() {
		panic(fmt.Sprintf("NodeId %d is not contained in the graph.", id))
	}
	return alg.Nodes[id]
}

// Return all nodes of the graph
func (alg *AdjacencyListGraph) GetNodes() []geo.Point {
	return alg.Nodes
}

// Get the arcs for the given node
func (alg *AdjacencyListGraph) GetArcsFrom(id NodeId) []Arc {
	if id < 0 || id >= alg.NodeCount() {
		panic(fmt.Sprintf("NodeId %d is not contained in the graph.", id))
	}
	return alg.Edges[id]
}

// Get the neighbor node ids for the given node, in arc order
func (alg *AdjacencyListGraph) GetNeighbors(id NodeId) []NodeId {
	arcs := alg.GetArcsFrom(id)
	neighbors := make([]NodeId, len(arcs))
	for i, arc := range arcs {
		neighbors[i] = arc.Destination()
	}
	return neighbors
}

func (alg *AdjacencyListGraph) HasNode(id NodeId) bool {
	return id >= 0 && id < alg.NodeCount()
}

func (alg *AdjacencyListGraph) EdgeWeight(from, to NodeId) (float64, bool) {
	if !alg.HasNode(from) || !alg.HasNode(to) {
		return 0, false
	}
	for _, arc := range alg.Edges[from] {
		if arc.To == to {
			return arc.Distance, true
		}
	}
	return 0, false
}

// Return the number of total nodes
func (alg *AdjacencyListGraph) NodeCount() int {
	return len(alg.Nodes)
}

// Return the number of total arcs
func (alg *AdjacencyListGraph) ArcCount() int {
	return alg.arcCount
}

// Return a human readable string of the graph
func (alg *AdjacencyListGraph) AsString() string {
	return GraphAsString(alg)
}

// Add a node to the graph and return its id
func (alg *AdjacencyListGraph) AddNode(n geo.Point) NodeId {
	alg.Nodes = append(alg.Nodes, n)
	alg.Edges = append(alg.Edges, make([]Arc, 0))
	return len(alg.Nodes) - 1
}

// Add an arc to the graph, going from source to target with the given distance.
// A duplicate arc only replaces the stored one when it is shorter.
func (alg *AdjacencyListGraph) AddArc(from, to NodeId, distance float64) bool {
	if from >= alg.NodeCount() || to >= alg.NodeCount() {
		panic(fmt.Sprintf("Arc out of range %v -> %v", from, to))
	}

	arcs := alg.Edges[from]
	for i := range arcs {
		arc := &arcs[i]
		if to == arc.To {
			if distance < arc.Distance {
				arc.Distance = distance
				return true
			}
			return false
		}
	}

	alg.Edges[from] = append(alg.Edges[from], MakeArc(to, distance))
	alg.arcCount++
	return true
}
