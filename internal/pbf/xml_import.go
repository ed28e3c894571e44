package pbf

import (
	"encoding/xml"
	"os"

	"github.com/paulmach/osm"

	geo "github.com/mgetachew/addis-routing/pkg/geometry"
	"github.com/mgetachew/addis-routing/pkg/graph"
)

// ImportXML reads a plain OSM XML extract. Meant for small areas and test
// fixtures, where the PBF tooling is overkill.
func ImportXML(filename string) (*graph.AdjacencyListGraph, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseXML(data)
}

// ParseXML builds a graph from raw OSM XML, applying the same highway filter
// and arc construction as the PBF importer.
func ParseXML(data []byte) (*graph.AdjacencyListGraph, error) {
	var extract osm.OSM
	if err := xml.Unmarshal(data, &extract); err != nil {
		return nil, err
	}

	gi := NewGraphImporter("")
	for _, node := range extract.Nodes {
		gi.nodes[int64(node.ID)] = geo.MakePoint(node.Lat, node.Lon)
	}
	for _, way := range extract.Ways {
		highway := way.Tags.Find("highway")
		if highway == "" || !isDrivable(highway) {
			continue
		}
		nodeIDs := make([]int64, 0, len(way.Nodes))
		for _, wayNode := range way.Nodes {
			nodeIDs = append(nodeIDs, int64(wayNode.ID))
		}
		gi.addWay(nodeIDs, way.Tags.Find("oneway") == "yes")
	}
	return gi.Graph(), nil
}
