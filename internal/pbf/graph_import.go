// Package pbf builds a routing graph from OpenStreetMap extracts, either in
// the binary PBF format or in plain OSM XML.
package pbf

import (
	"os"
	"runtime"
	"strings"

	"github.com/qedus/osmpbf"

	geo "github.com/mgetachew/addis-routing/pkg/geometry"
	"github.com/mgetachew/addis-routing/pkg/graph"
)

// drivable lists the highway classes kept for a drive network. Link variants
// ("primary_link" etc.) are accepted too.
var drivable = map[string]bool{
	"motorway":      true,
	"trunk":         true,
	"primary":       true,
	"secondary":     true,
	"tertiary":      true,
	"residential":   true,
	"unclassified":  true,
	"living_street": true,
}

func isDrivable(highway string) bool {
	if drivable[highway] {
		return true
	}
	base, ok := strings.CutSuffix(highway, "_link")
	return ok && drivable[base]
}

// GraphImporter reads an OSM PBF file in two passes. The first pass collects
// node coordinates, the second walks the drivable ways and emits arcs with
// haversine lengths.
type GraphImporter struct {
	filename string
	nodes    map[int64]geo.Point
	ids      map[int64]graph.NodeId
	graph    *graph.AdjacencyListGraph
}

func NewGraphImporter(filename string) *GraphImporter {
	return &GraphImporter{
		filename: filename,
		nodes:    make(map[int64]geo.Point),
		ids:      make(map[int64]graph.NodeId),
		graph:    graph.NewAdjacencyListGraph(),
	}
}

func (gi *GraphImporter) Import() error {
	if err := gi.collectNodes(); err != nil {
		return err
	}

	file, err := os.Open(gi.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		return err
	}

	for {
		v, err := decoder.Decode()
		if err != nil {
			break
		}
		if way, ok := v.(*osmpbf.Way); ok {
			highway, tagged := way.Tags["highway"]
			if !tagged || !isDrivable(highway) {
				continue
			}
			gi.addWay(way.NodeIDs, way.Tags["oneway"] == "yes")
		}
	}
	return nil
}

// Graph returns the imported graph. Call after Import.
func (gi *GraphImporter) Graph() *graph.AdjacencyListGraph {
	return gi.graph
}

func (gi *GraphImporter) collectNodes() error {
	file, err := os.Open(gi.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		return err
	}

	for {
		v, err := decoder.Decode()
		if err != nil {
			break
		}
		if node, ok := v.(*osmpbf.Node); ok {
			gi.nodes[node.ID] = geo.MakePoint(node.Lat, node.Lon)
		}
	}
	return nil
}

// addWay emits one arc per consecutive node pair, in both directions unless
// the way is oneway. Node ids missing from the extract are skipped.
func (gi *GraphImporter) addWay(nodeIDs []int64, oneway bool) {
	previous := graph.NodeId(-1)
	var previousPoint geo.Point
	for _, osmID := range nodeIDs {
		point, known := gi.nodes[osmID]
		if !known {
			continue
		}
		current := gi.graphNode(osmID, point)
		if previous >= 0 {
			distance := previousPoint.Haversine(point)
			gi.graph.AddArc(previous, current, distance)
			if !oneway {
				gi.graph.AddArc(current, previous, distance)
			}
		}
		previous, previousPoint = current, point
	}
}

// graphNode maps an OSM node id to a dense graph node, allocating on first use.
func (gi *GraphImporter) graphNode(osmID int64, point geo.Point) graph.NodeId {
	if id, ok := gi.ids[osmID]; ok {
		return id
	}
	id := gi.graph.AddNode(point)
	gi.ids[osmID] = id
	return id
}
