package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mgetachew/addis-routing/internal/pbf"
	"github.com/mgetachew/addis-routing/pkg/graph"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <extract> <graph-file>",
		Short: "Build a routing graph from an OSM extract",
		Long: `Build a routing graph from an OpenStreetMap extract and write it in the
plain-text graph format the other commands load. The extract is read as PBF
(.pbf) or as OSM XML (.osm, .xml).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := args[0], args[1]
			logger := loggerFromContext(cmd.Context())

			var g graph.Graph
			switch ext := filepath.Ext(input); ext {
			case ".pbf":
				importer := pbf.NewGraphImporter(input)
				if err := importer.Import(); err != nil {
					return fmt.Errorf("import %s: %w", input, err)
				}
				g = importer.Graph()
			case ".osm", ".xml":
				imported, err := pbf.ImportXML(input)
				if err != nil {
					return fmt.Errorf("import %s: %w", input, err)
				}
				g = imported
			default:
				return fmt.Errorf("unsupported extract format %q", ext)
			}

			logger.Info("graph built", "nodes", g.NodeCount(), "arcs", g.ArcCount())
			if err := graph.WriteFmi(g, output); err != nil {
				return err
			}
			logger.Info("graph written", "file", output)
			return nil
		},
	}
	return cmd
}
