package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgetachew/addis-routing/internal/config"
	"github.com/mgetachew/addis-routing/pkg/graph"
	"github.com/mgetachew/addis-routing/pkg/location"
	"github.com/mgetachew/addis-routing/pkg/routing"
)

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path)
}

// buildEngine loads the graph named in the config and wires the resolver and
// the routing controller around it.
func buildEngine(cmd *cobra.Command, cfg config.Config) (*routing.Controller, *location.TableResolver, error) {
	logger := loggerFromContext(cmd.Context())

	logger.Info("loading graph", "file", cfg.Graph.File)
	g, err := graph.NewAdjacencyArrayFromFmiFile(cfg.Graph.File)
	if err != nil {
		return nil, nil, fmt.Errorf("load graph: %w", err)
	}
	logger.Info("graph loaded", "nodes", g.NodeCount(), "arcs", g.ArcCount())

	resolver := location.NewTableResolver(g, cfg.LocationPoints())
	controller := routing.NewController(g, resolver, logger)
	controller.SetTimeout(cfg.Search.Timeout.Duration)
	controller.SetAverageSpeed(cfg.AverageSpeedMPS())
	return controller, resolver, nil
}
