package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgetachew/addis-routing/pkg/routing"
)

func newRouteCmd() *cobra.Command {
	var (
		algorithm   string
		maxPaths    int
		maxNodes    int
		maxDistance float64
		maxTime     float64
		weight      float64
		fallback    bool
		enumerate   bool
		asGeoJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "route <start> <goal>",
		Short: "Find routes between two locations",
		Long: `Find routes between two locations. Locations are either names from the
configured location table (e.g. "Meskel Square") or raw coordinates in
"lat,lon" form. The result is printed as JSON on stdout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if algorithm == "" {
				algorithm = cfg.Search.Algorithm
			}
			if maxPaths <= 0 {
				maxPaths = cfg.Search.MaxPaths
			}

			controller, _, err := buildEngine(cmd, cfg)
			if err != nil {
				return err
			}

			req := routing.Request{
				Start:           args[0],
				Goal:            args[1],
				Algorithm:       algorithm,
				MaxPaths:        maxPaths,
				MaxNodes:        maxNodes,
				MaxDistance:     maxDistance,
				MaxTime:         maxTime,
				HeuristicWeight: weight,
				AllowFallback:   fallback,
			}

			var route routing.Route
			if enumerate {
				route, err = controller.EnumerateShortest(cmd.Context(), req)
			} else {
				route, err = controller.FindRoute(cmd.Context(), req)
			}
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			if route.Warning != "" {
				logger.Warn(route.Warning)
			}
			if !route.Success {
				logger.Error("no route", "outcome", route.Outcome, "message", route.Message)
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if asGeoJSON {
				return encoder.Encode(routing.RouteFeatureCollection(controller.Graph(), route))
			}
			return encoder.Encode(route)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "search algorithm: bfs, dfs or astar")
	cmd.Flags().IntVarP(&maxPaths, "max-paths", "n", 0, "number of paths to collect")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "abort after visiting this many nodes")
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "reject paths longer than this many meters")
	cmd.Flags().Float64Var(&maxTime, "max-time", 0, "reject paths slower than this many seconds")
	cmd.Flags().Float64VarP(&weight, "weight", "w", 0, "heuristic weight for astar")
	cmd.Flags().BoolVar(&fallback, "fallback", false, "show unconstrained dfs paths when constraints reject everything")
	cmd.Flags().BoolVar(&enumerate, "enumerate", false, "enumerate equally short paths instead of running a single search")
	cmd.Flags().BoolVar(&asGeoJSON, "geojson", false, "print the result as GeoJSON")
	return cmd
}
