package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgetachew/addis-routing/pkg/graph/path"
)

type kpiReporter interface {
	KPIs() path.SearchKPIs
}

func newBenchCmd() *cobra.Command {
	var (
		algorithm string
		searches  int
		maxPaths  int
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the search algorithms on random node pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if algorithm == "" {
				algorithm = cfg.Search.Algorithm
			}

			controller, _, err := buildEngine(cmd, cfg)
			if err != nil {
				return err
			}
			g := controller.Graph()
			if g.NodeCount() == 0 {
				return fmt.Errorf("graph is empty")
			}

			search, err := path.NewAlgorithm(algorithm, g)
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(seed))
			var (
				found    int
				total    time.Duration
				kpiTotal path.SearchKPIs
			)
			for i := 0; i < searches; i++ {
				start := rng.Intn(g.NodeCount())
				goal := rng.Intn(g.NodeCount())

				began := time.Now()
				result, err := search.Find(cmd.Context(), start, goal, nil, maxPaths)
				if err != nil {
					return err
				}
				total += time.Since(began)

				if result.Success {
					found++
				}
				if reporter, ok := search.(kpiReporter); ok {
					kpis := reporter.KPIs()
					kpiTotal.NodesProcessed += kpis.NodesProcessed
					kpiTotal.PqPops += kpis.PqPops
					kpiTotal.PqUpdates += kpis.PqUpdates
					kpiTotal.RelaxedEdges += kpis.RelaxedEdges
				}
			}

			fmt.Printf("algorithm: %s\n", search.Name())
			fmt.Printf("searches: %d, reachable: %d\n", searches, found)
			fmt.Printf("total: %s, average: %s\n", total, total/time.Duration(searches))
			fmt.Printf("nodes processed: %d, pq pops: %d, pq updates: %d, relaxed edges: %d\n",
				kpiTotal.NodesProcessed, kpiTotal.PqPops, kpiTotal.PqUpdates, kpiTotal.RelaxedEdges)
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "search algorithm: bfs, dfs or astar")
	cmd.Flags().IntVarP(&searches, "searches", "n", 100, "number of random searches")
	cmd.Flags().IntVar(&maxPaths, "max-paths", 1, "number of paths per search")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for target selection")
	return cmd
}
