// Package cli implements the addis-routing command-line interface.
//
// The CLI is built with cobra. All commands support --verbose (-v) for
// debug-level logging; loggers are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. Called by
// the main package with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// ExecuteContext runs the addis-routing CLI and returns an error if any
// command fails. The context cancels long-running commands on SIGINT.
func ExecuteContext(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "addis-routing",
		Short:        "Route search for the Addis Ababa road network",
		Long:         `addis-routing finds and compares routes on an OpenStreetMap road graph of Addis Ababa, using breadth-first, depth-first or A* search with optional path constraints.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("addis-routing %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringP("config", "c", "", "path to a TOML config file")

	root.AddCommand(newServeCmd())
	root.AddCommand(newRouteCmd())
	root.AddCommand(newBuildCmd())
	root.AddCommand(newLocationsCmd())
	root.AddCommand(newBenchCmd())

	return root.ExecuteContext(ctx)
}
