package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLocationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List the named locations known to the resolver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(cfg.Locations))
			for name := range cfg.Locations {
				names = append(names, name)
			}
			sort.Strings(names)

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			defer w.Flush()
			for _, name := range names {
				coord := cfg.Locations[name]
				fmt.Fprintf(w, "%s\t%.4f, %.4f\n", name, coord.Lat, coord.Lon)
			}
			return nil
		},
	}
	return cmd
}
