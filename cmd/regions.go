package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"zctadb/internal/filter"

	"github.com/spf13/cobra"
)

// regionsCommand constructs the 'regions' subcommand listing the region codes
// accepted by --state.
func regionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "Lists region codes and their ZIP ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range filter.Regions() {
				ranges := make([]string, 0, len(r.Ranges))
				for _, rg := range r.Ranges {
					ranges = append(ranges, rg.Low+"-"+rg.High)
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", r.Code, r.Name, strings.Join(ranges, ", "))
			}

			return w.Flush()
		},
	}
}
