package main

import (
	"zctadb/internal/console"
	"zctadb/internal/source"

	"github.com/spf13/cobra"
)

// checkCommand constructs the 'check' subcommand validating that a shapefile
// comes with its index and attribute files.
func checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.shp>",
		Short: "Checks that a shapefile has its .shx and .dbf companions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := console.New(cmd.OutOrStdout())
			if err := source.CheckShapefile(args[0]); err != nil {
				p.Failed("%v", err)

				return err
			}
			p.Done("Shape File:", args[0])

			return nil
		},
	}
}
