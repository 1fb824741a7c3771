package main

import (
	"fmt"
	"strconv"

	"zctadb/internal/config"
	"zctadb/internal/console"
	"zctadb/pkg/domain"
	"zctadb/pkg/serrors"
	"zctadb/pkg/storage"

	"github.com/spf13/cobra"
)

// showCommand constructs the 'show' subcommand printing what was stored for
// a ZIP code.
func showCommand(cfg *config.Config) *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "show <zip>",
		Short: "Prints the stored areas, point counts and boxes of a ZIP code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := domain.ValidateZip(args[0]); err != nil {
				return serrors.Wrap(serrors.ErrValidation, err, "invalid zip code")
			}
			if cmd.Flags().Changed("state") {
				cfg.Export.State = state
			}

			store, closeStore, err := getStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			zips, err := store.ZipCodes(ctx, storage.ZipCodeFilter{Code: args[0]})
			if err != nil {
				return fmt.Errorf("could not get zip codes: %w", err)
			}
			if len(zips) == 0 {
				return serrors.With(serrors.ErrNotFound, "zip code %s is not stored", args[0])
			}

			p := console.New(cmd.OutOrStdout())
			for _, zip := range zips {
				p.Done("Zip Code:", zip.Code)
				p.Done("Centroid:", fmt.Sprintf("%g, %g", zip.Lat, zip.Lon))

				areas, err := store.TabulationAreas(ctx, zip.ID)
				if err != nil {
					return fmt.Errorf("could not get tabulation areas: %w", err)
				}
				for _, area := range areas {
					points, err := store.BoundaryPoints(ctx, area.ID)
					if err != nil {
						return fmt.Errorf("could not get boundary points: %w", err)
					}
					boxes, err := store.BoundingBoxes(ctx, area.ID)
					if err != nil {
						return fmt.Errorf("could not get bounding boxes: %w", err)
					}

					kind := "exterior"
					if area.Interior {
						kind = "interior"
					}
					if area.Multi {
						kind += " (multi)"
					}
					p.Active("Area "+strconv.FormatInt(int64(area.ID), 10)+":", kind)
					p.Active("Points:", strconv.Itoa(len(points)))
					for _, b := range boxes {
						p.Active("Box:", fmt.Sprintf("lat %g..%g lon %g..%g", b.MinLat, b.MaxLat, b.MinLon, b.MaxLon))
					}
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "Region whose default SQLite file is read")

	return cmd
}
