package main

import (
	"context"
	"fmt"

	root "zctadb"
	"zctadb/internal/config"
	"zctadb/pkg/logger"
	"zctadb/pkg/storage/sqlstore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrate applies the embedded migrations of the store's dialect.
func migrate(ctx context.Context, store *sqlstore.Store) error {
	version, err := store.Migrate(ctx, root.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("could not migrate: %w", err)
	}
	logger.Info(ctx, "database is up to date", zap.String("dialect", store.Dialect()), zap.Int64("version", version))

	return nil
}

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand(cfg *config.Config) *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if cmd.Flags().Changed("state") {
				cfg.Export.State = state
			}

			store, closeStore, err := getStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			return migrate(ctx, store)
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "Region whose default SQLite file is migrated")

	return cmd
}
