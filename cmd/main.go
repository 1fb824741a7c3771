// Package main provides the CLI entrypoint of zctadb. It wires subcommands
// (migrate, check, export, show, regions), loads configuration, and
// initializes logging.
package main

import (
	"context"
	"fmt"
	"os"

	"zctadb/internal/config"
	"zctadb/pkg/logger"
	"zctadb/pkg/storage/sqlstore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getStorage opens the configured database and returns it along with a
// cleanup function closing it.
func getStorage(ctx context.Context, cfg *config.Config) (*sqlstore.Store, func(), error) {
	var (
		store *sqlstore.Store
		err   error
	)
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		store, err = sqlstore.NewPostgres(ctx, sqlstore.PostgresOptions{
			Username:           cfg.Database.Username,
			Password:           cfg.Database.Password,
			Host:               cfg.Database.Host,
			Port:               cfg.Database.Port,
			Database:           cfg.Database.DatabaseName,
			ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
			MaxOpenConnections: cfg.Database.MaxOpenConnections,
			MaxIdleConnections: cfg.Database.MaxIdleConnections,
			SslMode:            cfg.Database.SslMode,
		})
	default:
		store, err = sqlstore.NewSQLite(ctx, sqlstore.SQLiteOptions{Path: cfg.SQLitePath()})
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %s storage: %w", cfg.Database.Driver, err)
	}

	return store, func() {
		logger.Debug(ctx, "closing storage...")
		if err := store.Close(); err != nil {
			logger.Warn(ctx, "could not close storage", zap.Error(err))
		}
	}, nil
}

// rootCommand builds the CLI. The config file named by --config is loaded
// into cfg before any subcommand runs, so subcommands read cfg lazily.
func rootCommand() *cobra.Command {
	var (
		cfg        config.Config
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:           "zctadb",
		Short:         "Exports ZIP Code Tabulation Area boundaries to a relational database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}
			cfg = *loaded

			if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
				return err
			}

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path, environment only when empty")

	rootCmd.AddCommand(
		migrateCommand(&cfg),
		checkCommand(),
		exportCommand(&cfg),
		showCommand(&cfg),
		regionsCommand(),
	)

	return rootCmd
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	err := rootCommand().ExecuteContext(ctx)
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
	}
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
