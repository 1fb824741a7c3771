package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"zctadb/internal/api"
	"zctadb/internal/config"
	"zctadb/internal/exporter"
	"zctadb/internal/filter"
	"zctadb/internal/reader"
	"zctadb/pkg/domain"
	"zctadb/pkg/logger"
	"zctadb/pkg/metrics"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// errNothingExported makes the command fail when the selection is empty.
var errNothingExported = errors.New("no features matched the selection")

// serve starts srv in the background and returns a function that stops it.
func serve(ctx context.Context, srv *http.Server) func(ctx context.Context) {
	go func() {
		logger.Info(ctx, "starting ops listener...", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start ops listener", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping ops listener...")
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop ops listener", zap.Error(err))
		}
	}
}

// exportCommand constructs the 'export' subcommand running the whole
// pipeline: filter selection, chunked read, then export.
func exportCommand(cfg *config.Config) *cobra.Command {
	var flags struct {
		state     string
		source    string
		digitMax  int
		pointMax  int
		validOnly bool
		migrate   bool
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Reads the ZCTA dataset and exports it to the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("state") {
				cfg.Export.State = flags.state
			}
			if cmd.Flags().Changed("source") {
				cfg.Source.Path = flags.source
			}
			if cmd.Flags().Changed("digit-max") {
				cfg.Export.DigitMax = flags.digitMax
			}
			if cmd.Flags().Changed("point-max") {
				cfg.Export.PointMax = flags.pointMax
			}
			if cmd.Flags().Changed("valid-only") {
				cfg.Export.ValidOnly = flags.validOnly
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			selection, err := filter.New(cfg.Export.State, cfg.Export.ValidOnly)
			if err != nil {
				return err
			}
			ctx = logger.WithFields(ctx, zap.String("selection", selection.Name()))

			store, closeStore, err := getStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			if flags.migrate {
				if err := migrate(ctx, store); err != nil {
					return err
				}
			}

			var (
				exp      exporter.Exporter
				provider metric.MeterProvider
				srv      *http.Server
			)
			if cfg.Metrics.Addr != "" {
				server, mp, err := api.NewServer(api.Deps{
					Progress: func() domain.ExportStats { return exp.Progress() },
					Ping:     store.Ping,
				}, api.NewOptions(cfg))
				if err != nil {
					return err
				}
				defer func() {
					if err := mp.Shutdown(context.Background()); err != nil {
						logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
					}
				}()
				srv, provider = server, mp
			}

			m, err := metrics.NewExport(provider)
			if err != nil {
				return err
			}
			exp, err = exporter.New(exporter.NewOptions(cfg, os.Stdout), exporter.Deps{
				Storage: store,
				Filter:  selection,
				Metrics: m,
			})
			if err != nil {
				return err
			}

			if srv != nil {
				stopServer := serve(ctx, srv)
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
					defer cancel()
					stopServer(shutdownCtx)
				}()
			}

			features, err := reader.New(nil, reader.NewOptions(cfg, os.Stdout)).Read(ctx, cfg.Source.Path)
			if err != nil {
				return err
			}

			_, ok, err := exp.Export(ctx, features)
			if err != nil {
				return err
			}
			if !ok {
				return errNothingExported
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&flags.state, "state", "", "Two-letter region code, all regions when empty")
	cmd.Flags().StringVar(&flags.source, "source", "", "Path of the .shp or .geojson dataset")
	cmd.Flags().IntVar(&flags.digitMax, "digit-max", 0, "Decimal places kept on coordinates")
	cmd.Flags().IntVar(&flags.pointMax, "point-max", 0, "Maximum points of an exterior ring")
	cmd.Flags().BoolVar(&flags.validOnly, "valid-only", false, "Skip features that are not regular active ZCTAs")
	cmd.Flags().BoolVar(&flags.migrate, "migrate", true, "Apply migrations before exporting")

	return cmd
}
