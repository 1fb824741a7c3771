package exporter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"sync"
	"time"

	"zctadb/internal/config"
	"zctadb/internal/console"
	"zctadb/internal/filter"
	"zctadb/internal/geometry"
	"zctadb/pkg/domain"
	"zctadb/pkg/logger"
	"zctadb/pkg/metrics"
	"zctadb/pkg/serrors"
	"zctadb/pkg/storage"

	"go.uber.org/zap"
)

// MinProgressInterval is the shortest time allowed between two progress
// reports.
const MinProgressInterval = 500 * time.Millisecond

// MinPointMax is the smallest usable point budget: a closed ring needs at
// least four points.
const MinPointMax = 4

// Options configure an export run. They are typically derived from
// application configuration via NewOptions.
type Options struct {
	// DigitMax is the number of decimal places kept on stored coordinates.
	DigitMax int
	// PointMax bounds the number of points of every stored exterior ring.
	PointMax int
	// ProgressInterval is the minimum time between progress reports. Values
	// below MinProgressInterval are raised to it.
	ProgressInterval time.Duration
	// InteriorBoxOwner selects the area a hole's bounding box is attached to:
	// config.BoxOwnerExterior or config.BoxOwnerInterior.
	InteriorBoxOwner string
	// Simplify tunes the tolerance search.
	Simplify geometry.Options
	// Database names the target store in the progress display.
	Database string
	// Output receives the export statistics display. Nil disables it.
	Output io.Writer
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config, output io.Writer) Options {
	return Options{
		DigitMax:         cfg.Export.DigitMax,
		PointMax:         cfg.Export.PointMax,
		ProgressInterval: cfg.Export.ProgressInterval,
		InteriorBoxOwner: cfg.Export.InteriorBoxOwner,
		Simplify:         geometry.NewOptions(cfg),
		Database:         cfg.DatabaseName(),
		Output:           output,
	}
}

// Deps are the collaborators of an exporter.
type Deps struct {
	// Storage receives every record. Required.
	Storage storage.Storage
	// Filter selects and orders the features. Nil exports all of them.
	Filter filter.Filter
	// Metrics records progress instruments. Nil records nothing.
	Metrics *metrics.Export
	// Now is the clock used for progress estimation. Nil uses time.Now.
	Now func() time.Time
	// Simplifier reduces oversized parts. Nil uses a geometry.Simplifier
	// built from Options.Simplify.
	Simplifier Simplifier
}

// exporter is the concrete implementation of the Exporter interface.
type exporter struct {
	options    Options
	storage    storage.Storage
	filter     filter.Filter
	metrics    *metrics.Export
	simplifier Simplifier
	now        func() time.Time

	mu    sync.Mutex
	stats domain.ExportStats
}

// New creates an Exporter.
func New(options Options, deps Deps) (Exporter, error) {
	if deps.Storage == nil {
		return nil, errors.New("exporter needs a storage")
	}
	if options.PointMax < MinPointMax {
		return nil, fmt.Errorf("point max must be at least %d, got %d", MinPointMax, options.PointMax)
	}
	if deps.Filter == nil {
		deps.Filter = filter.All()
	}
	if deps.Metrics == nil {
		m, err := metrics.NewExport(nil)
		if err != nil {
			return nil, err
		}
		deps.Metrics = m
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Simplifier == nil {
		deps.Simplifier = geometry.NewSimplifier(options.Simplify)
	}
	if options.ProgressInterval < MinProgressInterval {
		options.ProgressInterval = MinProgressInterval
	}
	if options.InteriorBoxOwner == "" {
		options.InteriorBoxOwner = config.BoxOwnerExterior
	}

	return &exporter{
		options:    options,
		storage:    deps.Storage,
		filter:     deps.Filter,
		metrics:    deps.Metrics,
		simplifier: deps.Simplifier,
		now:        deps.Now,
	}, nil
}

// Export implements Exporter.
func (e *exporter) Export(ctx context.Context, features domain.FeatureCollection) (domain.ExportStats, bool, error) {
	selected := e.filter.Apply(features)

	started := e.now()
	e.update(func(s *domain.ExportStats) {
		*s = domain.ExportStats{
			Selection: e.filter.Name(),
			Total:     len(selected),
			Started:   started,
		}
	})
	ctx = logger.WithFields(ctx, zap.String("selection", e.filter.Name()))

	if len(selected) == 0 {
		logger.Warn(ctx, "no features to export", zap.Int("read", len(features)))

		return e.Progress(), false, nil
	}

	var p *console.Printer
	if e.options.Output != nil {
		p = console.New(e.options.Output)
	}
	p.Active("Database File:", e.options.Database)
	p.Active("Rows to Export:", strconv.Itoa(len(selected)))
	p.Active("Export Start:", console.Clock(started))

	progress := newReporter(e.options.ProgressInterval, started, p, e.metrics)
	progress.report(ctx, 0, len(selected), started)

	var err error
	for _, f := range selected {
		if err = ctx.Err(); err != nil {
			break
		}

		e.exportFeature(ctx, f)

		now := e.now()
		stats := e.update(func(s *domain.ExportStats) { s.Done++ })
		if remaining, ok := progress.tick(ctx, stats.Done, stats.Total, now); ok {
			e.update(func(s *domain.ExportStats) { s.Remaining = remaining })
		}
	}

	stats := e.Progress()
	remaining := progress.report(ctx, stats.Done, stats.Total, e.now())
	stats = e.update(func(s *domain.ExportStats) { s.Remaining = remaining })
	p.End()
	p.Done("Export End:", console.Clock(e.now()))
	if stats.Failed() {
		p.Failed("%d skipped, %d failed areas, %d failed point sets, %d failed boxes, %d invalid, %d not converged",
			stats.Skipped, stats.FailedAreas, stats.FailedPointSets, stats.FailedBoxes,
			stats.InvalidGeometries, stats.NonConverged)
	}

	fields := []zap.Field{
		zap.Int("total", stats.Total),
		zap.Int("done", stats.Done),
		zap.Int("skipped", stats.Skipped),
		zap.Int("failed_areas", stats.FailedAreas),
		zap.Int("failed_point_sets", stats.FailedPointSets),
		zap.Int("failed_boxes", stats.FailedBoxes),
		zap.Int("invalid_geometries", stats.InvalidGeometries),
		zap.Int("non_converged", stats.NonConverged),
		zap.Int("areas", stats.Areas),
		zap.Int("points", stats.Points),
		zap.Duration("took", e.now().Sub(started)),
	}
	if err != nil {
		logger.Warn(ctx, "export cancelled", append(fields, zap.Error(err))...)

		return stats, true, err
	}
	logger.Info(ctx, "export finished", fields...)

	return stats, true, nil
}

// Progress implements Exporter.
func (e *exporter) Progress() domain.ExportStats {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.stats
}

func (e *exporter) update(cb func(s *domain.ExportStats)) domain.ExportStats {
	e.mu.Lock()
	defer e.mu.Unlock()

	cb(&e.stats)

	return e.stats
}

// exportFeature stores one feature. A feature whose zip code cannot be stored
// gets no geometry at all.
func (e *exporter) exportFeature(ctx context.Context, f domain.Feature) {
	ctx = logger.WithFields(ctx, zap.String("zip", f.Zip))
	start := e.now()
	defer func() { e.metrics.Feature(ctx, e.now().Sub(start)) }()

	zip, err := e.addZipCode(ctx, f)
	if err != nil {
		logger.Error(ctx, "could not store zip code, skipping its geometry", zap.Error(err))
		e.update(func(s *domain.ExportStats) { s.Skipped++ })
		e.metrics.Skipped(ctx)

		return
	}

	parts, multi, err := geometry.Parts(f.Geometry)
	if err != nil {
		logger.Error(ctx, "unusable geometry", zap.Error(err))
		e.update(func(s *domain.ExportStats) { s.InvalidGeometries++ })

		return
	}

	for i, part := range parts {
		ctx := logger.WithFields(ctx, zap.Int("part", i))

		simplified, result, err := e.simplifier.Simplify(part, e.options.PointMax)
		switch {
		case errors.Is(err, serrors.ErrNonConvergence):
			logger.Warn(ctx, "storing best effort simplification", zap.Error(err))
			e.update(func(s *domain.ExportStats) { s.NonConverged++ })
			e.metrics.NonConverged(ctx)
		case err != nil:
			logger.Error(ctx, "could not simplify part", zap.Error(err))
			e.update(func(s *domain.ExportStats) { s.InvalidGeometries++ })

			continue
		case result.Iterations > 0:
			logger.Debug(ctx, "simplified part",
				zap.Float64("tolerance", result.Tolerance),
				zap.Int("iterations", result.Iterations),
				zap.Int("points", geometry.ExteriorSize(simplified)))
		}

		e.decompose(ctx, zip.ID, simplified, multi)
	}
}

func (e *exporter) addZipCode(ctx context.Context, f domain.Feature) (*domain.ZipCode, error) {
	if err := domain.ValidateZip(f.Zip); err != nil {
		return nil, serrors.Wrap(serrors.ErrValidation, err, "invalid zip code")
	}

	lat := geometry.Round(f.Lat, e.options.DigitMax)
	lon := geometry.Round(f.Lon, e.options.DigitMax)
	if !finite(lat, lon) {
		return nil, serrors.With(serrors.ErrValidation, "invalid centroid %v,%v", f.Lat, f.Lon)
	}

	var zip *domain.ZipCode
	err := e.write(ctx, "store zip code", func(tx storage.AllStorage) error {
		var err error
		zip, err = tx.AddZipCode(ctx, f.Zip, lat, lon)

		return err
	})

	return zip, err
}

// write runs cb in its own transaction and classifies unclassified failures
// as store write errors.
func (e *exporter) write(ctx context.Context, op string, cb func(tx storage.AllStorage) error) error {
	if err := e.storage.WithTx(ctx, cb); err != nil {
		if serrors.KindOf(err) == nil {
			err = serrors.Wrap(serrors.ErrStoreWrite, err, "could not %s", op)
		}

		return err
	}

	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
