// Package metrics declares the OpenTelemetry instruments recorded by export
// runs. Instruments are created from a caller supplied meter so the process
// can expose them through prometheus or drop them with a noop provider.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// MeterName is the instrumentation scope of export metrics.
const MeterName = "zctadb/exporter"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Failure targets used as the "target" attribute of FailedWrites.
const (
	TargetZipCode = "zip_code"
	TargetArea    = "area"
	TargetPoints  = "points"
	TargetBox     = "box"
)

// Export holds the instruments of an export run.
type Export struct {
	features      metric.Int64Counter
	skipped       metric.Int64Counter
	failedWrites  metric.Int64Counter
	nonConverged  metric.Int64Counter
	storedPoints  metric.Int64Counter
	featureTime   metric.Float64Histogram
	remainingTime metric.Float64Gauge
}

// NewExport creates the export instruments on provider. A nil provider
// yields instruments that record nothing.
func NewExport(provider metric.MeterProvider) (*Export, error) {
	if provider == nil {
		provider = noop.NewMeterProvider()
	}
	meter := provider.Meter(MeterName)

	var (
		e   Export
		err error
	)
	if e.features, err = meter.Int64Counter("zctadb_export_features",
		metric.WithDescription("Features processed by the export loop.")); err != nil {
		return nil, fmt.Errorf("could not create features counter: %w", err)
	}
	if e.skipped, err = meter.Int64Counter("zctadb_export_skipped_features",
		metric.WithDescription("Features whose zip code could not be stored.")); err != nil {
		return nil, fmt.Errorf("could not create skipped counter: %w", err)
	}
	if e.failedWrites, err = meter.Int64Counter("zctadb_export_failed_writes",
		metric.WithDescription("Rolled back writes by target record type.")); err != nil {
		return nil, fmt.Errorf("could not create failed writes counter: %w", err)
	}
	if e.nonConverged, err = meter.Int64Counter("zctadb_export_non_converged",
		metric.WithDescription("Simplifications that hit the iteration cap.")); err != nil {
		return nil, fmt.Errorf("could not create non converged counter: %w", err)
	}
	if e.storedPoints, err = meter.Int64Counter("zctadb_export_points",
		metric.WithDescription("Boundary points stored.")); err != nil {
		return nil, fmt.Errorf("could not create points counter: %w", err)
	}
	if e.featureTime, err = meter.Float64Histogram("zctadb_export_feature_duration_seconds",
		metric.WithDescription("Time spent simplifying and storing one feature."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...)); err != nil {
		return nil, fmt.Errorf("could not create feature duration histogram: %w", err)
	}
	if e.remainingTime, err = meter.Float64Gauge("zctadb_export_remaining_seconds",
		metric.WithDescription("Estimated time until the export finishes."),
		metric.WithUnit("s")); err != nil {
		return nil, fmt.Errorf("could not create remaining time gauge: %w", err)
	}

	return &e, nil
}

// Feature records one processed feature and the time it took.
func (e *Export) Feature(ctx context.Context, took time.Duration) {
	e.features.Add(ctx, 1)
	e.featureTime.Record(ctx, took.Seconds())
}

// Skipped records a feature whose geometry was not processed.
func (e *Export) Skipped(ctx context.Context) {
	e.skipped.Add(ctx, 1)
}

// FailedWrite records a rolled back write of target.
func (e *Export) FailedWrite(ctx context.Context, target string) {
	e.failedWrites.Add(ctx, 1, metric.WithAttributes(attribute.String("target", target)))
}

// NonConverged records a simplification that returned a best effort result.
func (e *Export) NonConverged(ctx context.Context) {
	e.nonConverged.Add(ctx, 1)
}

// Points records stored boundary points.
func (e *Export) Points(ctx context.Context, n int) {
	e.storedPoints.Add(ctx, int64(n))
}

// Remaining records the latest time remaining estimate.
func (e *Export) Remaining(ctx context.Context, d time.Duration) {
	e.remainingTime.Record(ctx, d.Seconds())
}
