package metrics_test

import (
	"context"
	"testing"
	"time"

	"zctadb/pkg/metrics"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	res := make(map[string]metricdata.Aggregation)
	for _, sm := range rm.ScopeMetrics {
		require.Equal(t, metrics.MeterName, sm.Scope.Name)
		for _, m := range sm.Metrics {
			res[m.Name] = m.Data
		}
	}

	return res
}

func TestExport_Records(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	e, err := metrics.NewExport(provider)
	require.NoError(t, err)

	ctx := context.Background()
	e.Feature(ctx, 20*time.Millisecond)
	e.Feature(ctx, 2*time.Second)
	e.Skipped(ctx)
	e.FailedWrite(ctx, metrics.TargetArea)
	e.FailedWrite(ctx, metrics.TargetArea)
	e.FailedWrite(ctx, metrics.TargetBox)
	e.NonConverged(ctx)
	e.Points(ctx, 101)
	e.Remaining(ctx, 90*time.Second)

	data := collect(t, reader)

	features, ok := data["zctadb_export_features"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.EqualValues(t, 2, features.DataPoints[0].Value)

	failed, ok := data["zctadb_export_failed_writes"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, failed.DataPoints, 2)

	points, ok := data["zctadb_export_points"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.EqualValues(t, 101, points.DataPoints[0].Value)

	hist, ok := data["zctadb_export_feature_duration_seconds"].(metricdata.Histogram[float64])
	require.True(t, ok)
	require.EqualValues(t, 2, hist.DataPoints[0].Count)
	require.Equal(t, metrics.DefaultBuckets, hist.DataPoints[0].Bounds)

	remaining, ok := data["zctadb_export_remaining_seconds"].(metricdata.Gauge[float64])
	require.True(t, ok)
	require.InDelta(t, 90, remaining.DataPoints[0].Value, 1e-9)
}

func TestNewExport_Noop(t *testing.T) {
	t.Parallel()

	e, err := metrics.NewExport(nil)
	require.NoError(t, err)
	require.NotPanics(t, func() {
		e.Feature(context.Background(), time.Second)
		e.FailedWrite(context.Background(), metrics.TargetPoints)
	})
}
