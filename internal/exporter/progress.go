package exporter

import (
	"context"
	"strconv"
	"time"

	"zctadb/internal/console"
	"zctadb/pkg/metrics"
)

// EstimateRemaining extrapolates the time left linearly from the time spent
// on the rows done so far. It returns zero before the first row is done.
func EstimateRemaining(done, total int, elapsed time.Duration) time.Duration {
	if done <= 0 || total <= done {
		return 0
	}

	return time.Duration(float64(total-done) / float64(done) * float64(elapsed))
}

// reporter throttles progress reports to one per interval.
type reporter struct {
	interval time.Duration
	started  time.Time
	last     time.Time
	printer  *console.Printer
	metrics  *metrics.Export
	drawn    bool
}

func newReporter(interval time.Duration,
	started time.Time,
	printer *console.Printer,
	m *metrics.Export,
) *reporter {
	return &reporter{
		interval: interval,
		started:  started,
		last:     started,
		printer:  printer,
		metrics:  m,
	}
}

// tick reports progress when at least interval passed since the last report.
func (r *reporter) tick(ctx context.Context, done, total int, now time.Time) (time.Duration, bool) {
	if now.Sub(r.last) < r.interval {
		return 0, false
	}

	return r.report(ctx, done, total, now), true
}

// report publishes the estimate unconditionally.
func (r *reporter) report(ctx context.Context, done, total int, now time.Time) time.Duration {
	remaining := EstimateRemaining(done, total, now.Sub(r.started))
	r.last = now

	r.printer.Line(r.drawn,
		"Rows Exported:", strconv.Itoa(done),
		"Time Remaining:", console.HMS(remaining))
	r.drawn = true
	r.metrics.Remaining(ctx, remaining)

	return remaining
}
