package controller

import (
	"context"
	"net/http"
	"net/http/pprof"
	"time"

	"zctadb/pkg/domain"
	"zctadb/pkg/logger"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// PprofMux returns an http.ServeMux with net/http/pprof handlers registered
// under prefix, e.g. "/debug/pprof/".
func PprofMux(prefix string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(prefix, pprof.Index)
	mux.HandleFunc(prefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(prefix+"profile", pprof.Profile)
	mux.HandleFunc(prefix+"symbol", pprof.Symbol)
	mux.HandleFunc(prefix+"trace", pprof.Trace)

	return mux
}

// ProgressFunc returns the current export tally.
type ProgressFunc func() domain.ExportStats

// ProgressHandler serves the tally returned by progress as a JSON object.
func ProgressHandler(progress ProgressFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := progress()

		var e jx.Encoder
		e.ObjStart()
		e.FieldStart("selection")
		e.Str(s.Selection)
		for _, f := range []struct {
			name  string
			value int
		}{
			{"total", s.Total},
			{"done", s.Done},
			{"skipped", s.Skipped},
			{"failedAreas", s.FailedAreas},
			{"failedPointSets", s.FailedPointSets},
			{"failedBoxes", s.FailedBoxes},
			{"invalidGeometries", s.InvalidGeometries},
			{"nonConverged", s.NonConverged},
			{"areas", s.Areas},
			{"points", s.Points},
		} {
			e.FieldStart(f.name)
			e.Int(f.value)
		}
		e.FieldStart("started")
		if s.Started.IsZero() {
			e.Null()
		} else {
			e.Str(s.Started.Format(time.RFC3339))
		}
		e.FieldStart("remainingSeconds")
		e.Float64(s.Remaining.Seconds())
		e.ObjEnd()

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(e.Bytes()); err != nil {
			logger.Debug(r.Context(), "could not write progress", zap.Error(err))
		}
	})
}

// PingFunc checks a dependency.
type PingFunc func(ctx context.Context) error

// HealthHandler answers 200 when ping succeeds within timeout and 503
// otherwise.
func HealthHandler(ping PingFunc, timeout time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := ping(ctx); err != nil {
			logger.Warn(ctx, "health check failed", zap.Error(err))
			http.Error(w, "unavailable", http.StatusServiceUnavailable)

			return
		}

		_, _ = w.Write([]byte("ok"))
	})
}
