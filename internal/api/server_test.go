package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zctadb/internal/api"
	"zctadb/pkg/domain"
	"zctadb/pkg/metrics"

	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)

	return rec.Code, string(body)
}

func TestNewServer(t *testing.T) {
	srv, mp, err := api.NewServer(api.Deps{
		Progress: func() domain.ExportStats { return domain.ExportStats{Selection: "ALL", Total: 3} },
		Ping:     func(context.Context) error { return nil },
	}, api.Options{
		Addr:              "127.0.0.1:0",
		MetricsPath:       "/metrics",
		ReadHeaderTimeout: time.Second,
		HealthTimeout:     time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := metrics.NewExport(mp)
	require.NoError(t, err)
	m.Points(context.Background(), 42)

	code, body := get(t, srv.Handler, "/metrics")
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "go_goroutines")
	require.Contains(t, body, "zctadb_export_points")

	code, body = get(t, srv.Handler, api.ProgressPath)
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, `"selection":"ALL"`)

	code, _ = get(t, srv.Handler, api.HealthPath)
	require.Equal(t, http.StatusOK, code)

	code, _ = get(t, srv.Handler, api.PprofPrefix)
	require.Equal(t, http.StatusOK, code)
}

func TestNewServer_OptionalRoutes(t *testing.T) {
	srv, mp, err := api.NewServer(api.Deps{}, api.Options{MetricsPath: "/metrics"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	code, _ := get(t, srv.Handler, api.ProgressPath)
	require.Equal(t, http.StatusNotFound, code)
	code, _ = get(t, srv.Handler, api.HealthPath)
	require.Equal(t, http.StatusNotFound, code)
}
