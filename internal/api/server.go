// Package api configures the operational HTTP listener of long running
// exports: prometheus metrics, export progress, health and pprof.
package api

import (
	"fmt"
	"net/http"
	"time"

	"zctadb/internal/config"
	"zctadb/pkg/controller"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Routes served next to the metrics path.
const (
	ProgressPath = "/progress"
	HealthPath   = "/healthz"
	PprofPrefix  = "/debug/pprof/"
)

// Options holds configuration for the listener. It is typically created from
// a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":9090".
	Addr string
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// HealthTimeout bounds the dependency check of the health endpoint.
	HealthTimeout time.Duration
}

// NewOptions maps the metrics listener settings of cfg.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.Metrics.Addr,
		MetricsPath:       cfg.Metrics.Path,
		ReadHeaderTimeout: cfg.Metrics.ReadHeaderTimeout,
		WriteTimeout:      cfg.Metrics.WriteTimeout,
		HealthTimeout:     cfg.Metrics.HealthTimeout,
	}
}

// Deps are the export hooks the listener reports on. Nil hooks disable their
// route.
type Deps struct {
	Progress controller.ProgressFunc
	Ping     controller.PingFunc
}

// NewServer wires up the listener and the meter provider whose instruments
// it exposes. Each server gets its own prometheus registry holding the go
// and process collectors plus the otel exporter.
func NewServer(deps Deps, opts Options) (*http.Server, *sdkmetric.MeterProvider, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, nil, fmt.Errorf("could not register go collector: %w", err)
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, nil, fmt.Errorf("could not register process collector: %w", err)
	}

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	mux := http.NewServeMux()
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	if deps.Progress != nil {
		mux.Handle(ProgressPath, controller.ProgressHandler(deps.Progress))
	}
	if deps.Ping != nil {
		mux.Handle(HealthPath, controller.HealthHandler(deps.Ping, opts.HealthTimeout))
	}
	mux.Handle(PprofPrefix, controller.PprofMux(PprofPrefix))

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           controller.WithLogger(mux),
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
	}, mp, nil
}
