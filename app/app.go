package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"

	"github.com/Black-And-White-Club/team-classification/app/modules/classification"
	classificationmetrics "github.com/Black-And-White-Club/team-classification/app/modules/classification/infrastructure/metrics"
	"github.com/Black-And-White-Club/team-classification/config"
)

const serviceName = "team-classification"

// App holds the wired modules for one run.
type App struct {
	Cfg            *config.Config
	Logger         *slog.Logger
	Registry       *prometheus.Registry
	Classification *classification.Module
}

// NewApp initializes the application with the necessary modules and observability.
func NewApp(cfg *config.Config, logOutput io.Writer) (*App, error) {
	logger := NewLogger(cfg.Observability, logOutput)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := classificationmetrics.NewPrometheusMetrics(registry)

	tracer := otel.Tracer(serviceName)

	module, err := classification.NewClassificationModule(cfg, logger, metrics, tracer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize classification module: %w", err)
	}

	return &App{
		Cfg:            cfg,
		Logger:         logger,
		Registry:       registry,
		Classification: module,
	}, nil
}

// Close flushes the metrics textfile, if one is configured.
func (a *App) Close() error {
	return classificationmetrics.WriteTextfile(a.Cfg.Observability.MetricsFile, a.Registry)
}

// NewLogger builds the run logger. Unknown levels fall back to info.
func NewLogger(cfg config.ObservabilityConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.LogLevel))); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("service", serviceName),
		slog.String("environment", cfg.Environment),
	)
}
