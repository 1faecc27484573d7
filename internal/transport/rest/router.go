package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/pricewatch-bot/internal/transport/middleware"
)

// NewRouter mounts the probes and the Prometheus scrape endpoint.
func NewRouter(log *slog.Logger, health *HealthHandler, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
	)

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
		ErrorLog: slog.NewLogLogger(log.Handler(), slog.LevelError),
	}))

	return r
}
