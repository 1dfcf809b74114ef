// Package httptransport wires the public HTTP surface: the checklist API,
// health and Prometheus endpoints, with the shared middleware chain.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checklisthandler "chaincheck/internal/checklist/handler"
	"chaincheck/internal/platform/metrics"
	"chaincheck/internal/platform/middleware"
)

// NewRouter builds the full router. Handlers stay thin; cross-cutting
// concerns live in the middleware chain.
func NewRouter(h *checklisthandler.Handler, logger *slog.Logger, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.Latency(m))

	r.Route("/api/v1", func(api chi.Router) {
		h.Register(api)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
