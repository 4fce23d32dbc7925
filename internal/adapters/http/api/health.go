package api

import (
	"net/http"

	"github.com/okian/podium/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthHandler handles health check requests.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HandleHealth handles GET /healthz requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NewMetricsHandler serves the custom Prometheus registry.
func NewMetricsHandler() http.Handler {
	return promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{})
}
