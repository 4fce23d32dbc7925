// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	repository "github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	MedalsDependencies
	RankingsDependencies
	RankDependencies
}

// Entry mirrors the read shape returned by ranking queries.
type Entry = types.Entry

// Medal mirrors the raw record returned by GET /api/medals.
type Medal = model.Medal

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	metricsHandler  http.Handler
	medalsHandler   *MedalsHandler
	rankingsHandler *RankingsHandler
	rankHandler     *RankHandler

	corsOrigins []string
	rateRPS     float64
	rateBurst   int
	logger      logger.Logger
}

// Option configures the middleware chain built by Handler.
type Option func(*Server)

// WithCORSOrigins sets the origins allowed to call the JSON API.
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

// WithRateLimit bounds API requests to rps per second with the given burst.
// rps 0 disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		if rps >= 0 {
			s.rateRPS = rps
			s.rateBurst = burst
		}
	}
}

// WithLogger sets the logger used by the request middleware.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		metricsHandler:  NewMetricsHandler(),
		medalsHandler:   NewMedalsHandler(deps),
		rankingsHandler: NewRankingsHandler(deps),
		rankHandler:     NewRankHandler(deps),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.medalsHandler.log = s.logger
	s.rankingsHandler.log = s.logger
	s.rankHandler.log = s.logger
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.Handle("/metrics", s.metricsHandler)
	mux.HandleFunc("/api/medals", MetricsMiddleware(s.medalsHandler.HandleGetMedals, "medals"))
	mux.HandleFunc("/api/rankings", MetricsMiddleware(s.rankingsHandler.HandleGetRankings, "rankings"))
	mux.HandleFunc("/api/rankings/", MetricsMiddleware(s.rankHandler.HandleGetRank, "rank"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeUpstreamError maps service errors to status codes: unknown countries
// are 404, anything else from the data source is a retryable 500.
// Failures other than 404 are logged with the request id when log is set.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, log logger.Logger, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "unavailable", Wrap(op, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", NewKind(op, ErrDataSource))
	}
	if log != nil {
		log.Error(r.Context(), "request failed",
			logger.String("requestId", RequestIDFromContext(r.Context())),
			logger.String("op", op),
			logger.Error(err),
		)
	}
}
