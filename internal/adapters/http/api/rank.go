package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// RankDependencies defines the interface for single-country lookups.
type RankDependencies interface {
	CountryRank(ctx context.Context, key types.SortKey, code string) (Entry, error)
	DefaultSort() types.SortKey
}

// RankHandler handles rank requests.
type RankHandler struct {
	deps RankDependencies
	log  logger.Logger
}

// NewRankHandler creates a new rank handler.
func NewRankHandler(deps RankDependencies) *RankHandler {
	return &RankHandler{deps: deps}
}

// HandleGetRank handles GET /api/rankings/{code}?sort=k requests.
func (h *RankHandler) HandleGetRank(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_rank"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /api/rankings/
	code := strings.TrimPrefix(r.URL.Path, "/api/rankings/")
	if code == "" || strings.Contains(code, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	raw := r.URL.Query().Get("sort")
	key, ok := types.ParseSortKey(raw)
	if !ok {
		if raw != "" {
			metrics.RecordSortFallback()
		}
		key = h.deps.DefaultSort()
	}
	entry, err := h.deps.CountryRank(r.Context(), key, code)
	if err != nil {
		writeUpstreamError(w, r, h.log, op, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
