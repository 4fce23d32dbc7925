package api

import (
	"context"
	"net/http"

	"github.com/okian/podium/internal/domain/ranking"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// RankingsDependencies defines the interface for ranking operations.
type RankingsDependencies interface {
	Rankings(ctx context.Context, key types.SortKey) (types.Ranking, error)
	DefaultSort() types.SortKey
}

// rankingResponse is the body of GET /api/rankings.
type rankingResponse struct {
	Sort          types.SortKey  `json:"sort"`
	Heading       string         `json:"heading"`
	Tiebreak      types.SortKey  `json:"tiebreak"`
	TiebreakNote  string         `json:"tiebreak_note"`
	RequestedSort string         `json:"requested_sort,omitempty"`
	Suggestion    *types.SortKey `json:"suggestion,omitempty"`
	Entries       []Entry        `json:"entries"`
}

// RankingsHandler handles ranked medal table requests.
type RankingsHandler struct {
	deps RankingsDependencies
	log  logger.Logger
}

// NewRankingsHandler creates a new rankings handler.
func NewRankingsHandler(deps RankingsDependencies) *RankingsHandler {
	return &RankingsHandler{deps: deps}
}

// HandleGetRankings handles GET /api/rankings?sort=k requests.
// A missing or unknown sort falls back to the default key; the response
// then echoes the rejected value and, when close enough, a suggestion.
func (h *RankingsHandler) HandleGetRankings(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_rankings"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	raw := r.URL.Query().Get("sort")
	key, ok := types.ParseSortKey(raw)
	if !ok {
		key = h.deps.DefaultSort()
	}

	table, err := h.deps.Rankings(r.Context(), key)
	if err != nil {
		writeUpstreamError(w, r, h.log, op, err)
		return
	}

	resp := rankingResponse{
		Sort:         table.Sort,
		Heading:      table.Sort.Heading(),
		Tiebreak:     table.Tiebreak,
		TiebreakNote: ranking.Note(table.Sort),
		Entries:      table.Entries,
	}
	if !ok && raw != "" {
		metrics.RecordSortFallback()
		resp.RequestedSort = raw
		if s, found := types.Suggest(raw); found {
			resp.Suggestion = &s
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
