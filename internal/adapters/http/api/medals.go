package api

import (
	"context"
	"net/http"

	"github.com/okian/podium/pkg/logger"
)

// MedalsDependencies defines the interface for raw medal reads.
type MedalsDependencies interface {
	Medals(ctx context.Context) ([]Medal, error)
}

// MedalsHandler handles raw medal data requests.
type MedalsHandler struct {
	deps MedalsDependencies
	log  logger.Logger
}

// NewMedalsHandler creates a new medals handler.
func NewMedalsHandler(deps MedalsDependencies) *MedalsHandler {
	return &MedalsHandler{deps: deps}
}

// HandleGetMedals handles GET /api/medals requests.
func (h *MedalsHandler) HandleGetMedals(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_medals"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	medals, err := h.deps.Medals(r.Context())
	if err != nil {
		writeUpstreamError(w, r, h.log, op, err)
		return
	}
	writeJSON(w, http.StatusOK, medals)
}
