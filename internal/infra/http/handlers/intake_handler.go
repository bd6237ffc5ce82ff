package handlers

import (
	"net/http"
	"strconv"

	"github.com/xavierca1/canchoice-leads/internal/entity"
)

type IntakeHandler struct {
	Repo entity.IntakeRepositoryInterface
}

func NewIntakeHandler(repo entity.IntakeRepositoryInterface) *IntakeHandler {
	return &IntakeHandler{Repo: repo}
}

// HandleList serves GET /leads/intake-log?limit=N for dealer reconciliation.
func (h *IntakeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		writeErrorResponse(w, http.StatusServiceUnavailable, "NO_DATABASE", "intake log is not configured")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be 1-500")
			return
		}
		limit = n
	}

	entries, err := h.Repo.ListRecent(r.Context(), limit)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "failed to read intake log")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": entries})
}
