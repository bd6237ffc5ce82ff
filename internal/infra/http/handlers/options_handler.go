package handlers

import (
	"net/http"

	"github.com/xavierca1/canchoice-leads/internal/staticdata"
)

type OptionsHandler struct{}

func NewOptionsHandler() *OptionsHandler {
	return &OptionsHandler{}
}

// Handle serves the form's dropdown data.
func (h *OptionsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"dealers":      staticdata.Dealers,
		"lead_sources": staticdata.LeadSources,
		"lead_types":   staticdata.LeadTypes,
	})
}
