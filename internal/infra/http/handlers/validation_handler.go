package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/canchoice-leads/internal/usecase"
)

type ValidationHandler struct{}

func NewValidationHandler() *ValidationHandler {
	return &ValidationHandler{}
}

// Handle runs the form's field rules without touching the CRM, so the form
// can pre-check a submission.
func (h *ValidationHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.LeadFormInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	if errs := usecase.ValidateLeadForm(input); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation_failed",
			"errors": errs,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
