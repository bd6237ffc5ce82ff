package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/canchoice-leads/internal/entity"
	"github.com/xavierca1/canchoice-leads/internal/infra/http/middleware"
	"github.com/xavierca1/canchoice-leads/internal/infra/integration/zoho"
	"github.com/xavierca1/canchoice-leads/internal/usecase"
)

type LeadHandler struct {
	Search *usecase.SearchDuplicatesUseCase
	Create *usecase.CreateLeadUseCase
}

func NewLeadHandler(search *usecase.SearchDuplicatesUseCase, create *usecase.CreateLeadUseCase) *LeadHandler {
	return &LeadHandler{
		Search: search,
		Create: create,
	}
}

// HandleSearchDuplicates serves POST /leads/search-duplicates. The raw CRM
// records go back to the caller along with the duplicate flag; the form
// decides what to tell the user.
func (h *LeadHandler) HandleSearchDuplicates(w http.ResponseWriter, r *http.Request) {
	var input usecase.SearchDuplicatesInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}
	if input.Date == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_DATE", "date is required")
		return
	}

	output, err := h.Search.Execute(r.Context(), input)
	if err != nil {
		writeUpstreamFailure(w, err, "Failed to fetch leads")
		return
	}

	if output.Duplicate {
		middleware.RecordDuplicateDetected()
	}

	writeJSON(w, http.StatusOK, output)
}

// HandleCreate serves POST /leads. The body is the CRM field mapping as-is;
// the form already validated it.
func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	output, err := h.Create.Execute(r.Context(), fields)
	if err != nil {
		middleware.RecordLeadSubmission(entity.OutcomeFailed)
		writeUpstreamFailure(w, err, "Failed to create leads")
		return
	}

	middleware.RecordLeadSubmission(entity.OutcomeCreated)
	writeJSON(w, http.StatusOK, output.Envelope)
}

// writeUpstreamFailure maps integration errors onto responses: the CRM's own
// status when we have one, 400 for domain rejections, 500 for everything
// else (missing config, failed token exchange).
func writeUpstreamFailure(w http.ResponseWriter, err error, message string) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		writeErrorResponse(w, http.StatusBadRequest, domainErr.Code, domainErr.Message)
		return
	}

	var upstreamErr *zoho.UpstreamError
	if errors.As(err, &upstreamErr) {
		middleware.RecordIntegrationError("zoho")
		writeErrorResponse(w, upstreamErr.Status, "UPSTREAM_ERROR", message)
		return
	}

	var authErr *zoho.AuthError
	if errors.As(err, &authErr) {
		middleware.RecordIntegrationError("zoho")
	}

	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}
