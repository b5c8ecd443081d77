package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/dualstream/internal/adapter/http/dto"
	"github.com/iho/dualstream/internal/ledger"
)

// DocumentHandler serves the current document version and
// document-level scalars.
type DocumentHandler struct {
	svc *ledger.Service
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(svc *ledger.Service) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// Get returns the full current document.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Document())
}

// Consistency reports counts and orphaned transaction references.
// Orphans are legal (wallet deletion leaves them behind) but worth
// surfacing.
func (h *DocumentHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	doc := h.svc.Document()
	writeJSON(w, http.StatusOK, dto.ConsistencyResponse{
		Wallets:      len(doc.Wallets),
		Transactions: len(doc.Transactions),
		Orphans:      len(doc.Orphans()),
	})
}

// SetBudget replaces the budget scalar.
func (h *DocumentHandler) SetBudget(w http.ResponseWriter, r *http.Request) {
	var req dto.SetBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.svc.SetBudget(r.Context(), req.Budget); err != nil {
		writeError(w, mapDomainError(err), "failed to set budget", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"budget": req.Budget.String()})
}
