package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/dualstream/internal/adapter/http/dto"
	"github.com/iho/dualstream/internal/ledger"
)

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	svc *ledger.Service
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc *ledger.Service) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// Create records a new transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := h.svc.RecordTransaction(r.Context(), req.ToLedgerInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, tx)
}

// List returns the document's transactions, newest first.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Document().Transactions)
}
