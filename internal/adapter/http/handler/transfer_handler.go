package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/dualstream/internal/adapter/http/dto"
	"github.com/iho/dualstream/internal/ledger"
)

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	svc *ledger.Service
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(svc *ledger.Service) *TransferHandler {
	return &TransferHandler{svc: svc}
}

// Create moves funds between two wallets.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := h.svc.Transfer(r.Context(), req.FromWalletID, req.ToWalletID, req.Amount)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to transfer", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, tx)
}
