package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/dualstream/internal/adapter/http/dto"
	"github.com/iho/dualstream/internal/ledger"
)

// WalletHandler handles wallet-related HTTP requests.
type WalletHandler struct {
	svc *ledger.Service
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(svc *ledger.Service) *WalletHandler {
	return &WalletHandler{svc: svc}
}

// Create adds a new wallet.
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AddWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	wallet, err := h.svc.AddWallet(r.Context(), req.ToLedgerInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add wallet", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, wallet)
}

// List returns all wallets.
func (h *WalletHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Document().Wallets)
}

// Update merges fields into a wallet. A balance in the body is an
// explicit manual override of the transaction-derived balance.
func (h *WalletHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	var req dto.UpdateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	wallet, err := h.svc.UpdateWallet(r.Context(), id, req.ToLedgerInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update wallet", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, wallet)
}

// Delete removes a wallet. Deletion is destructive (transactions
// referencing the wallet become orphaned), so it requires explicit
// confirmation from the caller.
func (h *WalletHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	if !confirmed(r) {
		writeError(w, http.StatusPreconditionFailed, "confirmation required",
			"wallet deletion is permanent; repeat the request with confirm=true")
		return
	}

	if err := h.svc.DeleteWallet(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete wallet", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
