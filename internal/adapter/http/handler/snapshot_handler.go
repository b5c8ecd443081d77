package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/iho/dualstream/internal/ledger"
)

// maxImportSize bounds uploaded backup files.
const maxImportSize = 16 << 20

// SnapshotHandler serves export and import of the full document.
type SnapshotHandler struct {
	svc *ledger.Service
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(svc *ledger.Service) *SnapshotHandler {
	return &SnapshotHandler{svc: svc}
}

// Export returns the encoded document as a downloadable, date-named
// backup artifact. Export never mutates state.
func (h *SnapshotHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, name, err := h.svc.Export()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to export document", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Import replaces the entire current document with the uploaded one.
// A full overwrite is destructive, so it requires explicit
// confirmation; a body that fails to decode leaves the current
// document untouched.
func (h *SnapshotHandler) Import(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		writeError(w, http.StatusPreconditionFailed, "confirmation required",
			"import overwrites the current document; repeat the request with confirm=true")
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body", err.Error())
		return
	}

	if err := h.svc.Import(r.Context(), data); err != nil {
		writeError(w, mapDomainError(err), "failed to import document", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}
