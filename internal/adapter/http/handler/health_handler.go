package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/dualstream/internal/adapter/store"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	snapshots store.SnapshotStore
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(snapshots store.SnapshotStore) *HealthHandler {
	return &HealthHandler{snapshots: snapshots}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if the snapshot store is reachable.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.snapshots.Ping(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "snapshot store unhealthy", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
		"store":  "ok",
	})
}
