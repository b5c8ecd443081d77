package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/dualstream/internal/adapter/http/dto"
	"github.com/iho/dualstream/internal/ledger"
)

// PortfolioHandler handles the auxiliary entities: projects,
// investments and goals. None of them carry ledger invariants.
type PortfolioHandler struct {
	svc *ledger.Service
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(svc *ledger.Service) *PortfolioHandler {
	return &PortfolioHandler{svc: svc}
}

// CreateProject adds a new project.
func (h *PortfolioHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.AddProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	project, err := h.svc.AddProject(r.Context(), req.ToLedgerInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add project", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

// CreateInvestment adds a new investment.
func (h *PortfolioHandler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	var req dto.AddInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	investment, err := h.svc.AddInvestment(r.Context(), req.ToLedgerInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add investment", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, investment)
}

// CreateGoal adds a new savings goal.
func (h *PortfolioHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req dto.AddGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	goal, err := h.svc.AddGoal(r.Context(), req.ToLedgerInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add goal", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, goal)
}

// UpdateGoal merges fields into a goal.
func (h *PortfolioHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing goal ID", "")
		return
	}

	var req dto.UpdateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	goal, err := h.svc.UpdateGoal(r.Context(), id, req.ToLedgerInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update goal", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, goal)
}
