package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jayantaf631991/debt-dashboard/internal/models"
	"github.com/jayantaf631991/debt-dashboard/internal/simulator"
)

type distributeRequest struct {
	// Scenarios defaults to one included scenario per account when omitted.
	Scenarios []models.DebtScenario `json:"scenarios"`
	Total     decimal.Decimal       `json:"total"`
	Strategy  simulator.Strategy    `json:"strategy"`
}

// Distribute runs the payment distributor over the posted scenarios and
// returns the allocated plan. Nothing is applied to the ledger.
func (h *Handler) Distribute(w http.ResponseWriter, r *http.Request) {
	var req distributeRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if req.Scenarios == nil {
		req.Scenarios = h.ctrl.Scenarios()
	}
	plan, err := simulator.Distribute(req.Scenarios, req.Total, req.Strategy)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"scenarios": plan})
}

type projectRequest struct {
	Scenarios []models.DebtScenario `json:"scenarios"`
}

// Project estimates payoff time and interest saved for the posted plan.
func (h *Handler) Project(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if req.Scenarios == nil {
		req.Scenarios = h.ctrl.Scenarios()
	}
	projection, err := simulator.Project(req.Scenarios, time.Now())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, projection)
}

type applyRequest struct {
	Scenarios []models.DebtScenario `json:"scenarios"`
}

// ApplyPlan turns a distributed plan into real payments.
func (h *Handler) ApplyPlan(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	entries, err := h.ctrl.ApplyPlan(r.Context(), req.Scenarios)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"payments": entries})
}

// Undo reverts the most recent mutating operation.
func (h *Handler) Undo(w http.ResponseWriter, r *http.Request) {
	if !h.ctrl.Undo(r.Context()) {
		h.respondError(w, models.Invalid("undo", "nothing to undo"))
		return
	}
	h.respondJSON(w, http.StatusOK, h.ctrl.State())
}

// Redo reapplies the most recently undone operation.
func (h *Handler) Redo(w http.ResponseWriter, r *http.Request) {
	if !h.ctrl.Redo(r.Context()) {
		h.respondError(w, models.Invalid("redo", "nothing to redo"))
		return
	}
	h.respondJSON(w, http.StatusOK, h.ctrl.State())
}
