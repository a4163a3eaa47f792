package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/jayantaf631991/debt-dashboard/internal/models"
)

type paymentRequest struct {
	AccountID string             `json:"account_id"`
	Amount    decimal.Decimal    `json:"amount"`
	Kind      models.PaymentKind `json:"kind"`
}

// RecordPayment applies a payment to an account and returns the log entry.
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	entry, err := h.ctrl.RecordPayment(r.Context(), req.AccountID, req.Amount, req.Kind)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, entry)
}

// ListExpenses returns all expenses.
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.ctrl.State().Expenses)
}

// AddExpense creates an expense from the request body.
func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var expense models.Expense
	if err := decodeBody(r, &expense); err != nil {
		h.respondError(w, err)
		return
	}
	created, err := h.ctrl.AddExpense(r.Context(), expense)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, created)
}

// PayExpense marks a pending expense as paid against the bank balance.
func (h *Handler) PayExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.PayExpense(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteExpense removes the expense with the path ID.
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.DeleteExpense(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
