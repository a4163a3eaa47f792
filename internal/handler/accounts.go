package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/jayantaf631991/debt-dashboard/internal/models"
	"github.com/jayantaf631991/debt-dashboard/internal/simulator"
)

// GetState returns the full dashboard state.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.ctrl.State())
}

type balanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// SetBankBalance sets the bank balance.
func (h *Handler) SetBankBalance(w http.ResponseWriter, r *http.Request) {
	var req balanceRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.ctrl.SetBankBalance(r.Context(), req.Amount); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// SetEmergencyFund sets the emergency fund balance.
func (h *Handler) SetEmergencyFund(w http.ResponseWriter, r *http.Request) {
	var req balanceRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.ctrl.SetEmergencyFund(r.Context(), req.Amount); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ListAccounts returns all debt accounts.
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.ctrl.State().Accounts)
}

// AddAccount creates a debt account from the request body.
func (h *Handler) AddAccount(w http.ResponseWriter, r *http.Request) {
	var account models.Account
	if err := decodeBody(r, &account); err != nil {
		h.respondError(w, err)
		return
	}
	created, err := h.ctrl.AddAccount(r.Context(), account)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, created)
}

// UpdateAccount replaces the account with the path ID.
func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var account models.Account
	if err := decodeBody(r, &account); err != nil {
		h.respondError(w, err)
		return
	}
	account.ID = mux.Vars(r)["id"]
	if err := h.ctrl.UpdateAccount(r.Context(), account); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, account)
}

// DeleteAccount removes the account with the path ID.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.DeleteAccount(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type chargeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// AddCharge adds a purchase to a credit card.
func (h *Handler) AddCharge(w http.ResponseWriter, r *http.Request) {
	var req chargeRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.ctrl.AddCharge(r.Context(), mux.Vars(r)["id"], req.Amount); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// AccountTips returns extra-payment suggestions for one account.
func (h *Handler) AccountTips(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	state := h.ctrl.State()
	for _, account := range state.Accounts {
		if account.ID == id {
			tips := simulator.TipsFor(account, state.BankBalance)
			h.respondJSON(w, http.StatusOK, map[string]any{"tips": tips})
			return
		}
	}
	h.respondError(w, models.ErrAccountNotFound)
}
