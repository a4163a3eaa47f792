// Package handler exposes the dashboard over HTTP: the blob-store API the
// single-page app persists through, and a REST surface mirroring the app's
// ledger operations.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/jayantaf631991/debt-dashboard/internal/ledger"
	"github.com/jayantaf631991/debt-dashboard/internal/models"
	"github.com/jayantaf631991/debt-dashboard/internal/storage"
)

// Handler bundles the HTTP endpoints.
type Handler struct {
	ctrl  *ledger.Controller
	blobs storage.Store
	log   *logrus.Logger
}

// NewHandler creates a handler backed by the controller and the blob store.
func NewHandler(ctrl *ledger.Controller, blobs storage.Store, log *logrus.Logger) *Handler {
	return &Handler{ctrl: ctrl, blobs: blobs, log: log}
}

// RegisterRoutes attaches all endpoints to the router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	// Blob store API used by the single-page app
	r.HandleFunc("/api/health", h.Health).Methods("GET")
	r.HandleFunc("/api/load-data/{dashboard}", h.LoadData).Methods("GET")
	r.HandleFunc("/api/save-data/{dashboard}", h.SaveData).Methods("POST")

	// Ledger operations
	r.HandleFunc("/api/state", h.GetState).Methods("GET")
	r.HandleFunc("/api/state/bank-balance", h.SetBankBalance).Methods("PUT")
	r.HandleFunc("/api/state/emergency-fund", h.SetEmergencyFund).Methods("PUT")
	r.HandleFunc("/api/accounts", h.ListAccounts).Methods("GET")
	r.HandleFunc("/api/accounts", h.AddAccount).Methods("POST")
	r.HandleFunc("/api/accounts/{id}", h.UpdateAccount).Methods("PUT")
	r.HandleFunc("/api/accounts/{id}", h.DeleteAccount).Methods("DELETE")
	r.HandleFunc("/api/accounts/{id}/charge", h.AddCharge).Methods("POST")
	r.HandleFunc("/api/accounts/{id}/tips", h.AccountTips).Methods("GET")
	r.HandleFunc("/api/payments", h.RecordPayment).Methods("POST")
	r.HandleFunc("/api/expenses", h.ListExpenses).Methods("GET")
	r.HandleFunc("/api/expenses", h.AddExpense).Methods("POST")
	r.HandleFunc("/api/expenses/{id}/pay", h.PayExpense).Methods("POST")
	r.HandleFunc("/api/expenses/{id}", h.DeleteExpense).Methods("DELETE")

	// Simulator
	r.HandleFunc("/api/simulate/distribute", h.Distribute).Methods("POST")
	r.HandleFunc("/api/simulate/project", h.Project).Methods("POST")
	r.HandleFunc("/api/simulate/apply", h.ApplyPlan).Methods("POST")

	// History
	r.HandleFunc("/api/undo", h.Undo).Methods("POST")
	r.HandleFunc("/api/redo", h.Redo).Methods("POST")

	// Import / export
	r.HandleFunc("/api/export/csv", h.ExportCSV).Methods("GET")
	r.HandleFunc("/api/export/backup", h.ExportBackup).Methods("GET")
	r.HandleFunc("/api/import", h.Import).Methods("POST")
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Errorf("encode response: %v", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var validation *models.ValidationError
	var insufficient *models.InsufficientTotalError
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validation), errors.As(err, &insufficient),
		errors.Is(err, models.ErrNoIncludedScenarios),
		errors.Is(err, models.ErrInsufficientFunds):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrAccountNotFound), errors.Is(err, models.ErrExpenseNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		h.log.Errorf("request failed: %v", err)
	}
	h.respondJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return models.Invalid("body", err.Error())
	}
	return nil
}
