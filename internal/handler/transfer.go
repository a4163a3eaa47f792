package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/jayantaf631991/debt-dashboard/internal/export"
	"github.com/jayantaf631991/debt-dashboard/internal/models"
)

// ExportCSV streams the transaction history as CSV.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transaction-history.csv"`)
	if err := export.WriteHistory(w, h.ctrl.State()); err != nil {
		h.log.Errorf("write csv export: %v", err)
	}
}

// ExportBackup returns the full-state backup JSON.
func (h *Handler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	backup := export.NewBackup(h.ctrl.State(), time.Now())
	data, err := backup.Marshal()
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="debt-dashboard-backup.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Import restores a full backup or bulk-imports accounts, depending on the
// shape of the uploaded file. Backups replace the whole state; account
// templates append.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		h.respondError(w, models.Invalid("body", err.Error()))
		return
	}

	if state, err := export.ParseBackup(data); err == nil {
		if err := h.ctrl.ReplaceState(r.Context(), *state); err != nil {
			h.respondError(w, err)
			return
		}
		h.respondJSON(w, http.StatusOK, map[string]any{"success": true, "restored": true})
		return
	}

	accounts, err := export.ParseBulkImport(data)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.ctrl.ImportAccounts(r.Context(), accounts); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"success": true, "imported": len(accounts)})
}
