package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/jayantaf631991/debt-dashboard/internal/models"
)

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// LoadData returns the JSON blob previously saved for the dashboard, or an
// empty object when nothing was saved.
func (h *Handler) LoadData(w http.ResponseWriter, r *http.Request) {
	dashboard := mux.Vars(r)["dashboard"]
	data, err := h.blobs.Load(r.Context(), dashboard)
	if err != nil {
		h.log.Errorf("load blob %q: %v", dashboard, err)
		h.respondJSON(w, http.StatusBadGateway, map[string]string{"error": "failed to load data"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// SaveData overwrites the JSON blob stored for the dashboard.
func (h *Handler) SaveData(w http.ResponseWriter, r *http.Request) {
	dashboard := mux.Vars(r)["dashboard"]
	data, err := io.ReadAll(r.Body)
	if err != nil {
		h.respondError(w, models.Invalid("body", err.Error()))
		return
	}
	if !json.Valid(data) {
		h.respondError(w, models.Invalid("body", "not valid JSON"))
		return
	}
	if err := h.blobs.Save(r.Context(), dashboard, data); err != nil {
		h.log.Errorf("save blob %q: %v", dashboard, err)
		h.respondJSON(w, http.StatusBadGateway, map[string]string{"error": "failed to save data"})
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
