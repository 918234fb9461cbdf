package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"basobasFront/internal/services"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

// GetDashboard returns the four carousel windows. The collections are fetched
// fresh on every request; a strip whose fetch failed renders empty.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	view := h.Service.View(r.Context(), sessionFromRequest(r).Token)
	if clientGone(r) {
		return
	}
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Printf("Failed to encode dashboard: %v", err)
	}
}

func (h *DashboardHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("type")
	query := r.URL.Query().Get("q")

	suggestions, err := h.Service.Suggest(r.Context(), sessionFromRequest(r).Token, kind, query)
	if clientGone(r) {
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	json.NewEncoder(w).Encode(suggestions)
}
