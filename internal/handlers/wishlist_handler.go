package handlers

import (
	"encoding/json"
	"net/http"

	"basobasFront/internal/services"
)

type WishlistHandler struct {
	Service *services.WishlistService
}

// ToggleWishlist flips membership of one listing id for the caller's device
// and answers with the full updated list.
func (h *WishlistHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ids, added, err := h.Service.Toggle(r.Context(), deviceIDFromRequest(r), req.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	json.NewEncoder(w).Encode(struct {
		IDs   []string `json:"ids"`
		Added bool     `json:"added"`
	}{IDs: ids, Added: added})
}

func (h *WishlistHandler) CheckWishlist(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing listing ID", http.StatusBadRequest)
		return
	}

	member, err := h.Service.IsMember(r.Context(), deviceIDFromRequest(r), id)
	if err != nil {
		respondError(w, err)
		return
	}
	json.NewEncoder(w).Encode(struct {
		Member bool `json:"member"`
	}{Member: member})
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.View(r.Context(), sessionFromRequest(r).Token, deviceIDFromRequest(r))
	if clientGone(r) {
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	json.NewEncoder(w).Encode(view)
}
