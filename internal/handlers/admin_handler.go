package handlers

import (
	"encoding/json"
	"net/http"

	"basobasFront/internal/services"
)

// AdminHandler serves the moderation dashboard. Routes using it sit behind
// the admin middleware chain; the remote API enforces the role again.
type AdminHandler struct {
	Service *services.AdminService
}

func (h *AdminHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Service.Overview(r.Context(), sessionFromRequest(r).Token)
	if clientGone(r) {
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	json.NewEncoder(w).Encode(overview)
}

func (h *AdminHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing room ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.RemoveRoom(r.Context(), sessionFromRequest(r).Token, id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) DeleteRoommate(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing roommate ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.RemoveRoommate(r.Context(), sessionFromRequest(r).Token, id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Service.Overview(r.Context(), sessionFromRequest(r).Token)
	if clientGone(r) {
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	json.NewEncoder(w).Encode(overview.Users)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing user ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.RemoveUser(r.Context(), sessionFromRequest(r).Token, id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
