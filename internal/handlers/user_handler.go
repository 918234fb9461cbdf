package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"basobasFront/internal/models"
	"basobasFront/internal/services"
)

type UserHandler struct {
	Service         *services.UserService
	RoomService     *services.RoomService
	RoommateService *services.RoommateService
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.SignUp(r.Context(), req)
	if err != nil {
		log.Printf("sign up failed: %v", err)
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sess, err := h.Service.SignIn(r.Context(), deviceIDFromRequest(r), req)
	if err != nil {
		log.Printf("sign in failed: %v", err)
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	json.NewEncoder(w).Encode(sess)
}

func (h *UserHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.SignOut(r.Context(), deviceIDFromRequest(r)); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the caller's session so the navbar can render name and role.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(sessionFromRequest(r))
}

func (h *UserHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.ForgotPassword(r.Context(), req); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" || req.Password == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.ResetPassword(r.Context(), req); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// MyListings returns the rooms and roommate profiles the session user owns.
func (h *UserHandler) MyListings(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromRequest(r)

	rooms, err := h.RoomService.RoomsByUser(r.Context(), sess.Token, sess.UserID)
	if clientGone(r) {
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	mates, err := h.RoommateService.RoommatesByUser(r.Context(), sess.Token, sess.UserID)
	if clientGone(r) {
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	json.NewEncoder(w).Encode(models.MyListingsView{Rooms: rooms, Roommates: mates})
}
