package handlers

import (
	"errors"
	"log"
	"net/http"

	"basobasFront/internal/models"
)

// Context keys set by the session middleware in cmd.
const (
	CtxSession  = "session"
	CtxDeviceID = "device_id"
)

func sessionFromRequest(r *http.Request) models.Session {
	sess, ok := r.Context().Value(CtxSession).(models.Session)
	if !ok {
		return models.Session{}
	}
	return sess
}

func deviceIDFromRequest(r *http.Request) string {
	id, _ := r.Context().Value(CtxDeviceID).(string)
	return id
}

// clientGone reports whether the requester disconnected; late results are
// dropped instead of written to a dead connection.
func clientGone(r *http.Request) bool {
	return r.Context().Err() != nil
}

// respondError maps the service error taxonomy onto HTTP statuses. 401 is
// what sends the browser back to the login view.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		http.Error(w, "Not logged in", http.StatusUnauthorized)
	case errors.Is(err, models.ErrForbidden), errors.Is(err, models.ErrNotOwner):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, models.ErrNoRecord):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, models.ErrAPIUnavailable):
		http.Error(w, "Listings service unavailable", http.StatusBadGateway)
	default:
		log.Printf("error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
