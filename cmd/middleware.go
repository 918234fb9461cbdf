package main

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"basobasFront/internal/handlers"
	"basobasFront/internal/models"
	"basobasFront/internal/session"
	"basobasFront/utils"
)

const deviceCookieName = "basobas_device"

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (app *application) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// deviceID reads the device cookie and puts the identifier in the request
// context. First-time visitors get a fresh id and the cookie set on the way
// out, so the wishlist works before any sign-in.
func (app *application) deviceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(deviceCookieName); err == nil && cookie.Value != "" {
			id = cookie.Value
		} else {
			id, err = utils.NewDeviceID()
			if err != nil {
				app.serverError(w, err)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     deviceCookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   365 * 24 * 60 * 60,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), handlers.CtxDeviceID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loadSession attaches whatever session the device has, hydrated from its
// token claims. It never rejects: anonymous browsing stays open and the
// guarded chains gate on top of it.
func (app *application) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deviceID, _ := r.Context().Value(handlers.CtxDeviceID).(string)
		sess, err := app.sessions.Load(r.Context(), deviceID)
		if err != nil {
			app.errorLog.Printf("load session for device %s: %v", deviceID, err)
		}
		sess = session.Hydrate(sess)
		ctx := context.WithValue(r.Context(), handlers.CtxSession, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) requireRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, _ := r.Context().Value(handlers.CtxSession).(models.Session)
			switch session.Check(sess, requiredRole) {
			case session.Unauthenticated:
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			case session.Forbidden:
				http.Error(w, "Forbidden: only admins allowed", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
