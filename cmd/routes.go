package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"basobasFront/internal/models"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON, app.deviceID, app.loadSession)
	authMiddleware := standardMiddleware.Append(app.requireRole(models.RoleUser))
	adminMiddleware := standardMiddleware.Append(app.requireRole(models.RoleAdmin))

	mux := pat.New()

	// Dashboard
	mux.Get("/dashboard", standardMiddleware.ThenFunc(app.dashboardHandler.GetDashboard))
	mux.Get("/suggest", standardMiddleware.ThenFunc(app.dashboardHandler.GetSuggestions))

	// Rooms
	mux.Get("/rooms", standardMiddleware.ThenFunc(app.roomHandler.GetRooms))
	mux.Get("/rooms/:id", standardMiddleware.ThenFunc(app.roomHandler.GetRoomByID))
	mux.Post("/rooms", authMiddleware.ThenFunc(app.roomHandler.CreateRoom))
	mux.Put("/rooms/:id", authMiddleware.ThenFunc(app.roomHandler.UpdateRoom))
	mux.Del("/rooms/:id", authMiddleware.ThenFunc(app.roomHandler.DeleteRoom))

	// Roommates
	mux.Get("/roommates", standardMiddleware.ThenFunc(app.roommateHandler.GetRoommates))
	mux.Get("/roommates/:id", standardMiddleware.ThenFunc(app.roommateHandler.GetRoommateByID))
	mux.Post("/roommates", authMiddleware.ThenFunc(app.roommateHandler.CreateRoommate))
	mux.Put("/roommates/:id", authMiddleware.ThenFunc(app.roommateHandler.UpdateRoommate))
	mux.Del("/roommates/:id", authMiddleware.ThenFunc(app.roommateHandler.DeleteRoommate))

	// Wishlist (device-scoped, no sign-in needed)
	mux.Get("/wishlist", standardMiddleware.ThenFunc(app.wishlistHandler.GetWishlist))
	mux.Post("/wishlist/toggle", standardMiddleware.ThenFunc(app.wishlistHandler.ToggleWishlist))
	mux.Get("/wishlist/check/:id", standardMiddleware.ThenFunc(app.wishlistHandler.CheckWishlist))

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/sign_out", standardMiddleware.ThenFunc(app.userHandler.SignOut))
	mux.Post("/user/forgot_password", standardMiddleware.ThenFunc(app.userHandler.ForgotPassword))
	mux.Post("/user/reset_password", standardMiddleware.ThenFunc(app.userHandler.ResetPassword))
	mux.Get("/user/me", authMiddleware.ThenFunc(app.userHandler.Me))
	mux.Get("/my/listings", authMiddleware.ThenFunc(app.userHandler.MyListings))

	// Admin
	mux.Get("/admin/overview", adminMiddleware.ThenFunc(app.adminHandler.GetOverview))
	mux.Get("/admin/users", adminMiddleware.ThenFunc(app.adminHandler.GetUsers))
	mux.Del("/admin/rooms/:id", adminMiddleware.ThenFunc(app.adminHandler.DeleteRoom))
	mux.Del("/admin/roommates/:id", adminMiddleware.ThenFunc(app.adminHandler.DeleteRoommate))
	mux.Del("/admin/users/:id", adminMiddleware.ThenFunc(app.adminHandler.DeleteUser))

	return mux
}
