package main

import (
	"log"

	"basobasFront/internal/api"
	"basobasFront/internal/handlers"
	"basobasFront/internal/services"
	"basobasFront/internal/session"
	"basobasFront/internal/storage"
	"basobasFront/internal/wishlist"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	sessions *session.Store

	dashboardService *services.DashboardService

	dashboardHandler *handlers.DashboardHandler
	roomHandler      *handlers.RoomHandler
	roommateHandler  *handlers.RoommateHandler
	wishlistHandler  *handlers.WishlistHandler
	userHandler      *handlers.UserHandler
	adminHandler     *handlers.AdminHandler
}

func initializeApp(client *api.Client, kv storage.Store, errorLog, infoLog *log.Logger) *application {
	// Stores
	sessionStore := session.NewStore(kv)
	wishlistStore := wishlist.NewStore(storage.NewNotifier(kv))

	// Services
	dashboardService := services.NewDashboardService(client)
	roomService := &services.RoomService{API: client}
	roommateService := &services.RoommateService{API: client}
	wishlistService := &services.WishlistService{API: client, Wishlist: wishlistStore}
	userService := &services.UserService{API: client, Sessions: sessionStore}
	adminService := &services.AdminService{API: client}

	return &application{
		errorLog: errorLog,
		infoLog:  infoLog,
		sessions: sessionStore,

		dashboardService: dashboardService,

		dashboardHandler: &handlers.DashboardHandler{Service: dashboardService},
		roomHandler:      &handlers.RoomHandler{Service: roomService},
		roommateHandler:  &handlers.RoommateHandler{Service: roommateService},
		wishlistHandler:  &handlers.WishlistHandler{Service: wishlistService},
		userHandler: &handlers.UserHandler{
			Service:         userService,
			RoomService:     roomService,
			RoommateService: roommateService,
		},
		adminHandler: &handlers.AdminHandler{Service: adminService},
	}
}
