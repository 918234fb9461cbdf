package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"basobasFront/internal/api"
	"basobasFront/internal/config"
	"basobasFront/internal/storage"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	cfg := config.LoadConfig()

	addrDefault := cfg.Server.Address
	if port := os.Getenv("PORT"); port != "" {
		addrDefault = ":" + port
	}
	addr := flag.String("addr", addrDefault, "HTTP network address")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	kv, err := openStorage(cfg)
	if err != nil {
		errorLog.Fatal(err)
	}

	client := api.NewClient(&http.Client{
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	}, cfg.API.BaseURL)

	app := initializeApp(client, kv, errorLog, infoLog)
	defer app.dashboardService.Stop()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:5174"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
	})

	srv := &http.Server{
		Addr:         *addr,
		ErrorLog:     errorLog,
		Handler:      c.Handler(app.routes()),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	infoLog.Printf("Starting server on %s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		errorLog.Fatal(err)
	}
}

func openStorage(cfg config.Config) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case "redis":
		return storage.NewRedisStore(cfg.Storage.Redis.Addr, cfg.Storage.Redis.Password, cfg.Storage.Redis.Prefix), nil
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewFileStore(cfg.Storage.Path)
	}
}
