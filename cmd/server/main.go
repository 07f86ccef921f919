package main

import (
	"context"
	"log"

	"github.com/gymbros-app/backend/internal/router"
	"github.com/gymbros-app/backend/pkg/config"
	"github.com/gymbros-app/backend/pkg/firebase"
	"github.com/gymbros-app/backend/pkg/media"
	"github.com/labstack/echo/v4"
)

func main() {
	// Initialize database connection (also loads .env)
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Load configuration
	cfg := config.Load()

	// Initialize Firebase
	firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath, cfg.StorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	uploader := media.NewUploader(firebaseApp.Bucket, cfg.StorageBucket)

	e := echo.New()
	router.SetupMiddleware(e)
	router.SetupRoutes(e, db.Mongo, firebaseApp.AuthClient, uploader, cfg)

	log.Printf("Starting server on port %s (%s)", cfg.Port, cfg.Env)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
