package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/wordgrid/leaderboard-api/internal/api"
	"github.com/wordgrid/leaderboard-api/internal/database"
	"github.com/wordgrid/leaderboard-api/internal/logger"
	"github.com/wordgrid/leaderboard-api/internal/middleware"
	"github.com/wordgrid/leaderboard-api/pkg/config"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize configuration
	cfg := config.New()
	appLogger := logger.NewSimpleLogger()

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		appLogger.Fatal("Failed to run migrations", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() && !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := gin.New()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestSizeLimitMiddleware(cfg.MaxRequestSize))

	// Add recovery middleware
	r.Use(gin.Recovery())

	// Setup API routes
	if err := api.SetupRoutes(r, db, cfg); err != nil {
		appLogger.Fatal("Failed to setup API routes", err)
	}

	// Start server
	appLogger.Info("Server starting on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		appLogger.Fatal("Failed to start server", err)
	}
}
