package api

import (
	"github.com/gin-gonic/gin"
	"github.com/wordgrid/leaderboard-api/internal/database"
	"github.com/wordgrid/leaderboard-api/internal/repository"
	"github.com/wordgrid/leaderboard-api/internal/services"
	"github.com/wordgrid/leaderboard-api/pkg/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *database.DB, cfg *config.Config) error {
	// Create repositories and services
	scores := repository.NewScoreRepository(db.DB)
	svcs := services.NewServices(scores)

	// Create handlers with proper service injection
	leaderboardHandler := NewLeaderboardHandler(svcs.Leaderboard)
	healthHandler := NewHealthHandler(db)

	r.GET("/leaderboard/:date", leaderboardHandler.GetLeaderboard)
	r.POST("/leaderboard", leaderboardHandler.SubmitScore)
	r.GET("/health", healthHandler.GetHealth)

	return nil
}
