package services

import (
	"context"

	"github.com/wordgrid/leaderboard-api/internal/models"
	"github.com/wordgrid/leaderboard-api/internal/repository"
)

// LeaderboardService defines the business operations over score entries
type LeaderboardService interface {
	// AddScore validates and appends a score entry.
	AddScore(ctx context.Context, entry *models.ScoreEntry) error

	// GetLeaderboard returns all entries for a date key, ascending by score.
	GetLeaderboard(ctx context.Context, date string) ([]models.ScoreEntry, error)
}

// Services groups all service implementations
type Services struct {
	Leaderboard LeaderboardService
}

// NewServices creates the service collection with its repositories
func NewServices(scores repository.ScoreRepository) *Services {
	return &Services{
		Leaderboard: NewLeaderboardService(scores),
	}
}
