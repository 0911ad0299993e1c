package repository

import (
	"context"

	"github.com/wordgrid/leaderboard-api/internal/models"
)

// ScoreRepository defines the interface for score data access. It is the
// single store client for the service layer; implementations decide how
// entries are persisted.
type ScoreRepository interface {
	// Create appends a new score entry. Entries are never updated or
	// deleted, and duplicate (name, date) pairs are permitted.
	Create(ctx context.Context, entry *models.ScoreEntry) error

	// GetByDate retrieves all entries whose date key exactly equals date,
	// ordered by ascending score.
	GetByDate(ctx context.Context, date string) ([]models.ScoreEntry, error)
}
