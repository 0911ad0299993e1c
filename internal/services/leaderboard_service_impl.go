package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	apperrors "github.com/wordgrid/leaderboard-api/internal/errors"
	"github.com/wordgrid/leaderboard-api/internal/models"
	"github.com/wordgrid/leaderboard-api/internal/repository"
)

const (
	// MaxNameLength bounds the player name, counted in characters.
	MaxNameLength = 50
	// MaxDateLength bounds the date key, counted in characters.
	MaxDateLength = 10
)

// leaderboardServiceImpl implements LeaderboardService
type leaderboardServiceImpl struct {
	scores repository.ScoreRepository
}

// NewLeaderboardService creates a new leaderboard service with repository injection
func NewLeaderboardService(scores repository.ScoreRepository) LeaderboardService {
	return &leaderboardServiceImpl{scores: scores}
}

// AddScore validates and appends a score entry. A duplicate (name, date)
// submission appends a second entry rather than overwriting the first.
func (s *leaderboardServiceImpl) AddScore(ctx context.Context, entry *models.ScoreEntry) error {
	if entry.Name == "" || entry.Date == "" {
		return apperrors.ValidationError("Name and date cannot be empty!", nil)
	}
	if utf8.RuneCountInString(entry.Name) > MaxNameLength {
		return apperrors.ValidationError("Name is too long!", nil)
	}
	if utf8.RuneCountInString(entry.Date) > MaxDateLength {
		return apperrors.ValidationError("Date is too long!", nil)
	}

	if err := s.scores.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to add score: %w", err)
	}
	return nil
}

// GetLeaderboard returns all entries for the date key, ascending by score.
// A date with no entries yields an empty slice, never nil.
func (s *leaderboardServiceImpl) GetLeaderboard(ctx context.Context, date string) ([]models.ScoreEntry, error) {
	entries, err := s.scores.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	if entries == nil {
		entries = make([]models.ScoreEntry, 0)
	}
	return entries, nil
}
