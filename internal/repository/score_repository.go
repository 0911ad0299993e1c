package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wordgrid/leaderboard-api/internal/models"
)

// dbExecutor is an interface that both *sql.DB and *sql.Tx implement
type dbExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// scoreRepository implements ScoreRepository over Postgres
type scoreRepository struct {
	db dbExecutor
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db dbExecutor) ScoreRepository {
	return &scoreRepository{db: db}
}

// Create appends a new score entry
func (r *scoreRepository) Create(ctx context.Context, entry *models.ScoreEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()

	query := `
		INSERT INTO scores (id, name, score, date, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.Name, entry.Score, entry.Date, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create score entry: %w", err)
	}

	return nil
}

// GetByDate retrieves all entries for a date key, ascending by score
func (r *scoreRepository) GetByDate(ctx context.Context, date string) ([]models.ScoreEntry, error) {
	query := `
		SELECT name, score, date
		FROM scores WHERE date = $1
		ORDER BY score ASC
	`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	entries := make([]models.ScoreEntry, 0)
	for rows.Next() {
		var entry models.ScoreEntry
		if err := rows.Scan(&entry.Name, &entry.Score, &entry.Date); err != nil {
			return nil, fmt.Errorf("failed to scan score entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}

	return entries, nil
}
