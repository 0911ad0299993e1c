package models

import (
	"time"

	"github.com/google/uuid"
)

// ScoreEntry is a stored record of a player's name, score, and the date key
// it was achieved on. The date is an opaque key, not a parsed calendar date.
// Storage identity and timestamps never appear on the wire.
type ScoreEntry struct {
	ID        uuid.UUID `json:"-"`
	Name      string    `json:"name"`
	Score     int64     `json:"score"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"-"`
}
