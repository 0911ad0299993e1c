package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/wordgrid/leaderboard-api/internal/errors"
	"github.com/wordgrid/leaderboard-api/internal/models"
	"github.com/wordgrid/leaderboard-api/internal/services"
)

// LeaderboardHandler handles score submission and leaderboard retrieval
type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler with service injection
func NewLeaderboardHandler(leaderboardService services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// submitScoreRequest captures the raw JSON fields of a submission so field
// presence and wire type can be checked before any value is accepted.
type submitScoreRequest struct {
	Name  json.RawMessage `json:"name"`
	Score json.RawMessage `json:"score"`
	Date  json.RawMessage `json:"date"`
}

// messageResponse is the success acknowledgment wire shape
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse is the client error wire shape
type errorResponse struct {
	Error string `json:"error"`
}

// parse turns a raw submission into a ScoreEntry. Name and date must be
// JSON strings and score a JSON integer; quoted numbers, fractions,
// exponents and booleans are all type errors.
func (r *submitScoreRequest) parse() (*models.ScoreEntry, *apperrors.AppError) {
	if r.Name == nil || r.Score == nil || r.Date == nil {
		return nil, apperrors.InvalidInput("Invalid data!", nil)
	}

	// Unmarshalling a JSON null into a string is a silent no-op, so null
	// tokens have to be rejected up front.
	if isNull(r.Name) || isNull(r.Score) || isNull(r.Date) {
		return nil, apperrors.ValidationError("Invalid data types!", nil)
	}

	var name, date string
	if err := json.Unmarshal(r.Name, &name); err != nil {
		return nil, apperrors.ValidationError("Invalid data types!", err)
	}
	if err := json.Unmarshal(r.Date, &date); err != nil {
		return nil, apperrors.ValidationError("Invalid data types!", err)
	}

	// json.Number only accepts a bare number token; ParseInt then rejects
	// fractions and exponents.
	var num json.Number
	if err := json.Unmarshal(r.Score, &num); err != nil {
		return nil, apperrors.ValidationError("Invalid data types!", err)
	}
	score, err := strconv.ParseInt(num.String(), 10, 64)
	if err != nil {
		return nil, apperrors.ValidationError("Invalid data types!", err)
	}

	return &models.ScoreEntry{Name: name, Score: score, Date: date}, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// SubmitScore handles POST /leaderboard
func (h *LeaderboardHandler) SubmitScore(c *gin.Context) {
	var req submitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid data!"})
		return
	}

	entry, parseErr := req.parse()
	if parseErr != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: parseErr.Message})
		return
	}

	if err := h.leaderboardService.AddScore(c.Request.Context(), entry); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.IsClientError() {
			c.JSON(http.StatusBadRequest, errorResponse{Error: appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to add score"})
		return
	}

	c.JSON(http.StatusCreated, messageResponse{Message: "Score added successfully!"})
}

// GetLeaderboard handles GET /leaderboard/:date
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	date := c.Param("date")

	entries, err := h.leaderboardService.GetLeaderboard(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to get leaderboard"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
