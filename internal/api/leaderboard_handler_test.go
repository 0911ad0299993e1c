package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/wordgrid/leaderboard-api/internal/models"
	"github.com/wordgrid/leaderboard-api/internal/services"
)

// Mock score repository for testing
type mockScoreRepository struct {
	entries     []models.ScoreEntry
	shouldError bool
}

func (m *mockScoreRepository) Create(ctx context.Context, entry *models.ScoreEntry) error {
	if m.shouldError {
		return errors.New("mock error")
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockScoreRepository) GetByDate(ctx context.Context, date string) ([]models.ScoreEntry, error) {
	if m.shouldError {
		return nil, errors.New("mock error")
	}
	var out []models.ScoreEntry
	for _, e := range m.entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Score < out[j].Score
	})
	return out, nil
}

func setupTestRouter() (*gin.Engine, *mockScoreRepository) {
	gin.SetMode(gin.TestMode)

	repo := &mockScoreRepository{}
	handler := NewLeaderboardHandler(services.NewLeaderboardService(repo))

	router := gin.New()
	router.GET("/leaderboard/:date", handler.GetLeaderboard)
	router.POST("/leaderboard", handler.SubmitScore)

	return router, repo
}

func postScore(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/leaderboard", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSubmitScore(t *testing.T) {
	router, repo := setupTestRouter()

	resp := postScore(router, `{"name":"Al","score":10,"date":"2024-01-01"}`)

	if resp.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", resp.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response["message"] != "Score added successfully!" {
		t.Errorf("Unexpected message: %q", response["message"])
	}

	if len(repo.entries) != 1 {
		t.Fatalf("Expected 1 stored entry, got %d", len(repo.entries))
	}
	stored := repo.entries[0]
	if stored.Name != "Al" || stored.Score != 10 || stored.Date != "2024-01-01" {
		t.Errorf("Stored entry does not match submission: %+v", stored)
	}
}

func TestSubmitScoreValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing date", `{"name":"Al","score":10}`, "Invalid data!"},
		{"missing name", `{"score":10,"date":"2024-01-01"}`, "Invalid data!"},
		{"missing score", `{"name":"Al","date":"2024-01-01"}`, "Invalid data!"},
		{"null name", `{"name":null,"score":10,"date":"2024-01-01"}`, "Invalid data types!"},
		{"score as string", `{"name":"Al","score":"10","date":"2024-01-01"}`, "Invalid data types!"},
		{"score as float", `{"name":"Al","score":10.5,"date":"2024-01-01"}`, "Invalid data types!"},
		{"score as bool", `{"name":"Al","score":true,"date":"2024-01-01"}`, "Invalid data types!"},
		{"name as number", `{"name":42,"score":10,"date":"2024-01-01"}`, "Invalid data types!"},
		{"date as number", `{"name":"Al","score":10,"date":20240101}`, "Invalid data types!"},
		{"empty name", `{"name":"","score":10,"date":"2024-01-01"}`, "Name and date cannot be empty!"},
		{"empty date", `{"name":"Al","score":10,"date":""}`, "Name and date cannot be empty!"},
		{"name too long", `{"name":"` + strings.Repeat("a", 51) + `","score":10,"date":"2024-01-01"}`, "Name is too long!"},
		{"date too long", `{"name":"Al","score":10,"date":"2024-01-01x"}`, "Date is too long!"},
		{"malformed body", `{"name":`, "Invalid data!"},
		{"array body", `[1,2,3]`, "Invalid data!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, repo := setupTestRouter()

			resp := postScore(router, tc.body)

			if resp.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", resp.Code)
			}

			var response map[string]string
			if err := json.Unmarshal(resp.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}
			if response["error"] != tc.wantErr {
				t.Errorf("Expected error %q, got %q", tc.wantErr, response["error"])
			}

			// A rejected submission must not touch the store
			if len(repo.entries) != 0 {
				t.Errorf("Expected no stored entries, got %d", len(repo.entries))
			}
		})
	}
}

func TestSubmitScoreBoundaryLengths(t *testing.T) {
	router, repo := setupTestRouter()

	// 50-character name and 10-character date are the maximums allowed
	body := `{"name":"` + strings.Repeat("a", 50) + `","score":0,"date":"2024-01-01"}`
	resp := postScore(router, body)

	if resp.Code != http.StatusCreated {
		t.Errorf("Expected status 201 at boundary, got %d", resp.Code)
	}
	if len(repo.entries) != 1 {
		t.Errorf("Expected 1 stored entry, got %d", len(repo.entries))
	}
}

func TestSubmitScoreDuplicatesAppend(t *testing.T) {
	router, repo := setupTestRouter()

	body := `{"name":"Al","score":10,"date":"2024-01-01"}`
	for i := 0; i < 2; i++ {
		resp := postScore(router, body)
		if resp.Code != http.StatusCreated {
			t.Fatalf("Expected status 201 on submission %d, got %d", i+1, resp.Code)
		}
	}

	// Idempotence is not guaranteed: both submissions are stored
	if len(repo.entries) != 2 {
		t.Errorf("Expected 2 stored entries, got %d", len(repo.entries))
	}
}

func TestGetLeaderboardOrdering(t *testing.T) {
	router, _ := setupTestRouter()

	postScore(router, `{"name":"Al","score":10,"date":"2024-01-01"}`)
	postScore(router, `{"name":"Bo","score":5,"date":"2024-01-01"}`)
	postScore(router, `{"name":"Cy","score":7,"date":"2024-01-02"}`)

	req, _ := http.NewRequest("GET", "/leaderboard/2024-01-01", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	var entries []models.ScoreEntry
	if err := json.Unmarshal(resp.Body.Bytes(), &entries); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "Bo" || entries[0].Score != 5 {
		t.Errorf("Expected Bo/5 first, got %+v", entries[0])
	}
	if entries[1].Name != "Al" || entries[1].Score != 10 {
		t.Errorf("Expected Al/10 second, got %+v", entries[1])
	}
}

func TestGetLeaderboardWireShape(t *testing.T) {
	router, _ := setupTestRouter()

	postScore(router, `{"name":"Al","score":10,"date":"2024-01-01"}`)

	req, _ := http.NewRequest("GET", "/leaderboard/2024-01-01", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var raw []map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &raw); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(raw))
	}

	// Exactly name, score, date - the storage id must not leak
	if len(raw[0]) != 3 {
		t.Errorf("Expected 3 fields per entry, got %d: %v", len(raw[0]), raw[0])
	}
	for _, field := range []string{"name", "score", "date"} {
		if _, ok := raw[0][field]; !ok {
			t.Errorf("Expected field %q in entry", field)
		}
	}
}

func TestGetLeaderboardEmpty(t *testing.T) {
	router, _ := setupTestRouter()

	req, _ := http.NewRequest("GET", "/leaderboard/1999-12-31", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != "[]" {
		t.Errorf("Expected empty array body, got %q", body)
	}
}

func TestGetLeaderboardCaseSensitiveMatch(t *testing.T) {
	router, _ := setupTestRouter()

	postScore(router, `{"name":"Al","score":10,"date":"2024-JAN-1"}`)

	req, _ := http.NewRequest("GET", "/leaderboard/2024-jan-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if body := resp.Body.String(); body != "[]" {
		t.Errorf("Expected no match for different case, got %q", body)
	}
}

func TestLeaderboardStoreErrors(t *testing.T) {
	router, repo := setupTestRouter()
	repo.shouldError = true

	resp := postScore(router, `{"name":"Al","score":10,"date":"2024-01-01"}`)
	if resp.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500 for failed insert, got %d", resp.Code)
	}

	req, _ := http.NewRequest("GET", "/leaderboard/2024-01-01", nil)
	getResp := httptest.NewRecorder()
	router.ServeHTTP(getResp, req)
	if getResp.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500 for failed query, got %d", getResp.Code)
	}
}
