package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goodbooks/goodbooks-api/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRatingRepository struct {
	result     *domain.RatingUpsertResult
	summary    *domain.RatingSummary
	err        error
	lastRating domain.Rating
	calls      int
}

func (s *stubRatingRepository) Upsert(_ context.Context, rating domain.Rating) (*domain.RatingUpsertResult, error) {
	s.calls++
	s.lastRating = rating
	return s.result, s.err
}

func (s *stubRatingRepository) Summary(_ context.Context, bookID int) (*domain.RatingSummary, error) {
	return s.summary, s.err
}

func ratingRouter(stub *stubRatingRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	rc := NewRatingController(stub)
	engine.POST("/ratings", rc.Upsert)
	engine.GET("/books/:book_id/ratings/summary", rc.Summary)
	return engine
}

func TestRatingUpsert(t *testing.T) {
	stub := &stubRatingRepository{result: &domain.RatingUpsertResult{Upserted: true}}
	engine := ratingRouter(stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ratings", strings.NewReader(`{"user_id":9,"book_id":260,"rating":4}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Rating{UserID: 9, BookID: 260, Rating: 4}, stub.lastRating)

	var result domain.RatingUpsertResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Upserted)
}

func TestRatingUpsertRejectsBadBody(t *testing.T) {
	cases := []string{
		`{"user_id":9,"book_id":260,"rating":0}`,
		`{"user_id":9,"book_id":260,"rating":6}`,
		`{"user_id":9,"book_id":260}`,
		`{"book_id":260,"rating":3}`,
		`not json`,
	}
	for _, body := range cases {
		stub := &stubRatingRepository{}
		engine := ratingRouter(stub)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/ratings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "body %s", body)
		assert.Zero(t, stub.calls, "store must not be reached for body %s", body)
	}
}

func TestRatingSummary(t *testing.T) {
	stub := &stubRatingRepository{summary: &domain.RatingSummary{
		BookID:    260,
		Average:   4.33,
		Count:     3,
		Histogram: map[int]int{1: 0, 2: 0, 3: 0, 4: 2, 5: 1},
	}}
	engine := ratingRouter(stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/books/260/ratings/summary", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summary domain.RatingSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 260, summary.BookID)
	assert.Equal(t, 4.33, summary.Average)
	assert.Equal(t, 2, summary.Histogram[4])
}

func TestRatingSummaryRejectsNonInteger(t *testing.T) {
	engine := ratingRouter(&stubRatingRepository{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/books/abc/ratings/summary", nil)
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
