package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/goodbooks/goodbooks-api/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRatingRepository struct {
	upsertCalls int
	lastRating  domain.Rating
	result      *domain.RatingUpsertResult
	summary     *domain.RatingSummary
}

func (s *stubRatingRepository) Upsert(ctx context.Context, rating domain.Rating) (*domain.RatingUpsertResult, error) {
	s.upsertCalls++
	s.lastRating = rating
	return s.result, nil
}

func (s *stubRatingRepository) Summary(ctx context.Context, bookID int) (*domain.RatingSummary, error) {
	return s.summary, nil
}

func TestRatingUpsertRejectsOutOfRange(t *testing.T) {
	repo := &stubRatingRepository{}
	uc := NewRatingUsecase(repo, time.Second)

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := uc.Upsert(context.Background(), domain.Rating{UserID: 1, BookID: 1, Rating: rating})
		require.ErrorIs(t, err, domain.ErrInvalidRating)
	}

	assert.Zero(t, repo.upsertCalls, "invalid ratings must never reach the store")
}

func TestRatingUpsertDelegatesValidRatings(t *testing.T) {
	repo := &stubRatingRepository{result: &domain.RatingUpsertResult{Upserted: true}}
	uc := NewRatingUsecase(repo, time.Second)

	res, err := uc.Upsert(context.Background(), domain.Rating{UserID: 7, BookID: 3, Rating: 5})

	require.NoError(t, err)
	assert.True(t, res.Upserted)
	assert.Equal(t, 1, repo.upsertCalls)
	assert.Equal(t, domain.Rating{UserID: 7, BookID: 3, Rating: 5}, repo.lastRating)
}
