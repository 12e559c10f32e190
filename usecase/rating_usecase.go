package usecase

import (
	"context"
	"time"

	"github.com/goodbooks/goodbooks-api/domain"
)

type RatingUsecase struct {
	repo    domain.RatingRepository
	timeout time.Duration
}

func NewRatingUsecase(repo domain.RatingRepository, timeout time.Duration) *RatingUsecase {
	return &RatingUsecase{
		repo:    repo,
		timeout: timeout,
	}
}

// Upsert validates the score range before any store call; the guard holds
// even when the transport-level binding is bypassed.
func (uc *RatingUsecase) Upsert(ctx context.Context, rating domain.Rating) (*domain.RatingUpsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if rating.Rating < 1 || rating.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	return uc.repo.Upsert(ctx, rating)
}

func (uc *RatingUsecase) Summary(ctx context.Context, bookID int) (*domain.RatingSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repo.Summary(ctx, bookID)
}
