package usecase

import (
	"context"
	"time"

	"github.com/goodbooks/goodbooks-api/domain"
)

type ToReadUsecase struct {
	repo    domain.ToReadRepository
	timeout time.Duration
}

func NewToReadUsecase(repo domain.ToReadRepository, timeout time.Duration) *ToReadUsecase {
	return &ToReadUsecase{
		repo:    repo,
		timeout: timeout,
	}
}

func (uc *ToReadUsecase) BooksForUser(ctx context.Context, userID int) ([]domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repo.BooksForUser(ctx, userID)
}
