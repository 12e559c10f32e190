package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/goodbooks/goodbooks-api/domain"
)

type TagUsecase struct {
	repo    domain.TagRepository
	timeout time.Duration
}

func NewTagUsecase(repo domain.TagRepository, timeout time.Duration) *TagUsecase {
	return &TagUsecase{
		repo:    repo,
		timeout: timeout,
	}
}

func (uc *TagUsecase) Fetch(ctx context.Context, page domain.PageRequest) ([]domain.Tag, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if page.Page < 1 {
		return nil, 0, fmt.Errorf("%w: page must be >= 1", domain.ErrInvalidParam)
	}
	if page.PageSize < 1 || page.PageSize > 100 {
		return nil, 0, fmt.Errorf("%w: page_size must be in [1,100]", domain.ErrInvalidParam)
	}

	return uc.repo.Fetch(ctx, page)
}
