package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/goodbooks/goodbooks-api/domain"
)

type BookUsecase struct {
	repo    domain.BookRepository
	timeout time.Duration
}

func NewBookUsecase(repo domain.BookRepository, timeout time.Duration) *BookUsecase {
	return &BookUsecase{
		repo:    repo,
		timeout: timeout,
	}
}

func (uc *BookUsecase) Fetch(
	ctx context.Context,
	filter domain.BookFilter,
	sort domain.SortOrder,
	page domain.PageRequest,
) ([]domain.Book, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	validations := []func() error{
		func() error {
			if page.Page < 1 {
				return fmt.Errorf("%w: page must be >= 1", domain.ErrInvalidParam)
			}
			return nil
		},
		func() error {
			if page.PageSize < 1 || page.PageSize > 100 {
				return fmt.Errorf("%w: page_size must be in [1,100]", domain.ErrInvalidParam)
			}
			return nil
		},
		func() error {
			if filter.YearFrom != nil && filter.YearTo != nil && *filter.YearFrom > *filter.YearTo {
				return fmt.Errorf("%w: year_from must not exceed year_to", domain.ErrInvalidParam)
			}
			return nil
		},
	}

	for _, validate := range validations {
		if err := validate(); err != nil {
			return nil, 0, err
		}
	}

	return uc.repo.Fetch(ctx, filter, sort, page)
}

func (uc *BookUsecase) GetByID(ctx context.Context, bookID int) (*domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repo.GetByID(ctx, bookID)
}

func (uc *BookUsecase) GetTags(ctx context.Context, bookID int) ([]domain.BookTagInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repo.GetTags(ctx, bookID)
}

func (uc *BookUsecase) SearchByAuthor(ctx context.Context, author string) ([]domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repo.SearchByAuthor(ctx, author)
}
