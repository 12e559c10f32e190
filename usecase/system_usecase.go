package usecase

import (
	"context"
	"time"

	"github.com/goodbooks/goodbooks-api/domain"
)

type SystemUsecase struct {
	repo    domain.SystemRepository
	timeout time.Duration
}

func NewSystemUsecase(repo domain.SystemRepository, timeout time.Duration) *SystemUsecase {
	return &SystemUsecase{
		repo:    repo,
		timeout: timeout,
	}
}

func (uc *SystemUsecase) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repo.Ping(ctx)
}

func (uc *SystemUsecase) Metrics(ctx context.Context) (*domain.SystemMetrics, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repo.Metrics(ctx)
}
