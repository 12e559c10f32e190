package repository

import (
	"context"
	"fmt"

	"github.com/goodbooks/goodbooks-api/domain"
	"github.com/goodbooks/goodbooks-api/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

type systemRepository struct {
	db mongo.Database
}

func NewSystemRepository(db mongo.Database) domain.SystemRepository {
	return &systemRepository{db: db}
}

func (r *systemRepository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx)
}

func (r *systemRepository) Metrics(ctx context.Context) (*domain.SystemMetrics, error) {
	books, err := r.db.Collection(domain.CollectionBook).CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("books count failed: %w", err)
	}

	ratings, err := r.db.Collection(domain.CollectionRating).CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("ratings count failed: %w", err)
	}

	users, err := r.db.Collection(domain.CollectionRating).Distinct(ctx, "user_id", bson.D{})
	if err != nil {
		return nil, fmt.Errorf("distinct users failed: %w", err)
	}

	return &domain.SystemMetrics{
		BooksCount:   books,
		RatingsCount: ratings,
		UsersCount:   int64(len(users)),
	}, nil
}
