package repository

import (
	"context"
	"fmt"

	"github.com/goodbooks/goodbooks-api/domain"
	"github.com/goodbooks/goodbooks-api/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type tagRepository struct {
	db         mongo.Database
	collection string
}

func NewTagRepository(db mongo.Database, collection string) domain.TagRepository {
	return &tagRepository{
		db:         db,
		collection: collection,
	}
}

func (r *tagRepository) Fetch(ctx context.Context, page domain.PageRequest) ([]domain.Tag, int64, error) {
	coll := r.db.Collection(r.collection)
	filter := bson.D{}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("tag count failed: %w", err)
	}

	// tag_id ordering keeps page boundaries stable across requests.
	opts := options.Find().
		SetSort(bson.D{{Key: "tag_id", Value: 1}}).
		SetSkip(page.Skip()).
		SetLimit(page.Limit())

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("tag query failed: %w", err)
	}

	tags := make([]domain.Tag, 0, page.PageSize)
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, 0, fmt.Errorf("tag decode failed: %w", err)
	}

	return tags, total, nil
}
