package repository

import (
	"context"
	"fmt"
	"math"

	"github.com/goodbooks/goodbooks-api/domain"
	"github.com/goodbooks/goodbooks-api/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ratingRepository struct {
	db         mongo.Database
	collection string
}

func NewRatingRepository(db mongo.Database, collection string) domain.RatingRepository {
	return &ratingRepository{
		db:         db,
		collection: collection,
	}
}

// Upsert relies on the store's atomic upsert: concurrent writes to the same
// (user_id, book_id) key never produce duplicates, last write wins.
func (r *ratingRepository) Upsert(ctx context.Context, rating domain.Rating) (*domain.RatingUpsertResult, error) {
	res, err := r.db.Collection(r.collection).UpdateOne(ctx,
		bson.D{
			{Key: "user_id", Value: rating.UserID},
			{Key: "book_id", Value: rating.BookID},
		},
		bson.D{
			{Key: "$set", Value: bson.D{{Key: "rating", Value: rating.Rating}}},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("rating upsert failed: %w", err)
	}

	return &domain.RatingUpsertResult{
		Upserted: res.UpsertedID != nil,
		Matched:  res.MatchedCount,
	}, nil
}

func (r *ratingRepository) Summary(ctx context.Context, bookID int) (*domain.RatingSummary, error) {
	pipeline := []bson.D{
		{
			{Key: "$match", Value: bson.D{{Key: "book_id", Value: bookID}}},
		},
		{
			{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$book_id"},
				{Key: "average", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
				{Key: "distribution", Value: bson.D{{Key: "$push", Value: "$rating"}}},
			}},
		},
	}

	cursor, err := r.db.Collection(r.collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("rating summary query failed: %w", err)
	}

	var rows []struct {
		Average      float64 `bson:"average"`
		Count        int64   `bson:"count"`
		Distribution []int   `bson:"distribution"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("rating summary decode failed: %w", err)
	}

	// No ratings: zero values and an empty histogram map, not five zero
	// buckets.
	if len(rows) == 0 {
		return &domain.RatingSummary{BookID: bookID, Histogram: map[int]int{}}, nil
	}

	row := rows[0]
	return &domain.RatingSummary{
		BookID:    bookID,
		Average:   roundAverage(row.Average),
		Count:     row.Count,
		Histogram: buildHistogram(row.Distribution),
	}, nil
}

func roundAverage(avg float64) float64 {
	return math.Round(avg*100) / 100
}

// buildHistogram counts occurrences per score. All five buckets are present;
// values outside [1,5] are ignored.
func buildHistogram(ratings []int) map[int]int {
	hist := make(map[int]int, 5)
	for score := 1; score <= 5; score++ {
		hist[score] = 0
	}
	for _, rating := range ratings {
		if _, ok := hist[rating]; ok {
			hist[rating]++
		}
	}
	return hist
}
