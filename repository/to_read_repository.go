package repository

import (
	"context"
	"fmt"

	"github.com/goodbooks/goodbooks-api/domain"
	"github.com/goodbooks/goodbooks-api/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

type toReadRepository struct {
	db         mongo.Database
	collection string
}

func NewToReadRepository(db mongo.Database, collection string) domain.ToReadRepository {
	return &toReadRepository{
		db:         db,
		collection: collection,
	}
}

// BooksForUser joins to_read rows to their books. The $unwind drops rows
// whose book no longer exists; an unknown user simply matches nothing.
func (r *toReadRepository) BooksForUser(ctx context.Context, userID int) ([]domain.Book, error) {
	pipeline := []bson.D{
		{
			{Key: "$match", Value: bson.D{{Key: "user_id", Value: userID}}},
		},
		{
			{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: domain.CollectionBook},
				{Key: "localField", Value: "book_id"},
				{Key: "foreignField", Value: "book_id"},
				{Key: "as", Value: "book"},
			}},
		},
		{
			{Key: "$unwind", Value: "$book"},
		},
		{
			{Key: "$project", Value: bson.D{
				{Key: "_id", Value: 0},
				{Key: "book", Value: 1},
			}},
		},
	}

	cursor, err := r.db.Collection(r.collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("to-read query failed: %w", err)
	}

	var rows []struct {
		Book domain.Book `bson:"book"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("to-read decode failed: %w", err)
	}

	books := make([]domain.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.Book)
	}

	return books, nil
}
