package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodbooks/goodbooks-api/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes builds the uniqueness constraints and query-acceleration
// indexes for all five collections. It runs once before ingestion; creating an
// index that already exists is a no-op on the server side, so repeated runs
// are safe.
func CreateIndexes(db Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var errs []error
	fail := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	// Books: title/author text search, rating sort, book_id lookup and the
	// goodreads_book_id join key.
	books := db.Collection(domain.CollectionBook)
	fail(createTextIndex(ctx, books, bson.D{{Key: "title", Value: "text"}, {Key: "authors", Value: "text"}}, "title_authors_text"))
	fail(createIndex(ctx, books, bson.D{{Key: "average_rating", Value: -1}}, "average_rating", false))
	fail(createIndex(ctx, books, bson.D{{Key: "book_id", Value: 1}}, "book_id_unique", true))
	fail(createIndex(ctx, books, bson.D{{Key: "goodreads_book_id", Value: 1}}, "goodreads_book_id", false))

	// Ratings: one row per (user, book).
	ratings := db.Collection(domain.CollectionRating)
	fail(createIndex(ctx, ratings, bson.D{{Key: "user_id", Value: 1}, {Key: "book_id", Value: 1}}, "user_book_unique", true))
	fail(createIndex(ctx, ratings, bson.D{{Key: "book_id", Value: 1}}, "book_id", false))

	tags := db.Collection(domain.CollectionTag)
	fail(createIndex(ctx, tags, bson.D{{Key: "tag_id", Value: 1}}, "tag_id_unique", true))
	fail(createIndex(ctx, tags, bson.D{{Key: "tag_name", Value: 1}}, "tag_name", false))

	bookTags := db.Collection(domain.CollectionBookTag)
	fail(createIndex(ctx, bookTags, bson.D{{Key: "goodreads_book_id", Value: 1}, {Key: "tag_id", Value: 1}}, "goodreads_tag_unique", true))

	toRead := db.Collection(domain.CollectionToRead)
	fail(createIndex(ctx, toRead, bson.D{{Key: "user_id", Value: 1}, {Key: "book_id", Value: 1}}, "user_book_unique", true))

	return errors.Join(errs...)
}

func createIndex(ctx context.Context, collection Collection, keys bson.D, name string, unique bool) error {
	opts := options.Index().SetName(name)
	if unique {
		opts = opts.SetUnique(true)
	}
	model := mongo.IndexModel{Keys: keys, Options: opts}

	if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create index %q: %w", name, err)
	}
	return nil
}

func createTextIndex(ctx context.Context, collection Collection, keys bson.D, name string) error {
	model := mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name)}

	if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create text index %q: %w", name, err)
	}
	return nil
}
