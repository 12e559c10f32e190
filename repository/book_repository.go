package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/goodbooks/goodbooks-api/domain"
	"github.com/goodbooks/goodbooks-api/mongo"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// authorSearchLimit caps author search results regardless of match count.
const authorSearchLimit = 50

type bookRepository struct {
	db         mongo.Database
	collection string
}

func NewBookRepository(db mongo.Database, collection string) domain.BookRepository {
	return &bookRepository{
		db:         db,
		collection: collection,
	}
}

func (r *bookRepository) Fetch(
	ctx context.Context,
	filter domain.BookFilter,
	sort domain.SortOrder,
	page domain.PageRequest,
) ([]domain.Book, int64, error) {
	coll := r.db.Collection(r.collection)
	match := buildBookMatch(filter)

	// Total reflects the full filtered set, independent of the page window.
	total, err := coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("book count failed: %w", err)
	}

	opts := options.Find().
		SetSort(buildBookSort(sort)).
		SetSkip(page.Skip()).
		SetLimit(page.Limit())

	cursor, err := coll.Find(ctx, match, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("book query failed: %w", err)
	}

	books := make([]domain.Book, 0, page.PageSize)
	if err := cursor.All(ctx, &books); err != nil {
		return nil, 0, fmt.Errorf("book decode failed: %w", err)
	}

	return books, total, nil
}

func (r *bookRepository) GetByID(ctx context.Context, bookID int) (*domain.Book, error) {
	var book domain.Book
	err := r.db.Collection(r.collection).
		FindOne(ctx, bson.D{{Key: "book_id", Value: bookID}}).
		Decode(&book)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("book lookup failed: %w", err)
	}
	return &book, nil
}

// GetTags resolves a book, then joins its book_tags rows to the tags
// collection. BookTag rows without a matching tag are dropped by the $unwind.
func (r *bookRepository) GetTags(ctx context.Context, bookID int) ([]domain.BookTagInfo, error) {
	book, err := r.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	pipeline := []bson.D{
		{
			{Key: "$match", Value: bson.D{
				{Key: "goodreads_book_id", Value: book.GoodreadsBookID},
			}},
		},
		{
			{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: domain.CollectionTag},
				{Key: "localField", Value: "tag_id"},
				{Key: "foreignField", Value: "tag_id"},
				{Key: "as", Value: "tag_info"},
			}},
		},
		{
			{Key: "$unwind", Value: "$tag_info"},
		},
		{
			{Key: "$project", Value: bson.D{
				{Key: "_id", Value: 0},
				{Key: "tag_id", Value: 1},
				{Key: "count", Value: 1},
				{Key: "tag_name", Value: "$tag_info.tag_name"},
			}},
		},
		{
			{Key: "$sort", Value: bson.D{
				{Key: "count", Value: -1},
				{Key: "tag_id", Value: 1},
			}},
		},
	}

	cursor, err := r.db.Collection(domain.CollectionBookTag).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("book tags query failed: %w", err)
	}

	tags := make([]domain.BookTagInfo, 0)
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, fmt.Errorf("book tags decode failed: %w", err)
	}

	return tags, nil
}

func (r *bookRepository) SearchByAuthor(ctx context.Context, author string) ([]domain.Book, error) {
	filter := bson.D{{Key: "authors", Value: substringRegex(author)}}
	opts := options.Find().SetLimit(authorSearchLimit)

	cursor, err := r.db.Collection(r.collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("author search failed: %w", err)
	}

	books := make([]domain.Book, 0)
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("author search decode failed: %w", err)
	}

	return books, nil
}

// buildBookMatch assembles the composite predicate from the filter's typed
// clauses. An empty filter yields an empty document, matching everything.
func buildBookMatch(f domain.BookFilter) bson.D {
	match := bson.D{}

	if f.Query != "" {
		regex := substringRegex(f.Query)
		match = append(match, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: regex}},
			bson.D{{Key: "authors", Value: regex}},
		}})
	}

	if f.MinAvgRating != nil {
		match = append(match, bson.E{
			Key:   "average_rating",
			Value: bson.D{{Key: "$gte", Value: *f.MinAvgRating}},
		})
	}

	if f.YearFrom != nil || f.YearTo != nil {
		bounds := bson.D{}
		if f.YearFrom != nil {
			bounds = append(bounds, bson.E{Key: "$gte", Value: *f.YearFrom})
		}
		if f.YearTo != nil {
			bounds = append(bounds, bson.E{Key: "$lte", Value: *f.YearTo})
		}
		// Books whose year was ingested as "" never satisfy a numeric range,
		// so year bounds exclude books without a publication year.
		match = append(match, bson.E{Key: "original_publication_year", Value: bounds})
	}

	return match
}

// substringRegex builds a case-insensitive substring matcher. The needle is
// quoted so regex metacharacters in user input match literally.
func substringRegex(needle string) bson.D {
	return bson.D{
		{Key: "$regex", Value: regexp.QuoteMeta(needle)},
		{Key: "$options", Value: "i"},
	}
}

var bookSortFields = map[string]string{
	"avg":           "average_rating",
	"ratings_count": "ratings_count",
	"year":          "original_publication_year",
	"title":         "title",
}

// buildBookSort maps the logical sort key to its document field and appends a
// book_id ascending tie-break so pagination is reproducible.
func buildBookSort(sort domain.SortOrder) bson.D {
	field, ok := bookSortFields[sort.Sort]
	if !ok {
		field = "average_rating"
	}
	direction := 1
	if sort.Order == "desc" {
		direction = -1
	}
	return bson.D{
		{Key: field, Value: direction},
		{Key: "book_id", Value: 1},
	}
}
