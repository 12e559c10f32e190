package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Book is a catalog record keyed by book_id. GoodreadsBookID is the join key
// into the book_tags collection. No _id field is declared, so the store's
// surrogate id never leaks into responses.
type Book struct {
	BookID                  int             `bson:"book_id" json:"book_id"`
	GoodreadsBookID         int             `bson:"goodreads_book_id" json:"goodreads_book_id"`
	Title                   string          `bson:"title" json:"title"`
	Authors                 string          `bson:"authors" json:"authors"`
	OriginalPublicationYear PublicationYear `bson:"original_publication_year" json:"original_publication_year"`
	AverageRating           float64         `bson:"average_rating" json:"average_rating"`
	RatingsCount            int             `bson:"ratings_count" json:"ratings_count"`
	ImageURL                string          `bson:"image_url" json:"image_url"`
}

// PublicationYear is an optional numeric year. The ingested CSVs leave the
// field as an empty string when the year is unknown, so the decoder accepts
// numeric types, numeric strings and the empty string alike. An unknown year
// serializes as JSON null.
type PublicationYear struct {
	Value float64
	Valid bool
}

func (y *PublicationYear) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		y.Value, y.Valid = rv.Double(), true
	case bsontype.Int32:
		y.Value, y.Valid = float64(rv.Int32()), true
	case bsontype.Int64:
		y.Value, y.Valid = float64(rv.Int64()), true
	case bsontype.String:
		s := rv.StringValue()
		if s == "" {
			y.Value, y.Valid = 0, false
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid publication year %q: %w", s, err)
		}
		y.Value, y.Valid = v, true
	case bsontype.Null, bsontype.Undefined:
		y.Value, y.Valid = 0, false
	default:
		return fmt.Errorf("unexpected publication year type %s", t)
	}
	return nil
}

func (y PublicationYear) MarshalJSON() ([]byte, error) {
	if !y.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(y.Value)
}

func (y *PublicationYear) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		y.Value, y.Valid = 0, false
		return nil
	}
	if err := json.Unmarshal(data, &y.Value); err != nil {
		return err
	}
	y.Valid = true
	return nil
}

// BookFilter is the composite predicate over the book collection. Zero-valued
// fields contribute no constraint; active constraints combine with logical AND.
type BookFilter struct {
	Query        string
	MinAvgRating *float64
	YearFrom     *int
	YearTo       *int
}

type BookPage struct {
	Items    []Book `json:"items"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Total    int64  `json:"total"`
}

type AuthorBooks struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
	Books  []Book `json:"books"`
}

type BookRepository interface {
	Fetch(ctx context.Context, filter BookFilter, sort SortOrder, page PageRequest) ([]Book, int64, error)
	GetByID(ctx context.Context, bookID int) (*Book, error)
	GetTags(ctx context.Context, bookID int) ([]BookTagInfo, error)
	SearchByAuthor(ctx context.Context, author string) ([]Book, error)
}
