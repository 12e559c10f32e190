package domain

import "context"

// Rating holds one user's score for one book. The (user_id, book_id) pair is
// unique; re-submission overwrites the value, no history is kept.
type Rating struct {
	UserID int `bson:"user_id" json:"user_id"`
	BookID int `bson:"book_id" json:"book_id"`
	Rating int `bson:"rating" json:"rating"`
}

type RatingUpsertResult struct {
	Upserted bool  `json:"upserted"`
	Matched  int64 `json:"matched"`
}

// RatingSummary aggregates all ratings of a book. With zero ratings the
// histogram is an empty map; with any ratings all five buckets are present,
// zeros included.
type RatingSummary struct {
	BookID    int         `json:"book_id"`
	Average   float64     `json:"average"`
	Count     int64       `json:"count"`
	Histogram map[int]int `json:"histogram"`
}

type RatingRepository interface {
	Upsert(ctx context.Context, rating Rating) (*RatingUpsertResult, error)
	Summary(ctx context.Context, bookID int) (*RatingSummary, error)
}
