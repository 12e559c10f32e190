package domain

import "context"

type Tag struct {
	TagID   int    `bson:"tag_id" json:"tag_id"`
	TagName string `bson:"tag_name" json:"tag_name"`
}

// BookTag links a book (by goodreads_book_id) to a tag with a popularity
// weight. It exists as a standalone collection; books and tags never embed
// each other.
type BookTag struct {
	GoodreadsBookID int `bson:"goodreads_book_id" json:"goodreads_book_id"`
	TagID           int `bson:"tag_id" json:"tag_id"`
	Count           int `bson:"count" json:"count"`
}

// BookTagInfo is one row of the book_tags→tags join, sorted by count
// descending in responses.
type BookTagInfo struct {
	TagID   int    `bson:"tag_id" json:"tag_id"`
	Count   int    `bson:"count" json:"count"`
	TagName string `bson:"tag_name" json:"tag_name"`
}

type BookTagList struct {
	BookID int           `json:"book_id"`
	Tags   []BookTagInfo `json:"tags"`
}

type TagPage struct {
	Items    []Tag `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

type TagRepository interface {
	Fetch(ctx context.Context, page PageRequest) ([]Tag, int64, error)
}
