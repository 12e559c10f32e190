package domain

import "context"

// ToRead is a user's reading-list membership record.
type ToRead struct {
	UserID int `bson:"user_id" json:"user_id"`
	BookID int `bson:"book_id" json:"book_id"`
}

type UserToRead struct {
	UserID int    `json:"user_id"`
	ToRead []Book `json:"to_read"`
}

type ToReadRepository interface {
	// BooksForUser joins the user's to_read rows to their books. An unknown
	// user yields an empty list, not an error.
	BooksForUser(ctx context.Context, userID int) ([]Book, error)
}
