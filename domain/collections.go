package domain

const (
	CollectionBook = "books"
)
const (
	CollectionRating = "ratings"
)
const (
	CollectionTag = "tags"
)
const (
	CollectionBookTag = "book_tags"
)
const (
	CollectionToRead = "to_read"
)
