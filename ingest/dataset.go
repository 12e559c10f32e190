package ingest

import "github.com/goodbooks/goodbooks-api/domain"

const sampleBaseURL = "https://raw.githubusercontent.com/zygmuntz/goodbooks-10k/master/samples"

// Dataset describes one CSV source and where its rows land. KeyFields are the
// columns that identify a row; upserts filter on them so reloading the same
// file never duplicates data.
type Dataset struct {
	Name       string
	Collection string
	File       string
	URL        string
	KeyFields  []string
}

func datasets() []Dataset {
	return []Dataset{
		{
			Name:       "books",
			Collection: domain.CollectionBook,
			File:       "books.csv",
			URL:        sampleBaseURL + "/books.csv",
			KeyFields:  []string{"book_id"},
		},
		{
			Name:       "tags",
			Collection: domain.CollectionTag,
			File:       "tags.csv",
			URL:        sampleBaseURL + "/tags.csv",
			KeyFields:  []string{"tag_id"},
		},
		{
			Name:       "ratings",
			Collection: domain.CollectionRating,
			File:       "ratings.csv",
			URL:        sampleBaseURL + "/ratings.csv",
			KeyFields:  []string{"user_id", "book_id"},
		},
		{
			Name:       "book_tags",
			Collection: domain.CollectionBookTag,
			File:       "book_tags.csv",
			URL:        sampleBaseURL + "/book_tags.csv",
			KeyFields:  []string{"goodreads_book_id", "tag_id"},
		},
		{
			Name:       "to_read",
			Collection: domain.CollectionToRead,
			File:       "to_read.csv",
			URL:        sampleBaseURL + "/to_read.csv",
			KeyFields:  []string{"user_id", "book_id"},
		},
	}
}
