package repository

import (
	"testing"

	"github.com/goodbooks/goodbooks-api/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestBuildBookMatchEmpty(t *testing.T) {
	match := buildBookMatch(domain.BookFilter{})
	assert.Empty(t, match, "no constraints should produce a match-all document")
}

func TestBuildBookMatchQuery(t *testing.T) {
	match := buildBookMatch(domain.BookFilter{Query: "tolkien"})

	require.Len(t, match, 1)
	assert.Equal(t, "$or", match[0].Key)

	branches, ok := match[0].Value.(bson.A)
	require.True(t, ok)
	require.Len(t, branches, 2)

	title := branches[0].(bson.D)
	assert.Equal(t, "title", title[0].Key)
	regex := title[0].Value.(bson.D)
	assert.Equal(t, bson.D{
		{Key: "$regex", Value: "tolkien"},
		{Key: "$options", Value: "i"},
	}, regex)

	authors := branches[1].(bson.D)
	assert.Equal(t, "authors", authors[0].Key)
}

func TestBuildBookMatchQuotesRegexMeta(t *testing.T) {
	match := buildBookMatch(domain.BookFilter{Query: "c++ (2nd ed.)"})

	branches := match[0].Value.(bson.A)
	regex := branches[0].(bson.D)[0].Value.(bson.D)
	assert.Equal(t, `c\+\+ \(2nd ed\.\)`, regex[0].Value)
}

func TestBuildBookMatchMinRating(t *testing.T) {
	match := buildBookMatch(domain.BookFilter{MinAvgRating: floatPtr(4.2)})

	require.Len(t, match, 1)
	assert.Equal(t, "average_rating", match[0].Key)
	assert.Equal(t, bson.D{{Key: "$gte", Value: 4.2}}, match[0].Value)
}

func TestBuildBookMatchYearBounds(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.BookFilter
		want   bson.D
	}{
		{
			name:   "from only",
			filter: domain.BookFilter{YearFrom: intPtr(1950)},
			want:   bson.D{{Key: "$gte", Value: 1950}},
		},
		{
			name:   "to only",
			filter: domain.BookFilter{YearTo: intPtr(2000)},
			want:   bson.D{{Key: "$lte", Value: 2000}},
		},
		{
			name:   "both",
			filter: domain.BookFilter{YearFrom: intPtr(1950), YearTo: intPtr(2000)},
			want: bson.D{
				{Key: "$gte", Value: 1950},
				{Key: "$lte", Value: 2000},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := buildBookMatch(tt.filter)
			require.Len(t, match, 1)
			assert.Equal(t, "original_publication_year", match[0].Key)
			assert.Equal(t, tt.want, match[0].Value)
		})
	}
}

func TestBuildBookMatchCombinesWithAnd(t *testing.T) {
	match := buildBookMatch(domain.BookFilter{
		Query:        "dune",
		MinAvgRating: floatPtr(4.0),
		YearFrom:     intPtr(1960),
	})

	// Top-level keys of a single document AND together.
	require.Len(t, match, 3)
	assert.Equal(t, "$or", match[0].Key)
	assert.Equal(t, "average_rating", match[1].Key)
	assert.Equal(t, "original_publication_year", match[2].Key)
}

func TestBuildBookSort(t *testing.T) {
	tests := []struct {
		sort      string
		order     string
		wantField string
		wantDir   int
	}{
		{"avg", "desc", "average_rating", -1},
		{"ratings_count", "asc", "ratings_count", 1},
		{"year", "desc", "original_publication_year", -1},
		{"title", "asc", "title", 1},
		{"bogus", "asc", "average_rating", 1},
	}

	for _, tt := range tests {
		got := buildBookSort(domain.SortOrder{Sort: tt.sort, Order: tt.order})
		require.Len(t, got, 2)
		assert.Equal(t, tt.wantField, got[0].Key)
		assert.Equal(t, tt.wantDir, got[0].Value)
		assert.Equal(t, bson.E{Key: "book_id", Value: 1}, got[1], "tie-break must always be book_id ascending")
	}
}

func TestPageRequestSkip(t *testing.T) {
	assert.Equal(t, int64(0), domain.PageRequest{Page: 1, PageSize: 20}.Skip())
	assert.Equal(t, int64(40), domain.PageRequest{Page: 3, PageSize: 20}.Skip())
	assert.Equal(t, int64(99), domain.PageRequest{Page: 100, PageSize: 1}.Skip())
}
