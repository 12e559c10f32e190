package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
)

func TestCoerceValue(t *testing.T) {
	cases := []struct {
		in   string
		want interface{}
	}{
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"0", int64(0)},
		{"4.25", 4.25},
		{"1937.0", 1937.0},
		{"The Hobbit", "The Hobbit"},
		{"", ""},
		{"0316015849", "0316015849"},
		{"439023483", int64(439023483)},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, coerceValue(c.in), "input %q", c.in)
	}
}

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"book_id,title,average_rating,isbn,original_publication_year",
		"1,The Hunger Games,4.34,439023483,2008.0",
		"2,The Hobbit,4.25,0618260307,",
	}, "\n")

	rows, err := readCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, bson.D{
		{Key: "book_id", Value: int64(1)},
		{Key: "title", Value: "The Hunger Games"},
		{Key: "average_rating", Value: 4.34},
		{Key: "isbn", Value: int64(439023483)},
		{Key: "original_publication_year", Value: 2008.0},
	}, rows[0])

	assert.Equal(t, "0618260307", rows[1][3].Value, "zero-padded ISBN must stay a string")
	assert.Equal(t, "", rows[1][4].Value, "missing year must stay an empty string")
}

func TestReadCSVBadHeader(t *testing.T) {
	_, err := readCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestFilterByKeys(t *testing.T) {
	row := bson.D{
		{Key: "user_id", Value: int64(9)},
		{Key: "book_id", Value: int64(260)},
		{Key: "rating", Value: int64(4)},
	}

	filter := filterByKeys(row, []string{"user_id", "book_id"})
	assert.Equal(t, bson.D{
		{Key: "user_id", Value: int64(9)},
		{Key: "book_id", Value: int64(260)},
	}, filter)
}

func TestUpsertModelUsesKeyFilter(t *testing.T) {
	row := bson.D{
		{Key: "tag_id", Value: int64(30574)},
		{Key: "tag_name", Value: "to-read"},
	}

	model, ok := upsertModel(row, []string{"tag_id"}).(*driver.UpdateOneModel)
	require.True(t, ok)

	assert.Equal(t, bson.D{{Key: "tag_id", Value: int64(30574)}}, model.Filter)
	assert.Equal(t, bson.D{{Key: "$set", Value: row}}, model.Update)
	require.NotNil(t, model.Upsert)
	assert.True(t, *model.Upsert)
}
