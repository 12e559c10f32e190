package domain

// SortOrder carries the logical sort key and direction for a listing query.
// Sort is one of the wire values (avg, ratings_count, year, title); Order is
// asc or desc. Mapping to store fields happens in the repository layer.
type SortOrder struct {
	Sort  string `json:"sort"`
	Order string `json:"order"`
}
