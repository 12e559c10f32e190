package domain

// PageRequest is a 1-based page selector. Page must be >= 1 and PageSize in
// [1,100]; both are validated at the API boundary before reaching here.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

func (p PageRequest) Skip() int64 {
	return int64(p.Page-1) * int64(p.PageSize)
}

func (p PageRequest) Limit() int64 {
	return int64(p.PageSize)
}
