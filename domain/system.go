package domain

import "context"

type SystemMetrics struct {
	BooksCount   int64 `json:"books_count"`
	RatingsCount int64 `json:"ratings_count"`
	UsersCount   int64 `json:"users_count"`
}

type HealthStatus struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

type SystemRepository interface {
	Ping(ctx context.Context) error
	Metrics(ctx context.Context) (*SystemMetrics, error)
}
