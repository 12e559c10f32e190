package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound signals a single-entity lookup miss. List and aggregate
// operations never return it; they degrade to empty results instead.
var ErrNotFound = errors.New("not found")

// ErrInvalidParam marks malformed or out-of-range input rejected before any
// store call. Wrapped errors carry the field detail.
var ErrInvalidParam = errors.New("invalid parameter")

var ErrInvalidRating = fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidParam)

type ErrorResponse struct {
	Message string `json:"message"`
}
