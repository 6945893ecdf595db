package search

import (
	"context"

	"github.com/google/uuid"
)

// Params carries the fully resolved arguments for one ranking call.
// Nil filters mean "not constrained".
type Params struct {
	Embedding []float32
	QueryText string
	MenuID    uuid.UUID
	Category  *string
	IsVeg     *bool
	PriceMax  *float64
	Limit     int
}

type Repository interface {
	Search(ctx context.Context, params Params) ([]*Result, error)
}
