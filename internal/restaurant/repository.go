package restaurant

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines all database operations for restaurants.
type Repository interface {
	Create(ctx context.Context, r *Restaurant) error
	ExistsByOwner(ctx context.Context, ownerID string) (bool, error)
	GetByOwner(ctx context.Context, ownerID string) (*Restaurant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Restaurant, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*Restaurant, error)
}
