package menu

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines all database operations for menus.
type Repository interface {
	Create(ctx context.Context, m *Menu) error
	GetByID(ctx context.Context, id uuid.UUID) (*Menu, error)
	ListAll(ctx context.Context) ([]*Menu, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*Menu, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*Menu, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
