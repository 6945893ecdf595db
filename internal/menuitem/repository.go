package menuitem

import (
	"context"

	"github.com/google/uuid"
)

// UpdateFields carries a partial update; nil fields keep their stored value.
type UpdateFields struct {
	Name              *string
	Description       *string
	DescriptionSource *string
	Price             *string // decimal string, cast to numeric in SQL
	Category          *string
	IsVeg             *bool
	SpiceLevel        *string
	ImageURL          *string
}

// Repository defines all database operations for menu items.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	BulkInsert(ctx context.Context, items []*Item) ([]*Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	ListByMenu(ctx context.Context, menuID uuid.UUID) ([]*Item, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Item, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// MenuRestaurant resolves the owning restaurant of a menu; one hop of
	// the ownership chain.
	MenuRestaurant(ctx context.Context, menuID uuid.UUID) (uuid.UUID, error)
}
