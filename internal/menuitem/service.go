package menuitem

import (
	"context"
	"errors"

	"github.com/ashikraj78/menuMind/internal/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("menu item not found")
	ErrMenuNotFound = errors.New("menu not found")
	ErrForbidden    = errors.New("not authorized for this menu item")
	ErrInvalidInput = errors.New("invalid menu item fields")
)

// RestaurantReader is the slice of the restaurant repository the
// ownership walk needs.
type RestaurantReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error)
}

type Service struct {
	repo        Repository
	restaurants RestaurantReader
}

func NewService(repo Repository, restaurants RestaurantReader) *Service {
	return &Service{repo: repo, restaurants: restaurants}
}

// CreateInput is the validated shape of a new item.
type CreateInput struct {
	MenuID            uuid.UUID
	Name              string
	Description       *string
	DescriptionSource *string
	Price             decimal.Decimal
	Category          *string
	IsVeg             *bool
	SpiceLevel        *string
	ImageURL          *string
}

func validateEnums(descriptionSource, spiceLevel *string) error {
	if descriptionSource != nil && !ValidDescriptionSource(*descriptionSource) {
		return ErrInvalidInput
	}
	if spiceLevel != nil && !ValidSpiceLevel(*spiceLevel) {
		return ErrInvalidInput
	}
	return nil
}

// authorizeMenu walks menu -> restaurant -> owner. Each hop is a separate
// round trip; the chain is not atomic.
func (s *Service) authorizeMenu(ctx context.Context, menuID uuid.UUID, callerID string) error {
	restaurantID, err := s.repo.MenuRestaurant(ctx, menuID)
	if err != nil {
		return err
	}

	owner, err := s.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, restaurant.ErrNotFound) {
			return ErrForbidden
		}
		return err
	}
	if owner.OwnerID != callerID {
		return ErrForbidden
	}

	return nil
}

// --------------------------------------------------
// Create item (OWNERSHIP-GATED)
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, callerID string, input CreateInput) (*Item, error) {
	if input.Name == "" {
		return nil, ErrInvalidInput
	}
	if input.Price.IsNegative() {
		return nil, ErrInvalidInput
	}
	if err := validateEnums(input.DescriptionSource, input.SpiceLevel); err != nil {
		return nil, err
	}

	if err := s.authorizeMenu(ctx, input.MenuID, callerID); err != nil {
		return nil, err
	}

	item := &Item{
		MenuID:            input.MenuID,
		Name:              input.Name,
		Description:       input.Description,
		DescriptionSource: input.DescriptionSource,
		Price:             input.Price,
		Category:          input.Category,
		IsVeg:             input.IsVeg,
		SpiceLevel:        input.SpiceLevel,
		ImageURL:          input.ImageURL,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// --------------------------------------------------
// Reads (UNAUTHENTICATED)
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByMenu(ctx context.Context, menuID uuid.UUID) ([]*Item, error) {
	return s.repo.ListByMenu(ctx, menuID)
}

// --------------------------------------------------
// Update item (OWNERSHIP-GATED, PARTIAL)
// --------------------------------------------------
func (s *Service) Update(ctx context.Context, callerID string, id uuid.UUID, fields UpdateFields) (*Item, error) {
	if err := validateEnums(fields.DescriptionSource, fields.SpiceLevel); err != nil {
		return nil, err
	}
	if fields.Price != nil {
		price, err := decimal.NewFromString(*fields.Price)
		if err != nil || price.IsNegative() {
			return nil, ErrInvalidInput
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeMenu(ctx, item.MenuID, callerID); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, fields)
}

// --------------------------------------------------
// Delete item (OWNERSHIP-GATED)
// --------------------------------------------------
func (s *Service) Delete(ctx context.Context, callerID string, id uuid.UUID) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorizeMenu(ctx, item.MenuID, callerID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
