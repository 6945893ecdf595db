package menu

import (
	"context"
	"errors"

	"github.com/ashikraj78/menuMind/internal/menuitem"
	"github.com/ashikraj78/menuMind/internal/restaurant"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("menu not found")
	ErrForbidden = errors.New("not authorized for this menu")
)

// RestaurantReader is the slice of the restaurant repository the
// ownership walk needs.
type RestaurantReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error)
}

// ItemLister supplies a menu's items for the combined fetch.
type ItemLister interface {
	ListByMenu(ctx context.Context, menuID uuid.UUID) ([]*menuitem.Item, error)
}

type Service struct {
	repo        Repository
	restaurants RestaurantReader
	items       ItemLister
}

func NewService(repo Repository, restaurants RestaurantReader, items ItemLister) *Service {
	return &Service{repo: repo, restaurants: restaurants, items: items}
}

// authorizeRestaurant resolves the restaurant and compares its owner to
// the caller. A missing restaurant reads as forbidden, same as a
// mismatched owner.
func (s *Service) authorizeRestaurant(ctx context.Context, restaurantID uuid.UUID, callerID string) error {
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
// Create menu (OWNERSHIP-GATED)
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, callerID string, restaurantID uuid.UUID, title string) (*Menu, error) {
	if title == "" {
		return nil, errors.New("missing required fields")
	}

	if err := s.authorizeRestaurant(ctx, restaurantID, callerID); err != nil {
		return nil, err
	}

	menu := &Menu{
		RestaurantID: restaurantID,
		Title:        title,
	}

	if err := s.repo.Create(ctx, menu); err != nil {
		return nil, err
	}

	return menu, nil
}

// --------------------------------------------------
// Reads (UNAUTHENTICATED)
// --------------------------------------------------
func (s *Service) GetWithItems(ctx context.Context, id uuid.UUID) (*WithItems, error) {
	menu, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.items.ListByMenu(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := make([]menuitem.Response, 0, len(items))
	for _, item := range items {
		responses = append(responses, item.ListResponse())
	}

	return &WithItems{Menu: *menu, Items: responses}, nil
}

func (s *Service) ListAll(ctx context.Context) ([]*Menu, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*Menu, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

// --------------------------------------------------
// Update menu title (OWNERSHIP-GATED)
// --------------------------------------------------
func (s *Service) UpdateTitle(ctx context.Context, callerID string, id uuid.UUID, title string) (*Menu, error) {
	if title == "" {
		return nil, errors.New("missing required fields")
	}

	menu, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeRestaurant(ctx, menu.RestaurantID, callerID); err != nil {
		return nil, err
	}

	return s.repo.UpdateTitle(ctx, id, title)
}

// --------------------------------------------------
// Delete menu (OWNERSHIP-GATED)
// --------------------------------------------------
func (s *Service) Delete(ctx context.Context, callerID string, id uuid.UUID) error {
	menu, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorizeRestaurant(ctx, menu.RestaurantID, callerID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
