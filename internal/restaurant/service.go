package restaurant

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("restaurant not found")
	ErrAlreadyExists = errors.New("User already owns a restaurant")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Create restaurant (ONE PER OWNER)
// --------------------------------------------------
// The existence check and the insert are separate round trips; a pair of
// concurrent creates for the same owner can race past the check.
func (s *Service) Create(ctx context.Context, ownerID, name string) (*Restaurant, error) {
	if name == "" {
		return nil, errors.New("missing required fields")
	}

	exists, err := s.repo.ExistsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	restaurant := &Restaurant{
		OwnerID: ownerID,
		Name:    name,
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// --------------------------------------------------
// Fetch the caller's restaurant
// --------------------------------------------------
func (s *Service) GetMine(ctx context.Context, ownerID string) (*Restaurant, error) {
	return s.repo.GetByOwner(ctx, ownerID)
}

// --------------------------------------------------
// Rename the caller's restaurant
// --------------------------------------------------
func (s *Service) RenameMine(ctx context.Context, ownerID, name string) (*Restaurant, error) {
	if name == "" {
		return nil, errors.New("missing required fields")
	}

	current, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateName(ctx, current.ID, name)
}
