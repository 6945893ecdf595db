package restaurant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create a new restaurant
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	query := `
		INSERT INTO restaurants (owner_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		restaurant.OwnerID,
		restaurant.Name,
	).Scan(&restaurant.ID, &restaurant.CreatedAt)
}

// --------------------------------------------------
// One-restaurant-per-owner check
// --------------------------------------------------
func (r *PostgresRepository) ExistsByOwner(ctx context.Context, ownerID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM restaurants WHERE owner_id = $1
		)
	`, ownerID).Scan(&exists)

	return exists, err
}

func (r *PostgresRepository) GetByOwner(ctx context.Context, ownerID string) (*Restaurant, error) {
	query := `
		SELECT id, owner_id, name, created_at
		FROM restaurants
		WHERE owner_id = $1
	`

	var res Restaurant
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&res.ID,
		&res.OwnerID,
		&res.Name,
		&res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &res, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Restaurant, error) {
	query := `
		SELECT id, owner_id, name, created_at
		FROM restaurants
		WHERE id = $1
	`

	var res Restaurant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&res.ID,
		&res.OwnerID,
		&res.Name,
		&res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &res, nil
}

func (r *PostgresRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (*Restaurant, error) {
	query := `
		UPDATE restaurants
		SET name = $1
		WHERE id = $2
		RETURNING id, owner_id, name, created_at
	`

	var res Restaurant
	err := r.db.QueryRow(ctx, query, name, id).Scan(
		&res.ID,
		&res.OwnerID,
		&res.Name,
		&res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &res, nil
}
