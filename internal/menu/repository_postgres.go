package menu

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
// Create a new menu
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, menu *Menu) error {
	query := `
		INSERT INTO menus (restaurant_id, title)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		menu.RestaurantID,
		menu.Title,
	).Scan(&menu.ID, &menu.CreatedAt)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Menu, error) {
	query := `
		SELECT id, restaurant_id, title, created_at
		FROM menus
		WHERE id = $1
	`

	var m Menu
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.RestaurantID,
		&m.Title,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Menu, error) {
	return r.list(ctx, `
		SELECT id, restaurant_id, title, created_at
		FROM menus
		ORDER BY created_at DESC
	`)
}

func (r *PostgresRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*Menu, error) {
	return r.list(ctx, `
		SELECT id, restaurant_id, title, created_at
		FROM menus
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...interface{}) ([]*Menu, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []*Menu
	for rows.Next() {
		var m Menu
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.Title, &m.CreatedAt); err != nil {
			return nil, err
		}
		menus = append(menus, &m)
	}

	return menus, rows.Err()
}

func (r *PostgresRepository) UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*Menu, error) {
	query := `
		UPDATE menus
		SET title = $1
		WHERE id = $2
		RETURNING id, restaurant_id, title, created_at
	`

	var m Menu
	err := r.db.QueryRow(ctx, query, title, id).Scan(
		&m.ID,
		&m.RestaurantID,
		&m.Title,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
