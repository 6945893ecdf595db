package menuitem

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const itemColumns = `
	id,
	menu_id,
	name,
	description,
	description_source,
	price::text,
	category,
	is_veg,
	spice_level,
	image_url,
	embedding,
	created_at
`

func scanItem(row pgx.Row) (*Item, error) {
	var (
		item      Item
		priceText string
		embedding *pgvector.Vector
	)

	err := row.Scan(
		&item.ID,
		&item.MenuID,
		&item.Name,
		&item.Description,
		&item.DescriptionSource,
		&priceText,
		&item.Category,
		&item.IsVeg,
		&item.SpiceLevel,
		&item.ImageURL,
		&embedding,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(priceText)
	if err != nil {
		return nil, err
	}
	item.Price = price

	if embedding != nil {
		item.Embedding = embedding.Slice()
	}

	return &item, nil
}

func embeddingParam(embedding []float32) interface{} {
	if len(embedding) == 0 {
		return nil
	}
	return pgvector.NewVector(embedding)
}

// --------------------------------------------------
// Create a single menu item
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, item *Item) error {
	query := `
		INSERT INTO menu_items (
			menu_id,
			name,
			description,
			description_source,
			price,
			category,
			is_veg,
			spice_level,
			image_url,
			embedding
		)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		item.MenuID,
		item.Name,
		item.Description,
		item.DescriptionSource,
		item.Price.String(),
		item.Category,
		item.IsVeg,
		item.SpiceLevel,
		item.ImageURL,
		embeddingParam(item.Embedding),
	).Scan(&item.ID, &item.CreatedAt)
}

// --------------------------------------------------
// Bulk insert (ingestion path)
// --------------------------------------------------
func (r *PostgresRepository) BulkInsert(ctx context.Context, items []*Item) ([]*Item, error) {
	if len(items) == 0 {
		return nil, nil
	}

	query := `
		INSERT INTO menu_items (
			menu_id,
			name,
			description,
			description_source,
			price,
			category,
			is_veg,
			spice_level,
			image_url,
			embedding
		)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10)
		RETURNING ` + itemColumns

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(
			query,
			item.MenuID,
			item.Name,
			item.Description,
			item.DescriptionSource,
			item.Price.String(),
			item.Category,
			item.IsVeg,
			item.SpiceLevel,
			item.ImageURL,
			embeddingParam(item.Embedding),
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	inserted := make([]*Item, 0, len(items))
	for range items {
		item, err := scanItem(results.QueryRow())
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, item)
	}

	return inserted, nil
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	query := `SELECT ` + itemColumns + ` FROM menu_items WHERE id = $1`

	item, err := scanItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *PostgresRepository) ListByMenu(ctx context.Context, menuID uuid.UUID) ([]*Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM menu_items
		WHERE menu_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, menuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *PostgresRepository) MenuRestaurant(ctx context.Context, menuID uuid.UUID) (uuid.UUID, error) {
	var restaurantID uuid.UUID
	err := r.db.QueryRow(ctx, `
		SELECT restaurant_id FROM menus WHERE id = $1
	`, menuID).Scan(&restaurantID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ErrMenuNotFound
		}
		return uuid.Nil, err
	}

	return restaurantID, nil
}

// --------------------------------------------------
// Partial update; nil fields keep their stored value
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Item, error) {
	query := `
		UPDATE menu_items SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			description_source = COALESCE($4, description_source),
			price = COALESCE($5::numeric, price),
			category = COALESCE($6, category),
			is_veg = COALESCE($7, is_veg),
			spice_level = COALESCE($8, spice_level),
			image_url = COALESCE($9, image_url)
		WHERE id = $1
		RETURNING ` + itemColumns

	item, err := scanItem(r.db.QueryRow(
		ctx,
		query,
		id,
		fields.Name,
		fields.Description,
		fields.DescriptionSource,
		fields.Price,
		fields.Category,
		fields.IsVeg,
		fields.SpiceLevel,
		fields.ImageURL,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return item, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
