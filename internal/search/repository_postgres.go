package search

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Search invokes the hybrid ranking function with bound parameters.
// Price is cast to text so it round-trips through decimal exactly.
func (r *PostgresRepository) Search(ctx context.Context, params Params) ([]*Result, error) {
	query := `
		SELECT id, menu_id, name, description, description_source,
		       price::text, category, is_veg, spice_level, image_url,
		       embedding, created_at, distance
		FROM hybrid_search_menu_items($1, $2, $3, $4, $5, $6, $7)`

	rows, err := r.pool.Query(ctx, query,
		pgvector.NewVector(params.Embedding),
		params.QueryText,
		params.MenuID,
		params.Category,
		params.IsVeg,
		params.PriceMax,
		params.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("hybrid search query failed: %w", err)
	}
	defer rows.Close()

	var results []*Result
	for rows.Next() {
		var result Result
		var priceText string
		if err := rows.Scan(
			&result.ID,
			&result.MenuID,
			&result.Name,
			&result.Description,
			&result.DescriptionSource,
			&priceText,
			&result.Category,
			&result.IsVeg,
			&result.SpiceLevel,
			&result.ImageURL,
			&result.Embedding,
			&result.CreatedAt,
			&result.Distance,
		); err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		price, err := decimal.NewFromString(priceText)
		if err != nil {
			return nil, fmt.Errorf("invalid price in search result: %w", err)
		}
		result.Price = price
		results = append(results, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read search results: %w", err)
	}

	return results, nil
}
