package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxvec "github.com/pgvector/pgvector-go/pgx"
)

// Connect opens the shared Postgres pool, registers the pgvector types,
// and brings the schema up to date. The pool is created once at startup
// and shared read-only for the process lifetime.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvec.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Println("connected to postgres, schema ready")
	return pool, nil
}

// initSchema creates or updates the database schema.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {

	// -------------------------------
	// EXTENSIONS
	// -------------------------------
	extensionsSQL := `
		CREATE EXTENSION IF NOT EXISTS "pgcrypto";
		CREATE EXTENSION IF NOT EXISTS vector;
	`
	if _, err := pool.Exec(ctx, extensionsSQL); err != nil {
		return err
	}

	// -------------------------------
	// RESTAURANTS
	// -------------------------------
	restaurantsSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			owner_id UUID NOT NULL,
			name VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := pool.Exec(ctx, restaurantsSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENUS
	// -------------------------------
	menusSQL := `
		CREATE TABLE IF NOT EXISTS menus (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := pool.Exec(ctx, menusSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			menu_id UUID NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			description_source VARCHAR(20),
			price NUMERIC(10,2) NOT NULL,
			category VARCHAR(100),
			is_veg BOOLEAN,
			spice_level VARCHAR(10),
			image_url VARCHAR(500),
			embedding vector(1536),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS menu_items_menu_id_idx ON menu_items (menu_id);
	`
	if _, err := pool.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// HYBRID RANKING FUNCTION
	// -------------------------------
	// The score blend lives entirely on the store side. Handlers only
	// invoke this function with normalized parameters.
	rankingSQL := `
		CREATE OR REPLACE FUNCTION hybrid_search_menu_items(
			query_embedding vector(1536),
			query_text TEXT,
			target_menu UUID,
			filter_category TEXT,
			filter_is_veg BOOLEAN,
			filter_price_max NUMERIC,
			match_limit INT
		)
		RETURNS TABLE (
			id UUID,
			menu_id UUID,
			name VARCHAR,
			description TEXT,
			description_source VARCHAR,
			price NUMERIC,
			category VARCHAR,
			is_veg BOOLEAN,
			spice_level VARCHAR,
			image_url VARCHAR,
			embedding TEXT,
			created_at TIMESTAMPTZ,
			distance DOUBLE PRECISION
		)
		LANGUAGE sql STABLE
		AS $$
			SELECT
				mi.id,
				mi.menu_id,
				mi.name,
				mi.description,
				mi.description_source,
				mi.price,
				mi.category,
				mi.is_veg,
				mi.spice_level,
				mi.image_url,
				mi.embedding::text,
				mi.created_at,
				(mi.embedding <-> query_embedding)
					- 0.3 * ts_rank(
						to_tsvector('english', mi.name || ' ' || coalesce(mi.description, '')),
						plainto_tsquery('english', query_text)
					) AS distance
			FROM menu_items mi
			WHERE mi.menu_id = target_menu
			  AND mi.embedding IS NOT NULL
			  AND (filter_category IS NULL OR mi.category = filter_category)
			  AND (filter_is_veg IS NULL OR mi.is_veg = filter_is_veg)
			  AND (filter_price_max IS NULL OR mi.price <= filter_price_max)
			ORDER BY distance ASC
			LIMIT match_limit
		$$;
	`
	if _, err := pool.Exec(ctx, rankingSQL); err != nil {
		return err
	}

	return nil
}
