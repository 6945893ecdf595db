package db

import (
	"context"
	"os"
	"testing"
)

func TestConnectRejectsInvalidDSN(t *testing.T) {
	if _, err := Connect(context.Background(), "not-a-dsn"); err == nil {
		t.Fatal("expected error for malformed DSN")
	}
}

func TestConnectIntegration(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool, err := Connect(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}
