// Package testutil provides a PostgreSQL database for integration tests.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/lib/pq"

	"github.com/blueswitch/blueswitch/internal/repository"
)

// SetupTestDB connects to the test database, applies the schema and empties every table.
// The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getenv("TEST_DB_HOST", "localhost"),
		getenv("TEST_DB_PORT", "5432"),
		getenv("TEST_DB_USER", "blueswitch"),
		getenv("TEST_DB_PASSWORD", "blueswitch"),
		getenv("TEST_DB_NAME", "blueswitch_test"),
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}
	if err := repository.Migrate(ctx, db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	if err := CleanupTestDB(db); err != nil {
		t.Fatalf("failed to cleanup database: %v", err)
	}

	return db
}

// CleanupTestDB truncates all tables to clean up test data.
func CleanupTestDB(db *sql.DB) error {
	// Truncate tables in reverse order of dependencies
	tables := []string{
		"device_intervals",
		"devices",
		"team_members",
		"teams",
		"users",
	}

	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
