// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"basketlens/internal/dataset"
	"basketlens/internal/db"
)

// GroceriesCSV is a four-basket sample in the groceries export layout.
// Baskets: {milk, bread}, {milk}, {bread}, {milk, bread, eggs}.
const GroceriesCSV = "Member_number,Date,itemDescription\n" +
	"1,01-01-2015,milk\n" +
	"1,01-01-2015,bread\n" +
	"2,01-01-2015,milk\n" +
	"3,01-01-2015,bread\n" +
	"4,01-01-2015,milk\n" +
	"4,01-01-2015,bread\n" +
	"4,01-01-2015,eggs\n"

// Snapshot encodes GroceriesCSV.
func Snapshot(t *testing.T) *dataset.Snapshot {
	t.Helper()

	table, err := dataset.ReadTable(strings.NewReader(GroceriesCSV))
	if err != nil {
		t.Fatalf("failed to read sample dataset: %v", err)
	}
	snap, err := dataset.NewSnapshot(table)
	if err != nil {
		t.Fatalf("failed to encode sample dataset: %v", err)
	}
	return snap
}

// StaticSource serves a fixed snapshot. A nil Snap reports ErrNotLoaded.
type StaticSource struct {
	Snap *dataset.Snapshot
}

// Current returns the fixed snapshot.
func (s StaticSource) Current() (*dataset.Snapshot, error) {
	if s.Snap == nil {
		return nil, dataset.ErrNotLoaded
	}
	return s.Snap, nil
}

// TestDB creates a test database connection and returns a cleanup function.
// Skips the test unless TEST_DATABASE_URL is set.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Run migrations
	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanup := func() {
		cleanupTestData(ctx, database.Pool)
		database.Close()
	}

	return database, cleanup
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, pool *pgxpool.Pool) {
	pool.Exec(ctx, "DELETE FROM association_rules")
	pool.Exec(ctx, "DELETE FROM frequent_itemsets")
	pool.Exec(ctx, "DELETE FROM chat_lookups")
	pool.Exec(ctx, "DELETE FROM users")
}
