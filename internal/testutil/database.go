package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the embedded goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Operation log
		CREATE TABLE IF NOT EXISTS operation (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			ticker VARCHAR(10) NOT NULL,
			date DATE NOT NULL,
			type VARCHAR(4) NOT NULL,
			quantity FLOAT NOT NULL,
			price FLOAT NOT NULL,
			brokerage FLOAT NOT NULL DEFAULT 0,
			other_fees FLOAT NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_operation_ticker ON operation (ticker);
		CREATE INDEX IF NOT EXISTS idx_operation_date ON operation (date);

		-- Dividend log
		CREATE TABLE IF NOT EXISTS dividend (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			ticker VARCHAR(10) NOT NULL,
			date DATE NOT NULL,
			type VARCHAR(10) NOT NULL,
			value FLOAT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_dividend_ticker ON dividend (ticker);

		-- Key-value settings
		CREATE TABLE IF NOT EXISTS setting (
			key VARCHAR(50) NOT NULL PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := db.Exec(schema)
	return err
}
