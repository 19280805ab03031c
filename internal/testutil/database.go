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

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
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

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE user (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			username VARCHAR(100) NOT NULL UNIQUE,
			email VARCHAR(200) NOT NULL,
			password_hash VARCHAR(100) NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE user_ban (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL UNIQUE,
			ban_until DATETIME,
			permanent BOOLEAN NOT NULL DEFAULT FALSE,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		CREATE TABLE item (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(200) NOT NULL UNIQUE
		);

		CREATE TABLE alias (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			full_name VARCHAR(200) NOT NULL,
			short_name VARCHAR(100) NOT NULL DEFAULT '',
			image_path VARCHAR(300) NOT NULL DEFAULT ''
		);

		CREATE TABLE accumulation_price (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			item_id VARCHAR(36) NOT NULL UNIQUE,
			price FLOAT NOT NULL DEFAULT 0,
			FOREIGN KEY(item_id) REFERENCES item(id) ON DELETE CASCADE
		);

		CREATE TABLE target_sell_price (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			item_id VARCHAR(36) NOT NULL UNIQUE,
			price FLOAT NOT NULL DEFAULT 0,
			FOREIGN KEY(item_id) REFERENCES item(id) ON DELETE CASCADE
		);

		-- Transaction table (quoted because transaction is a reserved keyword)
		CREATE TABLE "transaction" (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			item_id VARCHAR(36) NOT NULL,
			type VARCHAR(4) NOT NULL,
			price FLOAT NOT NULL,
			quantity FLOAT NOT NULL,
			date_of_holding DATE NOT NULL,
			realised_profit FLOAT NOT NULL DEFAULT 0,
			cumulative_profit FLOAT NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE,
			FOREIGN KEY(item_id) REFERENCES item(id) ON DELETE CASCADE
		);

		CREATE TABLE watchlist (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			name VARCHAR(200) NOT NULL,
			buy_or_sell VARCHAR(4) NOT NULL DEFAULT 'Buy',
			desired_price FLOAT NOT NULL DEFAULT 0,
			wished_quantity FLOAT NOT NULL DEFAULT 0,
			total_value FLOAT NOT NULL DEFAULT 0,
			current_holding FLOAT NOT NULL DEFAULT 0,
			date_added DATE NOT NULL,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		CREATE TABLE wealth_data (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			year INTEGER NOT NULL,
			january VARCHAR(50) NOT NULL DEFAULT '',
			february VARCHAR(50) NOT NULL DEFAULT '',
			march VARCHAR(50) NOT NULL DEFAULT '',
			april VARCHAR(50) NOT NULL DEFAULT '',
			may VARCHAR(50) NOT NULL DEFAULT '',
			june VARCHAR(50) NOT NULL DEFAULT '',
			july VARCHAR(50) NOT NULL DEFAULT '',
			august VARCHAR(50) NOT NULL DEFAULT '',
			september VARCHAR(50) NOT NULL DEFAULT '',
			october VARCHAR(50) NOT NULL DEFAULT '',
			november VARCHAR(50) NOT NULL DEFAULT '',
			december VARCHAR(50) NOT NULL DEFAULT '',
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		CREATE TABLE membership (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			account_name VARCHAR(100) NOT NULL UNIQUE,
			status VARCHAR(10) NOT NULL DEFAULT 'No',
			end_date DATE
		);

		-- Indexes for performance
		CREATE INDEX idx_transaction_user_date ON "transaction"(user_id, date_of_holding);
		CREATE INDEX idx_transaction_item ON "transaction"(item_id);
		CREATE INDEX idx_watchlist_user ON watchlist(user_id);
		CREATE INDEX idx_wealth_data_user_year ON wealth_data(user_id, year);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables in dependency order.
// Useful for reusing the same database across multiple tests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	// Order matters: delete children before parents due to foreign keys
	tables := []string{
		"membership",
		"wealth_data",
		"watchlist",
		"transaction",
		"target_sell_price",
		"accumulation_price",
		"alias",
		"item",
		"user_ban",
		"user",
	}

	for _, table := range tables {
		//nolint:gosec // G202: Table names are from hardcoded slice, no SQL injection risk
		query := `DELETE FROM "` + table + `"`
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := `SELECT COUNT(*) FROM "` + table + `"`
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
//
// Example usage:
//
//	testutil.AssertRowCount(t, db, "transaction", 2)
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
