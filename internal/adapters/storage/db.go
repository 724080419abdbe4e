package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLDB is the database interface used by all stores.
// *sql.DB satisfies this interface; tests may substitute fakes.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Compile-time check that *sql.DB satisfies SQLDB.
var _ SQLDB = (*sql.DB)(nil)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	);

	CREATE TABLE IF NOT EXISTS feature_flag (
		key TEXT PRIMARY KEY,
		description TEXT NOT NULL DEFAULT '',
		enabled INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS menu_category (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS menu_item (
		id TEXT PRIMARY KEY,
		category_id TEXT NOT NULL,
		name TEXT NOT NULL,
		price REAL NOT NULL DEFAULT 0,
		price_text TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '',
		allergens TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (category_id) REFERENCES menu_category(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS week_hours (
		id TEXT PRIMARY KEY,
		weekday INTEGER NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS hours_exception (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS hours_override (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS hours_override_range (
		id TEXT PRIMARY KEY,
		override_id TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (override_id) REFERENCES hours_override(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS hours_label (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS hero_box (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		enabled INTEGER NOT NULL DEFAULT 0,
		icon TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		highlight_text TEXT NOT NULL DEFAULT '',
		bottom_label TEXT NOT NULL DEFAULT '',
		button_text TEXT NOT NULL DEFAULT '',
		button_link TEXT NOT NULL DEFAULT '',
		start_date TEXT,
		end_date TEXT,
		priority INTEGER NOT NULL DEFAULT 1,
		target_audience TEXT NOT NULL DEFAULT 'all',
		style TEXT NOT NULL DEFAULT 'glass',
		theme TEXT NOT NULL DEFAULT 'gold',
		align TEXT NOT NULL DEFAULT 'center',
		is_active INTEGER NOT NULL DEFAULT 1,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS reservation (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		guests INTEGER NOT NULL,
		message TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_menu_item_category ON menu_item(category_id, position);
	CREATE INDEX IF NOT EXISTS idx_week_hours_weekday ON week_hours(weekday, position);
	CREATE INDEX IF NOT EXISTS idx_reservation_date ON reservation(date);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
