package storage

import (
	"database/sql"
	"sort"
	"testing"

	_ "modernc.org/sqlite"
)

// openTestDB creates an in-memory SQLite database for testing.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInitDBCreatesSchema(t *testing.T) {
	db := openTestDB(t)
	if err := InitDB(db); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}

	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		t.Fatalf("failed to query sqlite_master: %v", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatal(err)
		}
		names = append(names, name)
	}

	want := []string{
		"account", "feature_flag", "hero_box", "hours_exception", "hours_label",
		"hours_override", "hours_override_range", "menu_category", "menu_item",
		"reservation", "week_hours",
	}
	sort.Strings(want)
	if len(names) != len(want) {
		t.Fatalf("tables = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("table[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestInitDBIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := InitDB(db); err != nil {
		t.Fatalf("first InitDB failed: %v", err)
	}
	if err := InitDB(db); err != nil {
		t.Fatalf("second InitDB failed: %v", err)
	}
}
