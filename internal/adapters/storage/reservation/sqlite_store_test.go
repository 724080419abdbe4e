package reservation_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"feldiserhof/internal/adapters/storage"
	resStore "feldiserhof/internal/adapters/storage/reservation"
	domain "feldiserhof/internal/domain/reservation"
)

func newStore(t *testing.T) *resStore.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("init: %v", err)
	}
	return resStore.NewSQLiteStore(db)
}

func TestSaveListRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	entity := domain.Reservation{
		ID:        "r1",
		Name:      "Anna Caduff",
		Email:     "anna@example.ch",
		Phone:     "+41 79 123 45 67",
		Date:      "2025-07-20",
		Time:      "19:00",
		Guests:    4,
		Message:   "Tisch am Fenster, bitte",
		Status:    domain.StatusForwarded,
		CreatedAt: time.Date(2025, 7, 10, 14, 0, 0, 0, time.UTC),
	}
	if err := store.Save(ctx, entity); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("reservations = %d", len(got))
	}
	if got[0] != entity {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got[0], entity)
	}
}

func TestListMostRecentFirst(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	base := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"r1", "r2", "r3"} {
		entity := domain.Reservation{
			ID:        id,
			Name:      "Gast",
			Email:     "gast@example.ch",
			Date:      "2025-07-20",
			Time:      "19:00",
			Guests:    2,
			Status:    domain.StatusForwarded,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := store.Save(ctx, entity); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("reservations = %d", len(got))
	}
	if got[0].ID != "r3" || got[2].ID != "r1" {
		t.Errorf("order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
}
