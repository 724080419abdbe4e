package reservation

import (
	"context"
	"time"

	"feldiserhof/internal/adapters/storage"
	domain "feldiserhof/internal/domain/reservation"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new ReservationStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const reservationColumns = "id, name, email, phone, date, time, guests, message, status, created_at"

// Save persists a Reservation to the database.
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Reservation) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO reservation ("+reservationColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		entity.ID, entity.Name, entity.Email, entity.Phone, entity.Date,
		entity.Time, entity.Guests, entity.Message, entity.Status,
		entity.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// List retrieves all reservations, most recent first.
// POST: Returns all reservations ordered by creation time descending
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Reservation, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+reservationColumns+" FROM reservation ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Reservation
	for rows.Next() {
		var entity domain.Reservation
		var createdAt string
		if err := rows.Scan(&entity.ID, &entity.Name, &entity.Email, &entity.Phone,
			&entity.Date, &entity.Time, &entity.Guests, &entity.Message,
			&entity.Status, &createdAt); err != nil {
			return nil, err
		}
		if entity.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
