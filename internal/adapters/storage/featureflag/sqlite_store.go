package featureflag

import (
	"context"
	"database/sql"
	"fmt"

	"feldiserhof/internal/adapters/storage"
	domain "feldiserhof/internal/domain/featureflag"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new FeatureFlagStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get retrieves a FeatureFlag by key.
// PRE: key is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) Get(ctx context.Context, key string) (domain.FeatureFlag, error) {
	row := s.db.QueryRowContext(ctx, "SELECT key, description, enabled FROM feature_flag WHERE key = ?", key)
	var entity domain.FeatureFlag
	var enabled int
	err := row.Scan(&entity.Key, &entity.Description, &enabled)
	if err == sql.ErrNoRows {
		return domain.FeatureFlag{}, fmt.Errorf("feature flag not found: %w", err)
	}
	entity.Enabled = enabled != 0
	return entity, err
}

// List retrieves all FeatureFlags ordered by key.
// POST: Returns all flags
func (s *SQLiteStore) List(ctx context.Context) ([]domain.FeatureFlag, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, description, enabled FROM feature_flag ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.FeatureFlag
	for rows.Next() {
		var entity domain.FeatureFlag
		var enabled int
		if err := rows.Scan(&entity.Key, &entity.Description, &enabled); err != nil {
			return nil, err
		}
		entity.Enabled = enabled != 0
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Save persists a FeatureFlag to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.FeatureFlag) error {
	enabled := 0
	if entity.Enabled {
		enabled = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feature_flag (key, description, enabled) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET description=excluded.description, enabled=excluded.enabled`,
		entity.Key, entity.Description, enabled,
	)
	return err
}

// IsEnabled reports whether a flag exists and is on. Unknown keys read as
// disabled rather than erroring, so a missing row can never open a feature.
func (s *SQLiteStore) IsEnabled(ctx context.Context, key string) bool {
	flag, err := s.Get(ctx, key)
	if err != nil {
		return false
	}
	return flag.Enabled
}
