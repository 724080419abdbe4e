package herobox

import (
	"context"
	"database/sql"
	"time"

	"feldiserhof/internal/adapters/storage"
	domain "feldiserhof/internal/domain/herobox"
)

// SQLiteStore implements Store using SQLite. The hero box is a single
// row with id 1 enforced by the schema.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new HeroBoxStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const heroBoxColumns = `enabled, icon, title, description, highlight_text, bottom_label,
	button_text, button_link, start_date, end_date, priority, target_audience,
	style, theme, align, is_active, updated_at`

// Get retrieves the hero box. A database with no row yet returns the
// shipped default instead of an error.
// POST: Returns the current hero box
func (s *SQLiteStore) Get(ctx context.Context) (domain.HeroBox, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+heroBoxColumns+" FROM hero_box WHERE id = 1")

	var box domain.HeroBox
	var enabled, isActive int
	var startDate, endDate sql.NullString
	var updatedAt string
	err := row.Scan(&enabled, &box.Icon, &box.Title, &box.Description,
		&box.HighlightText, &box.BottomLabel, &box.ButtonText, &box.ButtonLink,
		&startDate, &endDate, &box.Priority, &box.TargetAudience,
		&box.Style, &box.Theme, &box.Align, &isActive, &updatedAt)
	if err == sql.ErrNoRows {
		return domain.Default(), nil
	}
	if err != nil {
		return domain.HeroBox{}, err
	}

	box.Enabled = enabled != 0
	box.IsActive = isActive != 0
	if startDate.Valid && startDate.String != "" {
		if box.StartDate, err = time.Parse("2006-01-02", startDate.String); err != nil {
			return domain.HeroBox{}, err
		}
	}
	if endDate.Valid && endDate.String != "" {
		if box.EndDate, err = time.Parse("2006-01-02", endDate.String); err != nil {
			return domain.HeroBox{}, err
		}
	}
	if box.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return domain.HeroBox{}, err
	}
	return box, nil
}

// Save persists the hero box, overwriting the previous state.
// PRE: box has been validated
// POST: Row 1 holds the given box
func (s *SQLiteStore) Save(ctx context.Context, box domain.HeroBox) error {
	enabled := 0
	if box.Enabled {
		enabled = 1
	}
	isActive := 0
	if box.IsActive {
		isActive = 1
	}
	var startDate, endDate any
	if !box.StartDate.IsZero() {
		startDate = box.StartDate.Format("2006-01-02")
	}
	if !box.EndDate.IsZero() {
		endDate = box.EndDate.Format("2006-01-02")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO hero_box (id, `+heroBoxColumns+`)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			enabled=excluded.enabled, icon=excluded.icon, title=excluded.title,
			description=excluded.description, highlight_text=excluded.highlight_text,
			bottom_label=excluded.bottom_label, button_text=excluded.button_text,
			button_link=excluded.button_link, start_date=excluded.start_date,
			end_date=excluded.end_date, priority=excluded.priority,
			target_audience=excluded.target_audience, style=excluded.style,
			theme=excluded.theme, align=excluded.align, is_active=excluded.is_active,
			updated_at=excluded.updated_at`,
		enabled, box.Icon, box.Title, box.Description, box.HighlightText,
		box.BottomLabel, box.ButtonText, box.ButtonLink, startDate, endDate,
		box.Priority, box.TargetAudience, box.Style, box.Theme, box.Align,
		isActive, box.UpdatedAt.UTC().Format(time.RFC3339),
	)
	return err
}
