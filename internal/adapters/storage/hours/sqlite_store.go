package hours

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"feldiserhof/internal/adapters/storage"
	domain "feldiserhof/internal/domain/hours"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new HoursStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Label keys for the hours_label table. Weekday names are stored under
// day_0 (Sunday) through day_6 (Saturday).
const (
	labelOpenBadge   = "open_badge"
	labelClosedBadge = "closed_badge"
	labelTodayOpen   = "today_open"
	labelClosedUntil = "closed_until"
	labelClosedOpens = "closed_opens"
	labelToday       = "today"
	labelTomorrow    = "tomorrow"
	labelDayPrefix   = "day_prefix"
)

// Load reads the complete opening-hours configuration. Missing labels fall
// back to the shipped defaults so a fresh database renders sensibly.
// POST: Returns the stored configuration
func (s *SQLiteStore) Load(ctx context.Context) (Config, error) {
	cfg := Config{Week: domain.Week{}, Labels: domain.DefaultLabels()}

	rows, err := s.db.QueryContext(ctx,
		"SELECT weekday, start_time, end_time FROM week_hours ORDER BY weekday, position")
	if err != nil {
		return Config{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var weekday int
		var r domain.Range
		if err := rows.Scan(&weekday, &r.Start, &r.End); err != nil {
			return Config{}, err
		}
		day := time.Weekday(weekday)
		cfg.Week[day] = append(cfg.Week[day], r)
	}
	if err := rows.Err(); err != nil {
		return Config{}, err
	}

	exRows, err := s.db.QueryContext(ctx,
		"SELECT id, name, start_date, end_date FROM hours_exception ORDER BY start_date")
	if err != nil {
		return Config{}, err
	}
	defer exRows.Close()
	for exRows.Next() {
		var e domain.Exception
		var start, end string
		if err := exRows.Scan(&e.ID, &e.Name, &start, &end); err != nil {
			return Config{}, err
		}
		if e.StartDate, err = domain.ParseDate(start); err != nil {
			return Config{}, fmt.Errorf("exception %s: %w", e.ID, err)
		}
		if e.EndDate, err = domain.ParseDate(end); err != nil {
			return Config{}, fmt.Errorf("exception %s: %w", e.ID, err)
		}
		cfg.Exceptions = append(cfg.Exceptions, e)
	}
	if err := exRows.Err(); err != nil {
		return Config{}, err
	}

	if cfg.Overrides, err = s.loadOverrides(ctx); err != nil {
		return Config{}, err
	}
	if err := s.loadLabels(ctx, &cfg.Labels); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (s *SQLiteStore) loadOverrides(ctx context.Context) ([]domain.Override, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, date FROM hours_override ORDER BY date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []domain.Override
	byID := map[string]int{}
	for rows.Next() {
		var o domain.Override
		var date string
		if err := rows.Scan(&o.ID, &date); err != nil {
			return nil, err
		}
		if o.Date, err = domain.ParseDate(date); err != nil {
			return nil, fmt.Errorf("override %s: %w", o.ID, err)
		}
		byID[o.ID] = len(overrides)
		overrides = append(overrides, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rangeRows, err := s.db.QueryContext(ctx,
		"SELECT override_id, start_time, end_time FROM hours_override_range ORDER BY override_id, position")
	if err != nil {
		return nil, err
	}
	defer rangeRows.Close()
	for rangeRows.Next() {
		var overrideID string
		var r domain.Range
		if err := rangeRows.Scan(&overrideID, &r.Start, &r.End); err != nil {
			return nil, err
		}
		if idx, ok := byID[overrideID]; ok {
			overrides[idx].Open = append(overrides[idx].Open, r)
		}
	}
	return overrides, rangeRows.Err()
}

func (s *SQLiteStore) loadLabels(ctx context.Context, labels *domain.Labels) error {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM hours_label")
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}
		switch key {
		case labelOpenBadge:
			labels.OpenBadge = value
		case labelClosedBadge:
			labels.ClosedBadge = value
		case labelTodayOpen:
			labels.TodayOpen = value
		case labelClosedUntil:
			labels.ClosedUntil = value
		case labelClosedOpens:
			labels.ClosedOpens = value
		case labelToday:
			labels.Today = value
		case labelTomorrow:
			labels.Tomorrow = value
		case labelDayPrefix:
			labels.DayPrefix = value
		default:
			var day int
			if _, err := fmt.Sscanf(key, "day_%d", &day); err == nil && day >= 0 && day <= 6 {
				labels.Days[day] = value
			}
		}
	}
	return rows.Err()
}

// ReplaceAll swaps the entire hours configuration in one transaction. The
// admin editor posts the whole configuration at once; last write wins.
// PRE: week, exceptions and overrides have been validated
// POST: The stored configuration equals cfg
func (s *SQLiteStore) ReplaceAll(ctx context.Context, cfg Config) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin hours replace: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"week_hours", "hours_exception", "hours_override_range", "hours_override", "hours_label"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	for day := time.Sunday; day <= time.Saturday; day++ {
		for pos, r := range cfg.Week[day] {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO week_hours (id, weekday, start_time, end_time, position) VALUES (?, ?, ?, ?, ?)",
				uuid.New().String(), int(day), r.Start, r.End, pos,
			); err != nil {
				return err
			}
		}
	}

	for _, e := range cfg.Exceptions {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO hours_exception (id, name, start_date, end_date) VALUES (?, ?, ?, ?)",
			e.ID, e.Name, e.StartDate.String(), e.EndDate.String(),
		); err != nil {
			return err
		}
	}

	for _, o := range cfg.Overrides {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO hours_override (id, date) VALUES (?, ?)", o.ID, o.Date.String(),
		); err != nil {
			return err
		}
		for pos, r := range o.Open {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO hours_override_range (id, override_id, start_time, end_time, position) VALUES (?, ?, ?, ?, ?)",
				uuid.New().String(), o.ID, r.Start, r.End, pos,
			); err != nil {
				return err
			}
		}
	}

	labelValues := map[string]string{
		labelOpenBadge:   cfg.Labels.OpenBadge,
		labelClosedBadge: cfg.Labels.ClosedBadge,
		labelTodayOpen:   cfg.Labels.TodayOpen,
		labelClosedUntil: cfg.Labels.ClosedUntil,
		labelClosedOpens: cfg.Labels.ClosedOpens,
		labelToday:       cfg.Labels.Today,
		labelTomorrow:    cfg.Labels.Tomorrow,
		labelDayPrefix:   cfg.Labels.DayPrefix,
	}
	for i, name := range cfg.Labels.Days {
		labelValues[fmt.Sprintf("day_%d", i)] = name
	}
	for key, value := range labelValues {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO hours_label (key, value) VALUES (?, ?)", key, value,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
