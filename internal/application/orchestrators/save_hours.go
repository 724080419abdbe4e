package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	hoursstore "feldiserhof/internal/adapters/storage/hours"
)

// HoursStoreForSave defines the store interface needed by SaveHours.
type HoursStoreForSave interface {
	ReplaceAll(ctx context.Context, cfg hoursstore.Config) error
}

// SaveHoursInput carries the full opening-hours configuration as posted by
// the admin editor.
type SaveHoursInput struct {
	Config hoursstore.Config
}

// SaveHoursDeps holds dependencies for SaveHours.
type SaveHoursDeps struct {
	HoursStore HoursStoreForSave
}

// ExecuteSaveHours validates and persists the opening-hours configuration.
// The editor posts the whole configuration; missing IDs are minted.
// PRE: input comes from an authenticated admin
// POST: The stored configuration equals the posted one, last write wins
func ExecuteSaveHours(ctx context.Context, input SaveHoursInput, deps SaveHoursDeps) error {
	cfg := input.Config

	if err := cfg.Week.Validate(); err != nil {
		return fmt.Errorf("week hours: %w", err)
	}
	for i := range cfg.Exceptions {
		if cfg.Exceptions[i].ID == "" {
			cfg.Exceptions[i].ID = uuid.New().String()
		}
		if err := cfg.Exceptions[i].Validate(); err != nil {
			return fmt.Errorf("exception %q: %w", cfg.Exceptions[i].Name, err)
		}
	}
	for i := range cfg.Overrides {
		if cfg.Overrides[i].ID == "" {
			cfg.Overrides[i].ID = uuid.New().String()
		}
		if err := cfg.Overrides[i].Validate(); err != nil {
			return fmt.Errorf("override for %s: %w", cfg.Overrides[i].Date, err)
		}
	}

	if err := deps.HoursStore.ReplaceAll(ctx, cfg); err != nil {
		return err
	}

	slog.Info("admin_event", "event", "hours_saved",
		"exceptions", len(cfg.Exceptions), "overrides", len(cfg.Overrides))
	return nil
}
