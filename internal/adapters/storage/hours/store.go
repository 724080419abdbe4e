package hours

import (
	"context"

	domain "feldiserhof/internal/domain/hours"
)

// Config is the full opening-hours configuration as stored.
type Config struct {
	Week       domain.Week
	Exceptions []domain.Exception
	Overrides  []domain.Override
	Labels     domain.Labels
}

// Store persists the opening-hours configuration.
type Store interface {
	Load(ctx context.Context) (Config, error)
	ReplaceAll(ctx context.Context, cfg Config) error
}
