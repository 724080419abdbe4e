package featureflag

import (
	"context"

	domain "feldiserhof/internal/domain/featureflag"
)

// Store persists FeatureFlag state.
type Store interface {
	Get(ctx context.Context, key string) (domain.FeatureFlag, error)
	List(ctx context.Context) ([]domain.FeatureFlag, error)
	Save(ctx context.Context, value domain.FeatureFlag) error
	IsEnabled(ctx context.Context, key string) bool
}
