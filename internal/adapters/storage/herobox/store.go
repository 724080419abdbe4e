package herobox

import (
	"context"

	domain "feldiserhof/internal/domain/herobox"
)

// Store persists the single hero box row.
type Store interface {
	Get(ctx context.Context) (domain.HeroBox, error)
	Save(ctx context.Context, box domain.HeroBox) error
}
