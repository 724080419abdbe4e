package reservation

import (
	"context"

	domain "feldiserhof/internal/domain/reservation"
)

// Store persists reservation requests for the admin log.
type Store interface {
	Save(ctx context.Context, entity domain.Reservation) error
	List(ctx context.Context) ([]domain.Reservation, error)
}
