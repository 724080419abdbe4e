package menu

import (
	"context"

	domain "feldiserhof/internal/domain/menu"
)

// Store persists the menu: ordered categories with ordered items.
type Store interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ReplaceAll(ctx context.Context, categories []domain.Category) error
}
