package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"feldiserhof/internal/domain/menu"
)

// MenuStoreForSave defines the store interface needed by SaveMenu.
type MenuStoreForSave interface {
	ReplaceAll(ctx context.Context, categories []menu.Category) error
}

// SaveMenuInput carries the full menu as posted by the admin editor.
type SaveMenuInput struct {
	Categories []menu.Category
}

// SaveMenuDeps holds dependencies for SaveMenu.
type SaveMenuDeps struct {
	MenuStore MenuStoreForSave
}

// ExecuteSaveMenu validates and persists the complete menu. The editor posts
// the whole menu; positions follow slice order and missing IDs are minted.
// PRE: input comes from an authenticated admin
// POST: The stored menu equals the posted menu, last write wins
func ExecuteSaveMenu(ctx context.Context, input SaveMenuInput, deps SaveMenuDeps) error {
	for ci := range input.Categories {
		c := &input.Categories[ci]
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		c.Position = ci
		for ii := range c.Items {
			if c.Items[ii].ID == "" {
				c.Items[ii].ID = uuid.New().String()
			}
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("category %q: %w", c.Name, err)
		}
	}

	if err := deps.MenuStore.ReplaceAll(ctx, input.Categories); err != nil {
		return err
	}

	slog.Info("admin_event", "event", "menu_saved", "categories", len(input.Categories))
	return nil
}
