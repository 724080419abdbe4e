package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"feldiserhof/internal/domain/herobox"
)

// HeroBoxStoreForSave defines the store interface needed by SaveHeroBox.
type HeroBoxStoreForSave interface {
	Save(ctx context.Context, box herobox.HeroBox) error
}

// SaveHeroBoxInput carries the hero box as posted by the admin editor.
type SaveHeroBoxInput struct {
	Box herobox.HeroBox
}

// SaveHeroBoxDeps holds dependencies for SaveHeroBox.
type SaveHeroBoxDeps struct {
	HeroBoxStore HeroBoxStoreForSave
}

// ExecuteSaveHeroBox validates and persists the hero box.
// PRE: input comes from an authenticated admin
// POST: The stored box equals the posted box with a fresh UpdatedAt
func ExecuteSaveHeroBox(ctx context.Context, input SaveHeroBoxInput, deps SaveHeroBoxDeps) error {
	box := input.Box
	if err := box.Validate(); err != nil {
		return err
	}
	box.UpdatedAt = time.Now().UTC()

	if err := deps.HeroBoxStore.Save(ctx, box); err != nil {
		return err
	}

	slog.Info("admin_event", "event", "hero_box_saved", "enabled", box.Enabled, "title", box.Title)
	return nil
}
