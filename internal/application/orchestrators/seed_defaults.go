package orchestrators

import (
	"context"
	"log/slog"
	"time"

	hoursstore "feldiserhof/internal/adapters/storage/hours"
	"feldiserhof/internal/domain/featureflag"
	"feldiserhof/internal/domain/herobox"
	"feldiserhof/internal/domain/hours"
)

// FlagStoreForSeed defines the store interface needed by SeedDefaults.
type FlagStoreForSeed interface {
	List(ctx context.Context) ([]featureflag.FeatureFlag, error)
	Save(ctx context.Context, f featureflag.FeatureFlag) error
}

// HeroBoxStoreForSeed defines the store interface needed by SeedDefaults.
type HeroBoxStoreForSeed interface {
	Save(ctx context.Context, box herobox.HeroBox) error
}

// HoursStoreForSeed defines the store interface needed by SeedDefaults.
type HoursStoreForSeed interface {
	ReplaceAll(ctx context.Context, cfg hoursstore.Config) error
}

// SeedDefaultsDeps holds dependencies for SeedDefaults.
type SeedDefaultsDeps struct {
	FlagStore    FlagStoreForSeed
	HeroBoxStore HeroBoxStoreForSeed
	HoursStore   HoursStoreForSeed
}

// ExecuteSeedDefaults fills an empty database with the shipped defaults:
// feature flags, the hero box and a starter week of opening hours. An empty
// feature_flag table marks a first start; on any later start nothing is
// touched, so admin edits survive restarts.
// POST: Flags, hero box and week hours exist
func ExecuteSeedDefaults(ctx context.Context, deps SeedDefaultsDeps) error {
	flags, err := deps.FlagStore.List(ctx)
	if err != nil {
		return err
	}
	if len(flags) > 0 {
		return nil
	}

	for _, f := range featureflag.Defaults() {
		if err := deps.FlagStore.Save(ctx, f); err != nil {
			return err
		}
	}

	cfg := hoursstore.Config{Week: defaultWeek(), Labels: hours.DefaultLabels()}
	if err := deps.HoursStore.ReplaceAll(ctx, cfg); err != nil {
		return err
	}

	box := herobox.Default()
	box.UpdatedAt = time.Now().UTC()
	if err := deps.HeroBoxStore.Save(ctx, box); err != nil {
		return err
	}

	slog.Info("seed_event", "event", "defaults_seeded", "flags", len(featureflag.Defaults()))
	return nil
}

// defaultWeek is the restaurant's regular service before any admin edits:
// lunch and dinner Tuesday through Sunday, closed Monday.
func defaultWeek() hours.Week {
	lunch := hours.Range{Start: "11:30", End: "14:00"}
	dinner := hours.Range{Start: "17:30", End: "22:00"}
	week := hours.Week{}
	for _, day := range []time.Weekday{
		time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	} {
		week[day] = []hours.Range{lunch, dinner}
	}
	return week
}
