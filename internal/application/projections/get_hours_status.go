package projections

import (
	"context"
	"fmt"
	"strings"
	"time"

	hoursstore "feldiserhof/internal/adapters/storage/hours"
	"feldiserhof/internal/domain/hours"
)

// NextOpenHorizonDays bounds the forward search for the next opening.
const NextOpenHorizonDays = 30

// ClosingSoonMinutes is the threshold under which the open message switches
// to a countdown.
const ClosingSoonMinutes = 15

// HoursStoreForStatus defines the store interface needed by this projection.
type HoursStoreForStatus interface {
	Load(ctx context.Context) (hoursstore.Config, error)
}

// GetHoursStatusDeps holds dependencies for the projection.
type GetHoursStatusDeps struct {
	HoursStore HoursStoreForStatus
	Location   *time.Location
}

// DayListing is one row of the weekly hours table on the public site.
type DayListing struct {
	Name   string   `json:"name"`
	Ranges []string `json:"ranges"` // "11:30 – 14:00"
	Closed bool     `json:"closed"`
	Today  bool     `json:"today"`
}

// HoursStatusResult is the opening status rendered in the site header and
// the hours section.
type HoursStatusResult struct {
	Open    bool         `json:"open"`
	Badge   string       `json:"badge"`
	Message string       `json:"message"`
	Week    []DayListing `json:"week"` // Monday first
}

// QueryHoursStatus resolves the live open/closed status plus the weekly
// listing. Message precedence when closed: an announced closure beats the
// next-opening hint, which beats the plain closed badge.
func QueryHoursStatus(ctx context.Context, now time.Time, deps GetHoursStatusDeps) (HoursStatusResult, error) {
	cfg, err := deps.HoursStore.Load(ctx)
	if err != nil {
		return HoursStatusResult{}, err
	}

	loc := time.Local
	if deps.Location != nil {
		loc = deps.Location
	}
	civil := hours.CivilTimeIn(now, loc)
	resolver := hours.Resolver{Week: cfg.Week, Exceptions: cfg.Exceptions, Overrides: cfg.Overrides}
	labels := cfg.Labels

	result := HoursStatusResult{Week: weekListing(&resolver, labels, civil)}

	if state := resolver.IsOpenNow(civil); state.Open {
		result.Open = true
		result.Badge = labels.OpenBadge
		remaining := state.ClosesAt - civil.Minutes
		if remaining <= ClosingSoonMinutes {
			result.Message = fmt.Sprintf("Schließt in %d Min", remaining)
		} else {
			result.Message = strings.ReplaceAll(labels.TodayOpen, "{time}", hours.FormatClock(state.ClosesAt))
		}
		return result, nil
	}

	result.Badge = labels.ClosedBadge
	if end, ok := resolver.ClosureEnd(civil); ok {
		result.Message = strings.ReplaceAll(labels.ClosedUntil, "{date}", germanDate(end))
		return result, nil
	}
	if next := resolver.FindNextOpen(civil, NextOpenHorizonDays); next != nil {
		msg := strings.ReplaceAll(labels.ClosedOpens, "{dayText}", labels.DayText(*next, civil.Weekday))
		msg = strings.ReplaceAll(msg, "{time}", hours.FormatClock(next.StartMinute))
		result.Message = msg
		return result, nil
	}
	result.Message = labels.ClosedBadge
	return result, nil
}

// weekListing renders the regular week Monday first. Exceptions and
// overrides are deliberately ignored here; the table shows the regular
// schedule while the badge reflects today.
func weekListing(r *hours.Resolver, labels hours.Labels, now hours.CivilTime) []DayListing {
	listing := make([]DayListing, 0, 7)
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(time.Monday) + i) % 7)
		entry := DayListing{
			Name:  labels.Days[day],
			Today: day == now.Weekday,
		}
		for _, rng := range r.Week[day] {
			entry.Ranges = append(entry.Ranges, rng.Start+" – "+rng.End)
		}
		entry.Closed = len(entry.Ranges) == 0
		listing = append(listing, entry)
	}
	return listing
}

func germanDate(d hours.Date) string {
	return fmt.Sprintf("%02d.%02d.%d", d.Day, int(d.Month), d.Year)
}
