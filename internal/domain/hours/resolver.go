package hours

import (
	"sort"
	"time"
)

// Interval is a normalized open window within one day, half-open on
// [Start, End) in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// CivilTime is a wall-clock instant in the configured timezone: the civil
// date plus minutes since midnight. Comparisons in this package never touch
// UTC instants.
type CivilTime struct {
	Date    Date
	Weekday time.Weekday
	Minutes int
}

// CivilTimeIn converts t to a CivilTime in the given location.
// PRE: loc is non-nil
// POST: Weekday and Minutes are derived from t's wall clock in loc
func CivilTimeIn(t time.Time, loc *time.Location) CivilTime {
	local := t.In(loc)
	return CivilTime{
		Date:    DateOf(local),
		Weekday: local.Weekday(),
		Minutes: local.Hour()*60 + local.Minute(),
	}
}

// OpenState is the answer to "is the business open right now".
type OpenState struct {
	Open     bool
	ClosesAt int // minutes since midnight, meaningful only when Open
}

// NextOpen describes the earliest upcoming opening within the search horizon.
type NextOpen struct {
	Date        Date
	StartMinute int
	DaysAhead   int // 0 = today, 1 = tomorrow
}

// Resolver answers open/closed questions from a weekly schedule plus
// exception and override lists. It is pure: the caller supplies "now" as a
// CivilTime, typically via CivilTimeIn.
type Resolver struct {
	Week       Week
	Exceptions []Exception
	Overrides  []Override
}

// RawRanges returns the unnormalized range list applying to date, selecting
// in priority order: a matching Override, then a covering Exception (empty
// list), then the weekly schedule for the date's weekday.
// INVARIANT: Resolver fields are not mutated
func (r *Resolver) RawRanges(date Date) []Range {
	for _, o := range r.Overrides {
		if o.Date == date {
			return o.Open
		}
	}
	for _, e := range r.Exceptions {
		if e.Contains(date) {
			return nil
		}
	}
	return r.Week[date.Weekday()]
}

// Normalize converts raw HH:MM ranges to minute intervals sorted by start.
// Overnight ranges (start > end) keep only their same-day portion up to
// 24:00; the after-midnight part is the next day's spillover and is handled
// by EffectiveWindows. Zero-length ranges are discarded.
// PRE: every range has passed Validate (well-formed HH:MM)
func Normalize(ranges []Range) []Interval {
	var out []Interval
	for _, rng := range ranges {
		s, err := ParseClock(rng.Start)
		if err != nil {
			continue
		}
		e, err := ParseClock(rng.End)
		if err != nil {
			continue
		}
		switch {
		case s < e:
			out = append(out, Interval{Start: s, End: e})
		case s > e:
			out = append(out, Interval{Start: s, End: MinutesPerDay})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// EffectiveWindows materializes the open intervals for a date: its own
// normalized ranges plus the spillover of any overnight range from the
// previous day. Overlapping windows are kept as-is, not merged; callers must
// tolerate overlap.
func (r *Resolver) EffectiveWindows(date Date) []Interval {
	windows := Normalize(r.RawRanges(date))

	for _, rng := range r.RawRanges(date.AddDays(-1)) {
		s, err := ParseClock(rng.Start)
		if err != nil {
			continue
		}
		e, err := ParseClock(rng.End)
		if err != nil {
			continue
		}
		if s > e && e > 0 {
			windows = append(windows, Interval{Start: 0, End: e})
		}
	}

	sort.Slice(windows, func(i, j int) bool { return windows[i].Start < windows[j].Start })
	return windows
}

// IsOpenNow reports whether now falls inside any effective window of its
// date, returning the closing minute of the first matching window.
func (r *Resolver) IsOpenNow(now CivilTime) OpenState {
	for _, w := range r.EffectiveWindows(now.Date) {
		if now.Minutes >= w.Start && now.Minutes < w.End {
			return OpenState{Open: true, ClosesAt: w.End}
		}
	}
	return OpenState{}
}

// ClosureEnd returns the end date of the exception covering now's date, if
// any. Overrides are deliberately not consulted: an override with no open
// ranges is an ordinary closed day, not an announced closure.
func (r *Resolver) ClosureEnd(now CivilTime) (Date, bool) {
	for _, e := range r.Exceptions {
		if e.Contains(now.Date) {
			return e.EndDate, true
		}
	}
	return Date{}, false
}

// FindNextOpen scans up to horizonDays forward for the earliest opening.
// For today only windows starting strictly after now count; windows already
// open or passed are excluded. Returns nil when nothing opens within the
// horizon, which callers render as a generic closed message.
func (r *Resolver) FindNextOpen(now CivilTime, horizonDays int) *NextOpen {
	for i := 0; i < horizonDays; i++ {
		date := now.Date.AddDays(i)
		for _, w := range r.EffectiveWindows(date) {
			if i == 0 && w.Start <= now.Minutes {
				continue
			}
			return &NextOpen{Date: date, StartMinute: w.Start, DaysAhead: i}
		}
	}
	return nil
}

// DayText renders the human day-offset classification for a NextOpen result:
// "today", "tomorrow", or the prefixed weekday name for anything later.
// INVARIANT: l is not mutated
func (l Labels) DayText(next NextOpen, nowWeekday time.Weekday) string {
	switch {
	case next.DaysAhead == 0:
		return l.Today
	case next.DaysAhead == 1:
		return l.Tomorrow
	default:
		name := l.Days[(int(nowWeekday)+next.DaysAhead)%7]
		if l.DayPrefix == "" {
			return name
		}
		return l.DayPrefix + " " + name
	}
}
