package hours

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MinutesPerDay is the length of a civil day. DST shifts are ignored; every
// day is treated as exactly 1440 minutes in the configured timezone.
const MinutesPerDay = 24 * 60

// Domain errors
var (
	ErrBadClock       = errors.New("clock value must be HH:MM between 00:00 and 24:00")
	ErrZeroLength     = errors.New("range start and end cannot be equal")
	ErrEmptyDate      = errors.New("date cannot be zero")
	ErrInvalidDates   = errors.New("start date must be before or equal to end date")
	ErrInvalidWeekday = errors.New("weekday must be between Sunday and Saturday")
)

// Date is a civil calendar date, independent of timezone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf extracts the civil date from t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON renders the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDate parses a YYYY-MM-DD string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// AddDays returns the date n calendar days after d (n may be negative).
// INVARIANT: d is not mutated
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return DateOf(t)
}

// Weekday returns the day of week for this date.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Range is a raw opening range in HH:MM wall-clock form, as stored and
// edited. Start after End means the range spans midnight.
type Range struct {
	Start string
	End   string
}

// Validate checks that both ends parse and the range is not zero-length.
// A 00:00–00:00 range is rejected here rather than silently treated as
// closed at query time.
// PRE: Range struct is populated
// POST: Returns nil if valid, error otherwise
func (r Range) Validate() error {
	s, err := ParseClock(r.Start)
	if err != nil {
		return err
	}
	e, err := ParseClock(r.End)
	if err != nil {
		return err
	}
	if s == e {
		return ErrZeroLength
	}
	return nil
}

// ParseClock converts an HH:MM string to minutes since midnight.
// "24:00" is accepted as 1440 so a range may close exactly at midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	if m < 0 || m > 59 || h < 0 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes since midnight back to HH:MM.
// Minute 1440 renders as 00:00, matching the public display convention.
func FormatClock(min int) string {
	if min >= MinutesPerDay {
		min -= MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// Week maps each weekday to its regular opening ranges.
// Ranges need not be pre-sorted; the resolver sorts during normalization.
type Week map[time.Weekday][]Range

// Validate checks every range of every weekday.
// POST: Returns the first invalid range's error, nil if all valid
func (w Week) Validate() error {
	for day, ranges := range w {
		if day < time.Sunday || day > time.Saturday {
			return ErrInvalidWeekday
		}
		for _, r := range ranges {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("%s: %w", day, err)
			}
		}
	}
	return nil
}

// Exception is a closed date range during which the business does not open
// at all, regardless of the weekly schedule. A matching Override wins over
// an Exception.
type Exception struct {
	ID        string
	Name      string
	StartDate Date
	EndDate   Date
}

// Validate checks if the Exception has valid data.
// PRE: Exception struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Exception) Validate() error {
	if e.StartDate.IsZero() {
		return ErrEmptyDate
	}
	if e.EndDate.IsZero() {
		return ErrEmptyDate
	}
	if e.EndDate.Before(e.StartDate) {
		return ErrInvalidDates
	}
	return nil
}

// Contains returns true if the given date falls within this exception,
// inclusive on both ends.
// INVARIANT: Exception fields are not mutated
func (e *Exception) Contains(d Date) bool {
	return !d.Before(e.StartDate) && !e.EndDate.Before(d)
}

// Override replaces the schedule for a single date with an explicit range
// list. An empty Open list means the business is closed that day; this is
// not reported as a closure, just as a day without open windows.
type Override struct {
	ID   string
	Date Date
	Open []Range
}

// Validate checks if the Override has valid data.
// PRE: Override struct is populated
// POST: Returns nil if valid, error otherwise
func (o *Override) Validate() error {
	if o.Date.IsZero() {
		return ErrEmptyDate
	}
	for _, r := range o.Open {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Labels holds the display strings rendered around resolver results.
// Message templates use {time}, {date} and {dayText} placeholders.
type Labels struct {
	Days        [7]string // indexed by time.Weekday (Sunday = 0)
	OpenBadge   string
	ClosedBadge string
	TodayOpen   string // e.g. "Heute geöffnet – bis {time} Uhr"
	ClosedUntil string // e.g. "Geschlossen – bis einschließlich {date}"
	ClosedOpens string // e.g. "Geschlossen – öffnet {dayText} um {time} Uhr"
	Today       string
	Tomorrow    string
	DayPrefix   string // prepended to a weekday name, e.g. "am"
}

// DefaultLabels returns the German labels the site ships with.
func DefaultLabels() Labels {
	return Labels{
		Days:        [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		OpenBadge:   "GEÖFFNET",
		ClosedBadge: "GESCHLOSSEN",
		TodayOpen:   "Heute geöffnet – bis {time} Uhr",
		ClosedUntil: "Geschlossen – bis einschließlich {date}",
		ClosedOpens: "Geschlossen – öffnet {dayText} um {time} Uhr",
		Today:       "heute",
		Tomorrow:    "morgen",
		DayPrefix:   "am",
	}
}
