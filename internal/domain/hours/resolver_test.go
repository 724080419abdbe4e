package hours_test

import (
	"testing"
	"time"

	"feldiserhof/internal/domain/hours"
)

func date(y int, m time.Month, d int) hours.Date {
	return hours.Date{Year: y, Month: m, Day: d}
}

// TestNormalize tests conversion of raw ranges to sorted minute intervals.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		ranges []hours.Range
		want   []hours.Interval
	}{
		{
			name:   "simple range",
			ranges: []hours.Range{{Start: "09:00", End: "21:00"}},
			want:   []hours.Interval{{Start: 540, End: 1260}},
		},
		{
			name: "unsorted input is sorted",
			ranges: []hours.Range{
				{Start: "18:00", End: "23:00"},
				{Start: "09:00", End: "14:00"},
			},
			want: []hours.Interval{{Start: 540, End: 840}, {Start: 1080, End: 1380}},
		},
		{
			name:   "overnight keeps same-day portion only",
			ranges: []hours.Range{{Start: "22:00", End: "02:00"}},
			want:   []hours.Interval{{Start: 1320, End: 1440}},
		},
		{
			name:   "zero length is discarded",
			ranges: []hours.Range{{Start: "09:00", End: "09:00"}},
			want:   nil,
		},
		{
			name:   "empty input",
			ranges: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hours.Normalize(tt.ranges)
			if len(got) != len(tt.want) {
				t.Fatalf("Normalize() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Normalize()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestResolver_RawRanges_Priority verifies override > exception > weekly
// schedule selection.
func TestResolver_RawRanges_Priority(t *testing.T) {
	// 2025-12-25 is a Thursday.
	day := date(2025, time.December, 25)
	r := &hours.Resolver{
		Week: hours.Week{
			time.Thursday: {{Start: "09:00", End: "21:00"}},
		},
		Exceptions: []hours.Exception{
			{StartDate: date(2025, time.December, 24), EndDate: date(2025, time.December, 26)},
		},
		Overrides: []hours.Override{
			{Date: day, Open: []hours.Range{{Start: "11:00", End: "15:00"}}},
		},
	}

	// Override wins over the covering exception.
	got := r.RawRanges(day)
	if len(got) != 1 || got[0] != (hours.Range{Start: "11:00", End: "15:00"}) {
		t.Errorf("RawRanges(override day) = %v, want the override ranges", got)
	}

	// Exception day without override yields nothing.
	if got := r.RawRanges(date(2025, time.December, 24)); len(got) != 0 {
		t.Errorf("RawRanges(exception day) = %v, want empty", got)
	}

	// Plain Thursday outside the exception uses the weekly schedule.
	if got := r.RawRanges(date(2025, time.December, 18)); len(got) != 1 || got[0].Start != "09:00" {
		t.Errorf("RawRanges(regular day) = %v, want weekly schedule", got)
	}
}

// TestResolver_EffectiveWindows_Spillover verifies overnight spillover from
// the previous day merges with the day's own windows, sorted ascending.
func TestResolver_EffectiveWindows_Spillover(t *testing.T) {
	r := &hours.Resolver{
		Week: hours.Week{
			time.Friday:   {{Start: "22:00", End: "02:00"}},
			time.Saturday: {{Start: "09:00", End: "21:00"}},
		},
	}

	// 2025-06-14 is a Saturday; Friday's 22:00–02:00 spills into it.
	got := r.EffectiveWindows(date(2025, time.June, 14))
	want := []hours.Interval{{Start: 0, End: 120}, {Start: 540, End: 1260}}
	if len(got) != len(want) {
		t.Fatalf("EffectiveWindows() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("EffectiveWindows()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// Friday itself keeps only the pre-midnight portion.
	got = r.EffectiveWindows(date(2025, time.June, 13))
	if len(got) != 1 || got[0] != (hours.Interval{Start: 1320, End: 1440}) {
		t.Errorf("EffectiveWindows(Friday) = %v, want [{1320 1440}]", got)
	}
}

// TestResolver_EffectiveWindows_NoSpilloverAtMidnightClose verifies that a
// range closing exactly at 24:00 produces no next-day spillover.
func TestResolver_EffectiveWindows_NoSpilloverAtMidnightClose(t *testing.T) {
	r := &hours.Resolver{
		Week: hours.Week{
			time.Friday: {{Start: "18:00", End: "24:00"}},
		},
	}
	if got := r.EffectiveWindows(date(2025, time.June, 14)); len(got) != 0 {
		t.Errorf("EffectiveWindows(Saturday) = %v, want empty", got)
	}
}

// TestResolver_IsOpenNow_Boundaries tests half-open window boundaries for a
// 09:00–21:00 day.
func TestResolver_IsOpenNow_Boundaries(t *testing.T) {
	r := &hours.Resolver{
		Week: hours.Week{
			time.Saturday: {{Start: "09:00", End: "21:00"}},
		},
	}
	day := date(2025, time.June, 14) // Saturday

	tests := []struct {
		minutes      int
		wantOpen     bool
		wantClosesAt int
	}{
		{539, false, 0},
		{540, true, 1260},
		{1259, true, 1260},
		{1260, false, 0},
	}

	for _, tt := range tests {
		now := hours.CivilTime{Date: day, Weekday: time.Saturday, Minutes: tt.minutes}
		got := r.IsOpenNow(now)
		if got.Open != tt.wantOpen {
			t.Errorf("IsOpenNow(minute %d).Open = %v, want %v", tt.minutes, got.Open, tt.wantOpen)
		}
		if got.Open && got.ClosesAt != tt.wantClosesAt {
			t.Errorf("IsOpenNow(minute %d).ClosesAt = %d, want %d", tt.minutes, got.ClosesAt, tt.wantClosesAt)
		}
	}
}

// TestResolver_ClosureEnd tests the closure message scenario: weekly
// schedule open Fri–Sun, exception over Christmas.
func TestResolver_ClosureEnd(t *testing.T) {
	r := &hours.Resolver{
		Week: hours.Week{
			time.Friday:   {{Start: "09:00", End: "21:00"}},
			time.Saturday: {{Start: "09:00", End: "21:00"}},
			time.Sunday:   {{Start: "09:00", End: "21:00"}},
		},
		Exceptions: []hours.Exception{
			{StartDate: date(2025, time.December, 24), EndDate: date(2025, time.December, 26)},
		},
	}

	// 2025-12-24 is a Wednesday.
	now := hours.CivilTime{Date: date(2025, time.December, 24), Weekday: time.Wednesday, Minutes: 600}

	if state := r.IsOpenNow(now); state.Open {
		t.Error("IsOpenNow during exception: got open, want closed")
	}

	end, ok := r.ClosureEnd(now)
	if !ok {
		t.Fatal("ClosureEnd: expected a closure, got none")
	}
	if end != date(2025, time.December, 26) {
		t.Errorf("ClosureEnd = %s, want 2025-12-26", end)
	}

	// Outside the exception there is no closure.
	if _, ok := r.ClosureEnd(hours.CivilTime{Date: date(2025, time.December, 27)}); ok {
		t.Error("ClosureEnd outside exception: expected none")
	}
}

// TestResolver_FindNextOpen tests the forward scan including the same-day
// strictness rule.
func TestResolver_FindNextOpen(t *testing.T) {
	r := &hours.Resolver{
		Week: hours.Week{
			time.Friday:   {{Start: "09:00", End: "21:00"}},
			time.Saturday: {{Start: "09:00", End: "21:00"}},
		},
	}

	// 2025-06-13 is a Friday.
	friday := date(2025, time.June, 13)

	// Before opening on an open day: next open is today.
	now := hours.CivilTime{Date: friday, Weekday: time.Friday, Minutes: 480}
	next := r.FindNextOpen(now, 30)
	if next == nil {
		t.Fatal("FindNextOpen: expected a result")
	}
	if next.DaysAhead != 0 || next.StartMinute != 540 {
		t.Errorf("FindNextOpen = %+v, want today at 540", next)
	}

	// While the window is already open, today's window no longer counts.
	now.Minutes = 600
	next = r.FindNextOpen(now, 30)
	if next == nil {
		t.Fatal("FindNextOpen: expected a result")
	}
	if next.DaysAhead != 1 {
		t.Errorf("FindNextOpen while open: DaysAhead = %d, want 1 (tomorrow)", next.DaysAhead)
	}
	if next.Date != friday.AddDays(1) {
		t.Errorf("FindNextOpen while open: Date = %s, want %s", next.Date, friday.AddDays(1))
	}

	// Monotonicity: the result never precedes now.
	if next.Date.Before(now.Date) {
		t.Error("FindNextOpen returned a date before now")
	}
}

// TestResolver_FindNextOpen_Exhausted verifies an empty schedule yields no
// result within the horizon.
func TestResolver_FindNextOpen_Exhausted(t *testing.T) {
	r := &hours.Resolver{Week: hours.Week{}}
	now := hours.CivilTime{Date: date(2025, time.June, 13), Weekday: time.Friday, Minutes: 0}
	if next := r.FindNextOpen(now, 30); next != nil {
		t.Errorf("FindNextOpen on empty schedule = %+v, want nil", next)
	}
}

// TestLabels_DayText tests the day-offset classification wording.
func TestLabels_DayText(t *testing.T) {
	labels := hours.DefaultLabels()

	tests := []struct {
		name      string
		daysAhead int
		weekday   time.Weekday
		want      string
	}{
		{name: "today", daysAhead: 0, weekday: time.Friday, want: "heute"},
		{name: "tomorrow", daysAhead: 1, weekday: time.Friday, want: "morgen"},
		{name: "two days out", daysAhead: 2, weekday: time.Friday, want: "am Sonntag"},
		{name: "wraps week", daysAhead: 6, weekday: time.Wednesday, want: "am Dienstag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := labels.DayText(hours.NextOpen{DaysAhead: tt.daysAhead}, tt.weekday)
			if got != tt.want {
				t.Errorf("DayText(%d days from %s) = %q, want %q", tt.daysAhead, tt.weekday, got, tt.want)
			}
		})
	}
}

// TestCivilTimeIn tests wall-clock extraction in a fixed zone.
func TestCivilTimeIn(t *testing.T) {
	zurich := time.FixedZone("CET", 3600)
	// 2025-06-13 23:30 UTC is 2025-06-14 00:30 in CET.
	utc := time.Date(2025, time.June, 13, 23, 30, 0, 0, time.UTC)
	got := hours.CivilTimeIn(utc, zurich)

	if got.Date != date(2025, time.June, 14) {
		t.Errorf("CivilTimeIn Date = %s, want 2025-06-14", got.Date)
	}
	if got.Weekday != time.Saturday {
		t.Errorf("CivilTimeIn Weekday = %s, want Saturday", got.Weekday)
	}
	if got.Minutes != 30 {
		t.Errorf("CivilTimeIn Minutes = %d, want 30", got.Minutes)
	}
}
