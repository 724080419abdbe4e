package herobox

import (
	"errors"
	"strings"
	"time"
)

// Style, theme and alignment constants for the hero box card.
const (
	StyleGlass    = "glass"
	StyleSimple   = "simple"
	StyleBordered = "bordered"

	ThemeGold  = "gold"
	ThemeGreen = "green"
	ThemeBlue  = "blue"

	AlignCenter = "center"
	AlignLeft   = "left"

	AudienceAll      = "all"
	AudienceGuests   = "guests"
	AudienceLocals   = "locals"
	AudienceFamilies = "families"
)

var validStyles = []string{StyleGlass, StyleSimple, StyleBordered}
var validThemes = []string{ThemeGold, ThemeGreen, ThemeBlue}
var validAligns = []string{AlignCenter, AlignLeft}

// Domain errors
var (
	ErrEmptyTitle       = errors.New("hero box title cannot be empty")
	ErrEmptyDescription = errors.New("hero box description cannot be empty")
	ErrInvalidStyle     = errors.New("style must be one of: glass, simple, bordered")
	ErrInvalidTheme     = errors.New("theme must be one of: gold, green, blue")
	ErrInvalidAlign     = errors.New("align must be one of: center, left")
	ErrInvalidPriority  = errors.New("priority must be at least 1")
	ErrInvalidDates     = errors.New("start date must be before or equal to end date")
)

// HeroBox is the promotional banner card on the home page hero. A single
// row edited through the admin dashboard; last write wins.
type HeroBox struct {
	Enabled        bool
	Icon           string
	Title          string
	Description    string // markdown, rendered server-side
	HighlightText  string
	BottomLabel    string
	ButtonText     string
	ButtonLink     string
	StartDate      time.Time // zero means no lower bound
	EndDate        time.Time // zero means no upper bound
	Priority       int
	TargetAudience string
	Style          string
	Theme          string
	Align          string
	IsActive       bool
	UpdatedAt      time.Time
}

// Default returns the hero box the site ships with before any admin edits.
func Default() HeroBox {
	return HeroBox{
		Icon:           "🏔️",
		Title:          "Aktuelles Angebot",
		Description:    "Genießen Sie unseren speziellen Bergblick mit 3-Gänge-Menü",
		ButtonText:     "Mehr erfahren",
		ButtonLink:     "#reservation",
		Priority:       1,
		TargetAudience: AudienceAll,
		Style:          StyleGlass,
		Theme:          ThemeGold,
		Align:          AlignCenter,
		IsActive:       true,
	}
}

// Validate checks if the HeroBox has valid data.
// PRE: HeroBox struct is populated
// POST: Returns nil if valid, error otherwise
func (h *HeroBox) Validate() error {
	if strings.TrimSpace(h.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(h.Description) == "" {
		return ErrEmptyDescription
	}
	if !contains(validStyles, h.Style) {
		return ErrInvalidStyle
	}
	if !contains(validThemes, h.Theme) {
		return ErrInvalidTheme
	}
	if !contains(validAligns, h.Align) {
		return ErrInvalidAlign
	}
	if h.Priority < 1 {
		return ErrInvalidPriority
	}
	if !h.StartDate.IsZero() && !h.EndDate.IsZero() && h.StartDate.After(h.EndDate) {
		return ErrInvalidDates
	}
	return nil
}

// VisibleAt reports whether the box should render at the given time: it must
// be enabled, active, and inside its date window when one is set.
// INVARIANT: HeroBox fields are not mutated
func (h HeroBox) VisibleAt(now time.Time) bool {
	if !h.Enabled || !h.IsActive {
		return false
	}
	if !h.StartDate.IsZero() && now.Before(h.StartDate) {
		return false
	}
	if !h.EndDate.IsZero() && now.After(h.EndDate.Add(24*time.Hour-time.Nanosecond)) {
		return false
	}
	return true
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
