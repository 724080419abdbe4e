package reservation

import (
	"errors"
	"strings"
	"time"
)

// Guest count bounds enforced by the form.
const (
	MinGuests = 1
	MaxGuests = 12
)

// Status constants for forwarded reservations.
const (
	StatusForwarded = "forwarded"
	StatusFailed    = "failed"
)

// Domain errors
var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrEmptyEmail   = errors.New("email cannot be empty")
	ErrInvalidEmail = errors.New("email must contain '@'")
	ErrEmptyDate    = errors.New("date cannot be empty")
	ErrPastDate     = errors.New("date cannot be in the past")
	ErrEmptyTime    = errors.New("time cannot be empty")
	ErrGuestsRange  = errors.New("guests must be between 1 and 12")
)

// Reservation is a table reservation request from the public form. It is
// forwarded to the external form service and logged locally for the admin;
// there is no availability check or booking engine behind it.
type Reservation struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	Guests    int
	Message   string
	Status    string
	CreatedAt time.Time
}

// Validate checks if the Reservation has valid data. today is the current
// civil date as YYYY-MM-DD in the site's timezone.
// PRE: Reservation struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Reservation) Validate(today string) error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(r.Email) == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(r.Email, "@") {
		return ErrInvalidEmail
	}
	if r.Date == "" {
		return ErrEmptyDate
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	if r.Date < today {
		return ErrPastDate
	}
	if r.Time == "" {
		return ErrEmptyTime
	}
	if _, err := time.Parse("15:04", r.Time); err != nil {
		return errors.New("time must be HH:MM")
	}
	if r.Guests < MinGuests || r.Guests > MaxGuests {
		return ErrGuestsRange
	}
	return nil
}

// ClampGuests forces a guest count into the allowed range, defaulting to 2
// when unset, matching the form widget's behavior.
func ClampGuests(n int) int {
	if n == 0 {
		return 2
	}
	if n < MinGuests {
		return MinGuests
	}
	if n > MaxGuests {
		return MaxGuests
	}
	return n
}
