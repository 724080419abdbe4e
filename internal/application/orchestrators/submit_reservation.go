package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"feldiserhof/internal/adapters/email"
	"feldiserhof/internal/domain/reservation"
)

// ReservationStoreForSubmit defines the store interface needed by SubmitReservation.
type ReservationStoreForSubmit interface {
	Save(ctx context.Context, r reservation.Reservation) error
}

// ReservationForwarder forwards a reservation to the external form backend.
type ReservationForwarder interface {
	Forward(ctx context.Context, r reservation.Reservation) error
}

// SubmitReservationInput carries a reservation request from the public form.
type SubmitReservationInput struct {
	Name    string
	Email   string
	Phone   string
	Date    string // YYYY-MM-DD
	Time    string // HH:MM
	Guests  int
	Message string
}

// SubmitReservationDeps holds dependencies for SubmitReservation.
type SubmitReservationDeps struct {
	ReservationStore ReservationStoreForSubmit
	Forwarder        ReservationForwarder
	EmailSender      email.Sender // optional host notification
	NotifyTo         string       // recipient for the host notification
	Location         *time.Location
	Now              func() time.Time // defaults to time.Now
}

var ErrForwardFailed = errors.New("reservation could not be forwarded, please try again or call us")

// ExecuteSubmitReservation validates a reservation request, forwards it to
// the form backend and logs it locally. There is no availability check; the
// site only relays the request to the hosts. The notification email is best
// effort and never fails the submission.
// PRE: input comes from the public form
// POST: Reservation row exists with status forwarded or failed
func ExecuteSubmitReservation(ctx context.Context, input SubmitReservationInput, deps SubmitReservationDeps) (reservation.Reservation, error) {
	now := time.Now()
	if deps.Now != nil {
		now = deps.Now()
	}
	loc := time.Local
	if deps.Location != nil {
		loc = deps.Location
	}

	r := reservation.Reservation{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Date:      input.Date,
		Time:      input.Time,
		Guests:    reservation.ClampGuests(input.Guests),
		Message:   input.Message,
		CreatedAt: now.UTC(),
	}
	today := now.In(loc).Format("2006-01-02")
	if err := r.Validate(today); err != nil {
		return reservation.Reservation{}, err
	}

	forwardErr := deps.Forwarder.Forward(ctx, r)
	if forwardErr != nil {
		r.Status = reservation.StatusFailed
	} else {
		r.Status = reservation.StatusForwarded
	}

	if err := deps.ReservationStore.Save(ctx, r); err != nil {
		slog.Error("reservation_log_failed", "error", err, "reservation_id", r.ID)
	}

	if forwardErr != nil {
		return r, ErrForwardFailed
	}

	if deps.EmailSender != nil && deps.NotifyTo != "" {
		notifyHosts(ctx, deps, r)
	}

	slog.Info("reservation_event", "event", "reservation_forwarded",
		"reservation_id", r.ID, "date", r.Date, "guests", r.Guests)
	return r, nil
}

func notifyHosts(ctx context.Context, deps SubmitReservationDeps, r reservation.Reservation) {
	body := fmt.Sprintf(
		"<h2>Neue Reservationsanfrage</h2>"+
			"<p><strong>%s</strong> – %s Uhr, %d Gäste</p>"+
			"<p>Name: %s<br>E-Mail: %s<br>Telefon: %s</p>"+
			"<p>%s</p>",
		html.EscapeString(r.Date), html.EscapeString(r.Time), r.Guests,
		html.EscapeString(r.Name), html.EscapeString(r.Email),
		html.EscapeString(r.Phone), html.EscapeString(r.Message),
	)
	_, err := deps.EmailSender.Send(ctx, email.SendRequest{
		To:      []string{deps.NotifyTo},
		Subject: fmt.Sprintf("Reservationsanfrage %s %s (%d Gäste)", r.Date, r.Time, r.Guests),
		HTML:    body,
		ReplyTo: r.Email,
	})
	if err != nil {
		slog.Error("reservation_notify_failed", "error", err, "reservation_id", r.ID)
	}
}
