package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"feldiserhof/internal/domain/reservation"
)

type fakeReservationStore struct {
	saved []reservation.Reservation
}

func (f *fakeReservationStore) Save(ctx context.Context, r reservation.Reservation) error {
	f.saved = append(f.saved, r)
	return nil
}

type fakeForwarder struct {
	forwarded []reservation.Reservation
	err       error
}

func (f *fakeForwarder) Forward(ctx context.Context, r reservation.Reservation) error {
	if f.err != nil {
		return f.err
	}
	f.forwarded = append(f.forwarded, r)
	return nil
}

func submitFixture() (SubmitReservationInput, *fakeReservationStore, *fakeForwarder, SubmitReservationDeps) {
	store := &fakeReservationStore{}
	forwarder := &fakeForwarder{}
	deps := SubmitReservationDeps{
		ReservationStore: store,
		Forwarder:        forwarder,
		Location:         time.UTC,
		Now:              func() time.Time { return time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC) },
	}
	input := SubmitReservationInput{
		Name:   "Anna Caduff",
		Email:  "anna@example.com",
		Date:   "2025-06-20",
		Time:   "19:00",
		Guests: 4,
	}
	return input, store, forwarder, deps
}

func TestExecuteSubmitReservation(t *testing.T) {
	input, store, forwarder, deps := submitFixture()

	result, err := ExecuteSubmitReservation(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Status != reservation.StatusForwarded {
		t.Errorf("status = %q", result.Status)
	}
	if result.ID == "" {
		t.Error("no ID minted")
	}
	if len(forwarder.forwarded) != 1 {
		t.Fatalf("forwarded %d", len(forwarder.forwarded))
	}
	if len(store.saved) != 1 || store.saved[0].Status != reservation.StatusForwarded {
		t.Fatalf("saved = %+v", store.saved)
	}
}

func TestExecuteSubmitReservationForwardFailure(t *testing.T) {
	input, store, forwarder, deps := submitFixture()
	forwarder.err = errors.New("formspree down")

	_, err := ExecuteSubmitReservation(context.Background(), input, deps)
	if !errors.Is(err, ErrForwardFailed) {
		t.Fatalf("err = %v, want ErrForwardFailed", err)
	}
	// The failed attempt is still logged for the admin
	if len(store.saved) != 1 || store.saved[0].Status != reservation.StatusFailed {
		t.Fatalf("saved = %+v", store.saved)
	}
}

func TestExecuteSubmitReservationClampsGuests(t *testing.T) {
	input, store, _, deps := submitFixture()
	input.Guests = 0

	if _, err := ExecuteSubmitReservation(context.Background(), input, deps); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if store.saved[0].Guests != 2 {
		t.Errorf("guests = %d, want default 2", store.saved[0].Guests)
	}
}

func TestExecuteSubmitReservationRejectsPastDate(t *testing.T) {
	input, store, _, deps := submitFixture()
	input.Date = "2025-06-12"

	_, err := ExecuteSubmitReservation(context.Background(), input, deps)
	if !errors.Is(err, reservation.ErrPastDate) {
		t.Fatalf("err = %v, want ErrPastDate", err)
	}
	if len(store.saved) != 0 {
		t.Error("invalid reservation was stored")
	}
}

func TestExecuteSubmitReservationSameDayAllowed(t *testing.T) {
	input, _, _, deps := submitFixture()
	input.Date = "2025-06-13"

	if _, err := ExecuteSubmitReservation(context.Background(), input, deps); err != nil {
		t.Fatalf("same-day reservation rejected: %v", err)
	}
}
