package formspree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	domain "feldiserhof/internal/domain/reservation"
)

// Sender forwards reservation requests to the external form backend.
type Sender interface {
	Forward(ctx context.Context, r domain.Reservation) error
}

// HTTPSender posts reservations to a Formspree form endpoint as JSON.
type HTTPSender struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSender creates a sender for the given form endpoint
// (e.g. "https://formspree.io/f/abcdwxyz").
func NewHTTPSender(endpoint string) *HTTPSender {
	return &HTTPSender{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Forward submits the reservation to Formspree.
// PRE: r has been validated
// POST: Returns nil only if Formspree accepted the submission
func (s *HTTPSender) Forward(ctx context.Context, r domain.Reservation) error {
	payload := map[string]any{
		"name":    r.Name,
		"email":   r.Email,
		"phone":   r.Phone,
		"date":    r.Date,
		"time":    r.Time,
		"guests":  r.Guests,
		"message": r.Message,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode reservation: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build formspree request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Error("formspree_forward_failed", "error", err)
		return fmt.Errorf("formspree request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("formspree_rejected", "status", resp.StatusCode)
		return fmt.Errorf("formspree returned status %d", resp.StatusCode)
	}

	slog.Info("formspree_forwarded", "reservation_id", r.ID, "date", r.Date)
	return nil
}

// NoopSender accepts every reservation without forwarding it. Used in
// development and in tests.
type NoopSender struct{}

// NewNoopSender creates a new NoopSender.
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// Forward logs the reservation but does not deliver it.
func (s *NoopSender) Forward(_ context.Context, r domain.Reservation) error {
	slog.Info("noop_formspree_forward", "reservation_id", r.ID, "date", r.Date)
	return nil
}
