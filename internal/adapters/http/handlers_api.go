package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/csrf"

	"feldiserhof/internal/application/orchestrators"
	"feldiserhof/internal/application/projections"
	"feldiserhof/internal/domain/featureflag"
)

// handleAPIHoursStatus handles GET /api/hours/status
func handleAPIHoursStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	result, err := projections.QueryHoursStatus(r.Context(), timeNow(), projections.GetHoursStatusDeps{
		HoursStore: stores.HoursStore,
		Location:   siteLocation,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, result)
}

// handleAPIMenuBook handles GET /api/menu/book?width=<px>
func handleAPIMenuBook(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	width, _ := strconv.Atoi(r.URL.Query().Get("width"))
	result, err := projections.QueryMenuBook(r.Context(), width, projections.GetMenuBookDeps{
		MenuStore: stores.MenuStore,
		Flags:     stores.FeatureFlagStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, result)
}

// handleAPIGallery handles GET /api/gallery
func handleAPIGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	albums, err := projections.QueryGallery(r.Context(), projections.GetGalleryDeps{Scanner: galleryScanner})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, map[string]any{"albums": albums})
}

// handleAPIFeatureFlags handles GET /api/feature-flags. Only the flag states
// are exposed, not the descriptions.
func handleAPIFeatureFlags(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	flags, err := stores.FeatureFlagStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	states := make(map[string]bool, len(flags))
	for _, f := range flags {
		states[f.Key] = f.Enabled
	}
	writeJSON(w, states)
}

// handleAPICSRFToken handles GET /api/csrf-token. The client fetches a token
// before posting the reservation form.
func handleAPICSRFToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, map[string]string{"token": csrf.Token(r)})
}

// reserveRequest is the wire shape of a reservation submission. Company is a
// honeypot: humans never see the field, bots fill it.
type reserveRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Guests  int    `json:"guests"`
	Message string `json:"message"`
	Company string `json:"company"`
}

// handleAPIReserve handles POST /api/reserve (form or JSON)
func handleAPIReserve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !stores.FeatureFlagStore.IsEnabled(ctx, featureflag.KeyReservations) {
		http.Error(w, "reservations are currently disabled", http.StatusForbidden)
		return
	}

	var req reserveRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		req.Name = r.FormValue("name")
		req.Email = r.FormValue("email")
		req.Phone = r.FormValue("phone")
		req.Date = r.FormValue("date")
		req.Time = r.FormValue("time")
		req.Guests, _ = strconv.Atoi(r.FormValue("guests"))
		req.Message = r.FormValue("message")
		req.Company = r.FormValue("company")
	} else {
		if err := strictDecode(r, &req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	}

	// Honeypot hit: pretend success, forward nothing
	if req.Company != "" {
		writeJSON(w, map[string]any{"ok": true})
		return
	}

	input := orchestrators.SubmitReservationInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Date:    req.Date,
		Time:    req.Time,
		Guests:  req.Guests,
		Message: req.Message,
	}
	deps := orchestrators.SubmitReservationDeps{
		ReservationStore: stores.ReservationStore,
		Forwarder:        reservationForwarder,
		EmailSender:      emailSender,
		NotifyTo:         reservationNotifyTo,
		Location:         siteLocation,
		Now:              timeNow,
	}
	res, err := orchestrators.ExecuteSubmitReservation(ctx, input, deps)
	if err != nil {
		if errors.Is(err, orchestrators.ErrForwardFailed) {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{"ok": true, "id": res.ID})
}
