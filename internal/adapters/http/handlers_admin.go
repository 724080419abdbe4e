package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"feldiserhof/internal/adapters/http/middleware"
	hoursStore "feldiserhof/internal/adapters/storage/hours"
	"feldiserhof/internal/application/orchestrators"
	heroBoxDomain "feldiserhof/internal/domain/herobox"
	menuDomain "feldiserhof/internal/domain/menu"
)

// handleAdminLogin handles GET (form) and POST (credentials) for /admin/login
func handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		if _, ok := middleware.GetSessionFromContext(ctx); ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{})
		return
	}

	if r.Method == "POST" {
		input := orchestrators.LoginInput{}
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.Email = r.FormValue("email")
			input.Password = r.FormValue("password")
		} else {
			if err := strictDecode(r, &input); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}

		result, err := orchestrators.ExecuteLogin(ctx, input, orchestrators.LoginDeps{
			AccountStore: stores.AccountStore,
			Now:          timeNow,
		})
		if err != nil {
			msg := "E-Mail oder Passwort falsch"
			if errors.Is(err, orchestrators.ErrAccountLocked) {
				msg = "Konto vorübergehend gesperrt, bitte später erneut versuchen"
			}
			w.WriteHeader(http.StatusUnauthorized)
			renderTemplate(w, r, "login.html", map[string]any{"Error": msg})
			return
		}

		token, err := sessions.Create(result.AccountID, result.Email, result.Role)
		if err != nil {
			internalError(w, err)
			return
		}
		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminLogout handles POST /admin/logout
func handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if token, ok := middleware.SessionToken(r); ok {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// handleAdminDashboard handles GET /admin
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	categories, err := stores.MenuStore.ListCategories(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	cfg, err := stores.HoursStore.Load(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	box, err := stores.HeroBoxStore.Get(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	flags, err := stores.FeatureFlagStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	reservations, err := stores.ReservationStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "dashboard.html", map[string]any{
		"Categories":   categories,
		"Hours":        cfg,
		"HeroBox":      box,
		"Flags":        flags,
		"Reservations": reservations,
	})
}

// heroBoxPayload is the admin wire shape for the hero box; dates travel as
// YYYY-MM-DD strings, empty meaning unbounded.
type heroBoxPayload struct {
	Enabled        bool
	Icon           string
	Title          string
	Description    string
	HighlightText  string
	BottomLabel    string
	ButtonText     string
	ButtonLink     string
	StartDate      string
	EndDate        string
	Priority       int
	TargetAudience string
	Style          string
	Theme          string
	Align          string
	IsActive       bool
}

func heroBoxToPayload(box heroBoxDomain.HeroBox) heroBoxPayload {
	p := heroBoxPayload{
		Enabled:        box.Enabled,
		Icon:           box.Icon,
		Title:          box.Title,
		Description:    box.Description,
		HighlightText:  box.HighlightText,
		BottomLabel:    box.BottomLabel,
		ButtonText:     box.ButtonText,
		ButtonLink:     box.ButtonLink,
		Priority:       box.Priority,
		TargetAudience: box.TargetAudience,
		Style:          box.Style,
		Theme:          box.Theme,
		Align:          box.Align,
		IsActive:       box.IsActive,
	}
	if !box.StartDate.IsZero() {
		p.StartDate = box.StartDate.Format("2006-01-02")
	}
	if !box.EndDate.IsZero() {
		p.EndDate = box.EndDate.Format("2006-01-02")
	}
	return p
}

func (p heroBoxPayload) toDomain() (heroBoxDomain.HeroBox, error) {
	box := heroBoxDomain.HeroBox{
		Enabled:        p.Enabled,
		Icon:           p.Icon,
		Title:          p.Title,
		Description:    p.Description,
		HighlightText:  p.HighlightText,
		BottomLabel:    p.BottomLabel,
		ButtonText:     p.ButtonText,
		ButtonLink:     p.ButtonLink,
		Priority:       p.Priority,
		TargetAudience: p.TargetAudience,
		Style:          p.Style,
		Theme:          p.Theme,
		Align:          p.Align,
		IsActive:       p.IsActive,
	}
	var err error
	if p.StartDate != "" {
		if box.StartDate, err = time.Parse("2006-01-02", p.StartDate); err != nil {
			return heroBoxDomain.HeroBox{}, err
		}
	}
	if p.EndDate != "" {
		if box.EndDate, err = time.Parse("2006-01-02", p.EndDate); err != nil {
			return heroBoxDomain.HeroBox{}, err
		}
	}
	return box, nil
}

// handleAdminHeroBox handles GET and POST for /admin/api/hero-box
func handleAdminHeroBox(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		box, err := stores.HeroBoxStore.Get(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, heroBoxToPayload(box))
		return
	}

	if r.Method == "POST" {
		var payload heroBoxPayload
		if err := strictDecode(r, &payload); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		box, err := payload.toDomain()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		err = orchestrators.ExecuteSaveHeroBox(ctx,
			orchestrators.SaveHeroBoxInput{Box: box},
			orchestrators.SaveHeroBoxDeps{HeroBoxStore: stores.HeroBoxStore})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminMenu handles GET and POST for /admin/api/menu
func handleAdminMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		categories, err := stores.MenuStore.ListCategories(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, map[string]any{"Categories": categories})
		return
	}

	if r.Method == "POST" {
		var input struct {
			Categories []menuDomain.Category
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		err := orchestrators.ExecuteSaveMenu(ctx,
			orchestrators.SaveMenuInput{Categories: input.Categories},
			orchestrators.SaveMenuDeps{MenuStore: stores.MenuStore})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminHours handles GET and POST for /admin/api/hours
func handleAdminHours(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		cfg, err := stores.HoursStore.Load(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, cfg)
		return
	}

	if r.Method == "POST" {
		var cfg hoursStore.Config
		if err := strictDecode(r, &cfg); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		err := orchestrators.ExecuteSaveHours(ctx,
			orchestrators.SaveHoursInput{Config: cfg},
			orchestrators.SaveHoursDeps{HoursStore: stores.HoursStore})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminFeatureFlags handles GET and POST for /admin/api/feature-flags
func handleAdminFeatureFlags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		flags, err := stores.FeatureFlagStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, map[string]any{"Flags": flags})
		return
	}

	if r.Method == "POST" {
		var input struct {
			Key     string
			Enabled bool
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		flag, err := stores.FeatureFlagStore.Get(ctx, input.Key)
		if err != nil {
			http.Error(w, "unknown feature flag", http.StatusBadRequest)
			return
		}
		flag.Enabled = input.Enabled
		if err := stores.FeatureFlagStore.Save(ctx, flag); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminReservations handles GET /admin/api/reservations
func handleAdminReservations(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	reservations, err := stores.ReservationStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, map[string]any{"Reservations": reservations})
}
