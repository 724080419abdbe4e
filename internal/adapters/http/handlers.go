package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"feldiserhof/internal/adapters/http/middleware"
	"feldiserhof/internal/application/projections"
	"feldiserhof/internal/domain/featureflag"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

const templatesDir = "internal/adapters/http/templates"

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	role := ""
	email := ""
	if ok {
		role = sess.Role
		email = sess.Email
	}

	funcMap := template.FuncMap{
		"currentRole":  func() string { return role },
		"currentEmail": func() string { return email },
		"isLoggedIn":   func() bool { return role != "" },
		"csrfToken":    func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"add": func(a, b int) int { return a + b },
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// handleHome handles GET / (hero, menu book, hours widget, reservation form)
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	status, err := projections.QueryHoursStatus(ctx, timeNow(), projections.GetHoursStatusDeps{
		HoursStore: stores.HoursStore,
		Location:   siteLocation,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	book, err := projections.QueryMenuBook(ctx, 0, projections.GetMenuBookDeps{
		MenuStore: stores.MenuStore,
		Flags:     stores.FeatureFlagStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	data := map[string]any{
		"Hours":               status,
		"Book":                book,
		"WellnessEnabled":     stores.FeatureFlagStore.IsEnabled(ctx, featureflag.KeyWellness),
		"ReservationsEnabled": stores.FeatureFlagStore.IsEnabled(ctx, featureflag.KeyReservations),
	}

	if stores.FeatureFlagStore.IsEnabled(ctx, featureflag.KeyHeroBox) {
		box, err := stores.HeroBoxStore.Get(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if box.VisibleAt(timeNow()) {
			data["HeroBox"] = box
		}
	}

	renderTemplate(w, r, "home.html", data)
}

// handleGalleryPage handles GET /gallery
func handleGalleryPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	albums, err := projections.QueryGallery(r.Context(), projections.GetGalleryDeps{Scanner: galleryScanner})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "gallery.html", map[string]any{
		"Albums":          albums,
		"WellnessEnabled": stores.FeatureFlagStore.IsEnabled(r.Context(), featureflag.KeyWellness),
	})
}

// handleRoomsPage handles GET /rooms
func handleRoomsPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderTemplate(w, r, "rooms.html", map[string]any{
		"WellnessEnabled": stores.FeatureFlagStore.IsEnabled(r.Context(), featureflag.KeyWellness),
	})
}

// handleWellnessPage handles GET /wellness. A disabled wellness flag hides
// the page entirely.
func handleWellnessPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !stores.FeatureFlagStore.IsEnabled(r.Context(), featureflag.KeyWellness) {
		http.NotFound(w, r)
		return
	}
	renderTemplate(w, r, "wellness.html", map[string]any{
		"WellnessEnabled": true,
	})
}
