package web

import (
	"net/http"

	"feldiserhof/internal/adapters/http/middleware"
)

// registerRoutes attaches all handlers to the mux. Public pages and APIs are
// open; everything under /admin except the login form requires a session.
func registerRoutes(mux *http.ServeMux) {
	// Public pages
	mux.HandleFunc("/", handleHome)
	mux.HandleFunc("/gallery", handleGalleryPage)
	mux.HandleFunc("/rooms", handleRoomsPage)
	mux.HandleFunc("/wellness", handleWellnessPage)

	// Public JSON API
	mux.HandleFunc("/api/hours/status", handleAPIHoursStatus)
	mux.HandleFunc("/api/menu/book", handleAPIMenuBook)
	mux.HandleFunc("/api/gallery", handleAPIGallery)
	mux.HandleFunc("/api/feature-flags", handleAPIFeatureFlags)
	mux.HandleFunc("/api/csrf-token", handleAPICSRFToken)
	mux.HandleFunc("/api/reserve", handleAPIReserve)

	// Admin
	mux.HandleFunc("/admin/login", handleAdminLogin)
	mux.HandleFunc("/admin/logout", handleAdminLogout)
	mux.Handle("/admin", middleware.RequireAdmin(http.HandlerFunc(handleAdminDashboard)))
	mux.Handle("/admin/api/hero-box", middleware.RequireAdmin(http.HandlerFunc(handleAdminHeroBox)))
	mux.Handle("/admin/api/menu", middleware.RequireAdmin(http.HandlerFunc(handleAdminMenu)))
	mux.Handle("/admin/api/hours", middleware.RequireAdmin(http.HandlerFunc(handleAdminHours)))
	mux.Handle("/admin/api/feature-flags", middleware.RequireAdmin(http.HandlerFunc(handleAdminFeatureFlags)))
	mux.Handle("/admin/api/reservations", middleware.RequireAdmin(http.HandlerFunc(handleAdminReservations)))
}
