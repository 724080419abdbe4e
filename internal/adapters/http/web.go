package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/cors"

	"feldiserhof/internal/adapters/email"
	"feldiserhof/internal/adapters/formspree"
	"feldiserhof/internal/adapters/gallery"
	"feldiserhof/internal/adapters/http/middleware"
	accountStore "feldiserhof/internal/adapters/storage/account"
	featureFlagStore "feldiserhof/internal/adapters/storage/featureflag"
	heroBoxStore "feldiserhof/internal/adapters/storage/herobox"
	hoursStore "feldiserhof/internal/adapters/storage/hours"
	menuStore "feldiserhof/internal/adapters/storage/menu"
	reservationStore "feldiserhof/internal/adapters/storage/reservation"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore     accountStore.Store
	FeatureFlagStore featureFlagStore.Store
	MenuStore        menuStore.Store
	HoursStore       hoursStore.Store
	HeroBoxStore     heroBoxStore.Store
	ReservationStore reservationStore.Store
}

// loadCSRFKey reads the CSRF secret from FELDISERHOF_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("FELDISERHOF_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("FELDISERHOF_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("FELDISERHOF_ENV") == "production" {
		log.Fatal("FELDISERHOF_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set FELDISERHOF_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global gallery scanner (set by NewMux)
var galleryScanner gallery.Scanner

// siteLocation is the timezone all opening-hours decisions use.
var siteLocation = mustLoadLocation("Europe/Zurich")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender
var reservationNotifyTo string

// SetEmailSender sets the global email sender and the address reservation
// notifications go to.
func SetEmailSender(sender email.Sender, notifyTo string) {
	emailSender = sender
	reservationNotifyTo = notifyTo
}

// Global reservation forwarder (set by SetReservationForwarder)
var reservationForwarder formspree.Sender = formspree.NewNoopSender()

// SetReservationForwarder sets the global forwarder for reservation requests.
func SetReservationForwarder(sender formspree.Sender) {
	reservationForwarder = sender
}

// NewMux wires HTTP handlers for the site. staticDir serves assets under
// /static/; photo albums live in staticDir/gallery/<album>/.
func NewMux(staticDir string, s *Stores) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()
	galleryScanner = gallery.NewFSScanner(filepath.Join(staticDir, "gallery"), "/static/gallery")
	middleware.SecureCookies = os.Getenv("FELDISERHOF_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()
	trustedOrigins := []string{"localhost:8080", "127.0.0.1:8080"}
	if host := os.Getenv("FELDISERHOF_HOST"); host != "" {
		trustedOrigins = append(trustedOrigins, host)
	}

	// Public JSON endpoints may be embedded elsewhere; GET-only CORS
	apiCORS := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	})

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: SecurityHeaders(CSRF(Auth(RateLimit(mux))))
	handler := middleware.Chain(mux,
		middleware.RateLimit(limiter),
		middleware.Auth(sessions),
		middleware.CSRF(csrfKey, trustedOrigins),
		middleware.SecurityHeaders,
	)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			apiCORS.Handler(handler).ServeHTTP(w, r)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
