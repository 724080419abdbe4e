package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	emailPkg "feldiserhof/internal/adapters/email"
	"feldiserhof/internal/adapters/formspree"
	web "feldiserhof/internal/adapters/http"
	"feldiserhof/internal/adapters/storage"
	accountStorePkg "feldiserhof/internal/adapters/storage/account"
	featureFlagStorePkg "feldiserhof/internal/adapters/storage/featureflag"
	heroBoxStorePkg "feldiserhof/internal/adapters/storage/herobox"
	hoursStorePkg "feldiserhof/internal/adapters/storage/hours"
	menuStorePkg "feldiserhof/internal/adapters/storage/menu"
	reservationStorePkg "feldiserhof/internal/adapters/storage/reservation"
	"feldiserhof/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real deployments set variables in the environment
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("FELDISERHOF_DB", "feldiserhof.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	log.Println("Database initialized successfully!")

	acctStore := accountStorePkg.NewSQLiteStore(db)
	flagStore := featureFlagStorePkg.NewSQLiteStore(db)
	heroStore := heroBoxStorePkg.NewSQLiteStore(db)
	hrsStore := hoursStorePkg.NewSQLiteStore(db)
	stores := &web.Stores{
		AccountStore:     acctStore,
		FeatureFlagStore: flagStore,
		MenuStore:        menuStorePkg.NewSQLiteStore(db),
		HoursStore:       hrsStore,
		HeroBoxStore:     heroStore,
		ReservationStore: reservationStorePkg.NewSQLiteStore(db),
	}

	// Seed the admin account on an empty database
	seedInput := orchestrators.SeedAdminInput{
		Email:    os.Getenv("FELDISERHOF_ADMIN_EMAIL"),
		Password: os.Getenv("FELDISERHOF_ADMIN_PASSWORD"),
	}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedInput,
		orchestrators.SeedAdminDeps{AccountStore: acctStore}); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Seed feature flags, hero box and a starter week on first start
	seedDeps := orchestrators.SeedDefaultsDeps{
		FlagStore:    flagStore,
		HeroBoxStore: heroStore,
		HoursStore:   hrsStore,
	}
	if err := orchestrators.ExecuteSeedDefaults(context.Background(), seedDeps); err != nil {
		log.Fatalf("failed to seed defaults: %v", err)
	}

	// Configure email sender for reservation notifications
	resendKey := os.Getenv("FELDISERHOF_RESEND_KEY")
	emailFrom := envOrDefault("FELDISERHOF_RESEND_FROM", "Feldiserhof <noreply@feldiserhof.ch>")
	notifyTo := envOrDefault("FELDISERHOF_NOTIFY_TO", "info@feldiserhof.ch")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), notifyTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), notifyTo)
		if os.Getenv("FELDISERHOF_ENV") == "production" {
			log.Println("WARNING: FELDISERHOF_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set FELDISERHOF_RESEND_KEY for real delivery)")
		}
	}

	// Configure the reservation forwarder
	if endpoint := os.Getenv("FELDISERHOF_FORMSPREE_ENDPOINT"); endpoint != "" {
		web.SetReservationForwarder(formspree.NewHTTPSender(endpoint))
		log.Println("Reservation forwarder configured (Formspree)")
	} else {
		web.SetReservationForwarder(formspree.NewNoopSender())
		log.Println("Reservation forwarder configured (noop — set FELDISERHOF_FORMSPREE_ENDPOINT)")
	}

	// Create HTTP handler with middleware
	mux := web.NewMux(envOrDefault("FELDISERHOF_STATIC_DIR", "static"), stores)

	// Start server
	addr := envOrDefault("FELDISERHOF_ADDR", ":8080")
	log.Printf("Feldiserhof %s starting on %s (env=%s)", version, addr, envOrDefault("FELDISERHOF_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
