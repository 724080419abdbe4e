package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"feldiserhof/internal/domain/account"
)

// AccountStoreForSeed defines the store interface needed by SeedAdmin.
type AccountStoreForSeed interface {
	Count(ctx context.Context) (int, error)
	Save(ctx context.Context, a account.Account) error
}

// SeedAdminInput carries input for the seed orchestrator.
type SeedAdminInput struct {
	Email    string
	Password string
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AccountStore AccountStoreForSeed
}

var ErrSeedCredentialsMissing = errors.New("admin email and password must be configured for first start")

// ExecuteSeedAdmin creates the initial admin account on an empty database.
// PRE: input credentials come from the environment
// POST: Exactly one admin exists; a non-empty account table is left untouched
func ExecuteSeedAdmin(ctx context.Context, input SeedAdminInput, deps SeedAdminDeps) error {
	count, err := deps.AccountStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if input.Email == "" || input.Password == "" {
		return ErrSeedCredentialsMissing
	}

	acct := account.Account{
		ID:        uuid.New().String(),
		Email:     input.Email,
		Role:      account.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := acct.Validate(); err != nil {
		return err
	}
	if err := acct.SetPassword(input.Password); err != nil {
		return err
	}
	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return err
	}

	slog.Info("seed_event", "event", "admin_created", "email", acct.Email)
	return nil
}
