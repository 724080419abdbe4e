package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"feldiserhof/internal/domain/account"
)

type fakeAccountStore struct {
	accounts map[string]account.Account
}

func (f *fakeAccountStore) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return account.Account{}, sql.ErrNoRows
}

func (f *fakeAccountStore) Save(ctx context.Context, a account.Account) error {
	if f.accounts == nil {
		f.accounts = make(map[string]account.Account)
	}
	f.accounts[a.ID] = a
	return nil
}

func (f *fakeAccountStore) Count(ctx context.Context) (int, error) {
	return len(f.accounts), nil
}

func newLoginFixture(t *testing.T) (*fakeAccountStore, LoginDeps) {
	t.Helper()
	store := &fakeAccountStore{}
	acct := account.Account{ID: "a1", Email: "admin@feldiserhof.ch", Role: account.RoleAdmin}
	if err := acct.SetPassword("gipfelkreuz am morgen"); err != nil {
		t.Fatal(err)
	}
	store.Save(context.Background(), acct)
	deps := LoginDeps{
		AccountStore: store,
		Now:          func() time.Time { return time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC) },
	}
	return store, deps
}

func TestExecuteLoginSuccess(t *testing.T) {
	_, deps := newLoginFixture(t)

	result, err := ExecuteLogin(context.Background(),
		LoginInput{Email: "admin@feldiserhof.ch", Password: "gipfelkreuz am morgen"}, deps)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.AccountID != "a1" || result.Role != account.RoleAdmin {
		t.Errorf("result = %+v", result)
	}
}

func TestExecuteLoginWrongPassword(t *testing.T) {
	store, deps := newLoginFixture(t)

	_, err := ExecuteLogin(context.Background(),
		LoginInput{Email: "admin@feldiserhof.ch", Password: "falsches passwort"}, deps)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if store.accounts["a1"].FailedLogins != 1 {
		t.Errorf("failed logins = %d, want 1", store.accounts["a1"].FailedLogins)
	}
}

func TestExecuteLoginUnknownEmail(t *testing.T) {
	_, deps := newLoginFixture(t)

	_, err := ExecuteLogin(context.Background(),
		LoginInput{Email: "nobody@feldiserhof.ch", Password: "gipfelkreuz am morgen"}, deps)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestExecuteLoginLockout(t *testing.T) {
	store, deps := newLoginFixture(t)
	input := LoginInput{Email: "admin@feldiserhof.ch", Password: "falsches passwort"}

	for i := 0; i < account.MaxFailedLogins; i++ {
		ExecuteLogin(context.Background(), input, deps)
	}
	if store.accounts["a1"].LockedUntil.IsZero() {
		t.Fatal("account not locked after repeated failures")
	}

	// Even the correct password is refused while locked
	_, err := ExecuteLogin(context.Background(),
		LoginInput{Email: "admin@feldiserhof.ch", Password: "gipfelkreuz am morgen"}, deps)
	if !errors.Is(err, ErrAccountLocked) {
		t.Fatalf("err = %v, want ErrAccountLocked", err)
	}

	// After the lockout window the login works and resets the counter
	deps.Now = func() time.Time {
		return time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC).Add(account.LockoutDuration + time.Minute)
	}
	if _, err := ExecuteLogin(context.Background(),
		LoginInput{Email: "admin@feldiserhof.ch", Password: "gipfelkreuz am morgen"}, deps); err != nil {
		t.Fatalf("login after lockout expiry failed: %v", err)
	}
	if store.accounts["a1"].FailedLogins != 0 {
		t.Errorf("failed logins = %d after successful login", store.accounts["a1"].FailedLogins)
	}
}

func TestExecuteSeedAdmin(t *testing.T) {
	store := &fakeAccountStore{}
	deps := SeedAdminDeps{AccountStore: store}

	err := ExecuteSeedAdmin(context.Background(),
		SeedAdminInput{Email: "admin@feldiserhof.ch", Password: "gipfelkreuz am morgen"}, deps)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if len(store.accounts) != 1 {
		t.Fatalf("accounts = %d, want 1", len(store.accounts))
	}

	// Second run must not create another account
	err = ExecuteSeedAdmin(context.Background(),
		SeedAdminInput{Email: "other@feldiserhof.ch", Password: "anderes passwort xy"}, deps)
	if err != nil {
		t.Fatalf("idempotent seed failed: %v", err)
	}
	if len(store.accounts) != 1 {
		t.Errorf("accounts = %d after second seed", len(store.accounts))
	}
}

func TestExecuteSeedAdminMissingCredentials(t *testing.T) {
	store := &fakeAccountStore{}
	err := ExecuteSeedAdmin(context.Background(), SeedAdminInput{}, SeedAdminDeps{AccountStore: store})
	if !errors.Is(err, ErrSeedCredentialsMissing) {
		t.Fatalf("err = %v, want ErrSeedCredentialsMissing", err)
	}
}
