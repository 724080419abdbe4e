package account_test

import (
	"testing"
	"time"

	"feldiserhof/internal/domain/account"
)

// TestAccount_Validate tests validation of admin accounts.
func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		acct    account.Account
		wantErr bool
	}{
		{
			name:    "valid admin",
			acct:    account.Account{ID: "1", Email: "info@feldiserhof.ch", Role: account.RoleAdmin},
			wantErr: false,
		},
		{
			name:    "empty email",
			acct:    account.Account{ID: "2", Email: "", Role: account.RoleAdmin},
			wantErr: true,
		},
		{
			name:    "email without at sign",
			acct:    account.Account{ID: "3", Email: "feldiserhof.ch", Role: account.RoleAdmin},
			wantErr: true,
		},
		{
			name:    "invalid role",
			acct:    account.Account{ID: "4", Email: "info@feldiserhof.ch", Role: "superuser"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.acct.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Account.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestAccount_PasswordRoundTrip tests hashing and verification.
func TestAccount_PasswordRoundTrip(t *testing.T) {
	var a account.Account

	if err := a.SetPassword("short"); err == nil {
		t.Error("short password: expected error, got nil")
	}
	if err := a.SetPassword(""); err == nil {
		t.Error("empty password: expected error, got nil")
	}

	if err := a.SetPassword("bergblick-mit-menü"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if err := a.CheckPassword("bergblick-mit-menü"); err != nil {
		t.Errorf("CheckPassword correct: %v", err)
	}
	if err := a.CheckPassword("wrong-password-here"); err == nil {
		t.Error("CheckPassword wrong: expected error, got nil")
	}
}

// TestAccount_Lockout tests the failed-login counter and lock window.
func TestAccount_Lockout(t *testing.T) {
	now := time.Date(2025, time.June, 13, 12, 0, 0, 0, time.UTC)
	var a account.Account

	for i := 0; i < account.MaxFailedLogins-1; i++ {
		a.RecordFailedLogin(now)
		if a.IsLocked(now) {
			t.Fatalf("locked after %d failures, limit is %d", i+1, account.MaxFailedLogins)
		}
	}

	a.RecordFailedLogin(now)
	if !a.IsLocked(now) {
		t.Error("not locked after reaching the failure limit")
	}
	if a.IsLocked(now.Add(account.LockoutDuration + time.Minute)) {
		t.Error("still locked after the lockout window passed")
	}

	a.ResetLoginFailures()
	if a.FailedLogins != 0 || a.IsLocked(now) {
		t.Error("ResetLoginFailures did not clear the lockout state")
	}
}
