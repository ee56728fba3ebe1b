package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/starlog/catalog-api/internal/core/domain"
)

func newTestAuthService(t *testing.T) (*AuthService, *UserService) {
	t.Helper()
	userRepo := newStubUserRepo()
	roleRepo := newSeededRoleRepo()
	users := NewUserService(userRepo, roleRepo, zerolog.Nop())
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(userRepo, tokens, zerolog.Nop()), users
}

func TestAuthService_ValidateUser(t *testing.T) {
	svc, users := newTestAuthService(t)

	if _, err := users.Create(context.Background(), "alice@example.com", "Secreta1234!"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	user, err := svc.ValidateUser(context.Background(), "alice@example.com", "Secreta1234!")
	if err != nil {
		t.Fatalf("ValidateUser returned error: %v", err)
	}
	if user == nil || user.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// Wrong password: nil, not an error.
	user, err = svc.ValidateUser(context.Background(), "alice@example.com", "wrong")
	if err != nil || user != nil {
		t.Fatalf("expected nil user and nil error, got %+v, %v", user, err)
	}

	// Unknown email: same outcome.
	user, err = svc.ValidateUser(context.Background(), "ghost@example.com", "Secreta1234!")
	if err != nil || user != nil {
		t.Fatalf("expected nil user and nil error, got %+v, %v", user, err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, users := newTestAuthService(t)

	if _, err := users.Create(context.Background(), "alice@example.com", "Secreta1234!"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	result, err := svc.Login(context.Background(), "alice@example.com", "Secreta1234!")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatalf("expected access token")
	}
	if result.User.Email != "alice@example.com" {
		t.Fatalf("unexpected login user: %+v", result.User)
	}

	tokens := NewTokenService("secret", time.Hour)
	principal, err := tokens.Verify(result.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if principal.Email != "alice@example.com" {
		t.Fatalf("unexpected principal email: %s", principal.Email)
	}
	if len(principal.Roles) != 1 || principal.Roles[0] != domain.RoleUser {
		t.Fatalf("expected default role snapshot, got %v", principal.Roles)
	}
}

func TestAuthService_Login_CaseInsensitiveEmail(t *testing.T) {
	svc, users := newTestAuthService(t)

	if _, err := users.Create(context.Background(), "user@test.com", "Secreta1234!"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	upper, err := svc.Login(context.Background(), "USER@Test.com", "Secreta1234!")
	if err != nil {
		t.Fatalf("login with mixed-case email failed: %v", err)
	}
	lower, err := svc.Login(context.Background(), "user@test.com", "Secreta1234!")
	if err != nil {
		t.Fatalf("login with lowercase email failed: %v", err)
	}
	if upper.User.Email != "user@test.com" || lower.User.Email != "user@test.com" {
		t.Fatalf("expected normalized stored email in both results")
	}
}

func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	svc, users := newTestAuthService(t)

	if _, err := users.Create(context.Background(), "bob@example.com", "goodpass1"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, wrongPassword := svc.Login(context.Background(), "bob@example.com", "badpass")
	_, unknownEmail := svc.Login(context.Background(), "nobody@example.com", "badpass")

	if wrongPassword != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPassword)
	}
	if unknownEmail != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("failure messages must be identical: %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestAuthService_Login_NeverLeaksPasswordHash(t *testing.T) {
	svc, users := newTestAuthService(t)

	created, err := users.Create(context.Background(), "carol@example.com", "Secreta1234!")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol@example.com", "Secreta1234!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.AccessToken == created.PasswordHash {
		t.Fatalf("token must not be the stored hash")
	}
	// LoginResult carries only id and email; this assertion documents it.
	if result.User.ID != created.ID || result.User.Email != created.Email {
		t.Fatalf("unexpected login user: %+v", result.User)
	}
}
