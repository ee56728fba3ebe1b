package ports

import (
	"context"

	"github.com/starlog/catalog-api/internal/core/domain"
)

// LoginResult is what a successful login returns to the transport layer.
// It never carries the password hash.
type LoginResult struct {
	AccessToken string
	User        LoginUser
}

// LoginUser is the minimal identity echoed back on login.
type LoginUser struct {
	ID    int64
	Email string
}

// AuthService verifies credentials and issues access tokens.
type AuthService interface {
	// ValidateUser returns the user when email and password match, nil
	// when either is wrong. It does not issue tokens.
	ValidateUser(ctx context.Context, email, password string) (*domain.User, error)
	// Login authenticates and mints an access token carrying the user's
	// current role names. Unknown email and wrong password both fail with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// TokenVerifier is the subset of the token service the access guard needs.
type TokenVerifier interface {
	Verify(token string) (*domain.Principal, error)
}

// LoginThrottle limits login attempts per account over a sliding window.
// Implementations fail open: a broken backend must not lock everyone out.
type LoginThrottle interface {
	Allow(ctx context.Context, email string) bool
}
