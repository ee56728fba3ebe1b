package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/starlog/catalog-api/internal/core/domain"
)

// DefaultTokenTTL is the lifetime of an access token.
const DefaultTokenTTL = 15 * time.Minute

// accessClaims is the wire shape of an access token payload. Subject carries
// the user id, the rest snapshots the principal at issuance time.
type accessClaims struct {
	jwt.RegisteredClaims
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// TokenService issues and verifies HS256-signed access tokens. The signing
// secret is loaded once at startup and read-only afterwards; rotating it
// invalidates every outstanding token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService builds a TokenService. If ttl <= 0, DefaultTokenTTL is
// used. An empty secret is tolerated at construction so tests can exercise
// the per-call domain.ErrMissingSecret path; cmd/api refuses to start
// without one.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock overrides the service clock. Intended for tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue mints a signed token embedding the principal's identity and role
// snapshot. Pure function of input, secret and clock.
func (s *TokenService) Issue(principal *domain.Principal) (string, error) {
	if len(s.secret) == 0 {
		return "", domain.ErrMissingSecret
	}

	now := s.now().UTC()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   formatSubject(principal.SubjectID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Email: principal.Email,
		Roles: principal.Roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded principal.
// Expired tokens fail with domain.ErrTokenExpired; anything structurally
// wrong (bad signature, wrong algorithm, garbage input) fails with
// domain.ErrTokenMalformed.
func (s *TokenService) Verify(tokenString string) (*domain.Principal, error) {
	if len(s.secret) == 0 {
		return nil, domain.ErrMissingSecret
	}

	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenMalformed
	}
	if !token.Valid {
		return nil, domain.ErrTokenMalformed
	}

	subjectID, err := parseSubject(claims.Subject)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.Principal{
		SubjectID: subjectID,
		Email:     claims.Email,
		Roles:     claims.Roles,
	}, nil
}

func formatSubject(id int64) string {
	return strconv.FormatInt(id, 10)
}

func parseSubject(sub string) (int64, error) {
	return strconv.ParseInt(sub, 10, 64)
}
