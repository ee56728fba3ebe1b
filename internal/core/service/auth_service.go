package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/starlog/catalog-api/internal/api/metrics"
	"github.com/starlog/catalog-api/internal/core/domain"
	"github.com/starlog/catalog-api/internal/core/ports"
)

// AuthService orchestrates credential verification and token issuance.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// ValidateUser looks up the user by normalized email and verifies the
// password. It returns nil (not an error) when the email is unknown or the
// password is wrong; an absent user still costs one bcrypt comparison so
// the two cases take the same time.
func (s *AuthService) ValidateUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			burnPasswordCheck(password)
			return nil, nil
		}
		return nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, nil
	}
	return user, nil
}

// Login authenticates and mints an access token carrying the user's current
// role names. Unknown email and wrong password both surface as
// domain.ErrInvalidCredentials with no distinguishing detail.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	user, err := s.ValidateUser(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	principal := &domain.Principal{
		SubjectID: user.ID,
		Email:     user.Email,
		Roles:     user.RoleNames(),
	}

	token, err := s.tokens.Issue(principal)
	if err != nil {
		s.logger.Error().Err(err).Msg("token issuance failed")
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")

	return &ports.LoginResult{
		AccessToken: token,
		User:        ports.LoginUser{ID: user.ID, Email: user.Email},
	}, nil
}
