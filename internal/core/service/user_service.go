package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/starlog/catalog-api/internal/core/domain"
	"github.com/starlog/catalog-api/internal/core/ports"
)

// UserService manages user lifecycle and role assignment.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, logger: logger}
}

// Create registers a new user with the default "user" role.
func (s *UserService) Create(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(email)

	if existing, err := s.users.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrUserExists
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	defaultRole, err := s.roles.FindByName(ctx, domain.RoleUser)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Roles:        []domain.Role{*defaultRole},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

// AddRole appends roleName to the user's role set, preserving assignment
// order. Adding a role the user already holds is a no-op that returns the
// current state.
func (s *UserService) AddRole(ctx context.Context, email, roleName string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	role, err := s.roles.FindByName(ctx, roleName)
	if err != nil {
		return nil, err
	}

	if user.HasRole(role.Name) {
		return user, nil
	}

	updated := append(append([]domain.Role(nil), user.Roles...), *role)
	if err := s.users.UpdateRoles(ctx, user.ID, updated); err != nil {
		return nil, err
	}
	user.Roles = updated

	s.logger.Info().Int64("user_id", user.ID).Str("role", role.Name).Msg("role assigned")
	return user, nil
}

// RemoveRole removes roleName from the user's role set. It fails with
// domain.ErrRoleNotAssigned when the user does not hold the role. Removal
// down to zero roles is allowed; the access guard denies zero-role
// principals on every restricted route regardless.
func (s *UserService) RemoveRole(ctx context.Context, email, roleName string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	if !user.HasRole(roleName) {
		return nil, domain.ErrRoleNotAssigned
	}

	updated := make([]domain.Role, 0, len(user.Roles)-1)
	for _, r := range user.Roles {
		if r.Name != roleName {
			updated = append(updated, r)
		}
	}
	if err := s.users.UpdateRoles(ctx, user.ID, updated); err != nil {
		return nil, err
	}
	user.Roles = updated

	s.logger.Info().Int64("user_id", user.ID).Str("role", roleName).Msg("role removed")
	return user, nil
}

// Delete removes a user by id.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
