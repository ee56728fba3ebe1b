package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/starlog/catalog-api/internal/core/domain"
	"github.com/starlog/catalog-api/internal/core/ports"
)

// RoleService wraps the role registry.
type RoleService struct {
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, logger: logger}
}

// EnsureRoles idempotently creates every member of the closed role
// enumeration, in bootstrap order. Running it N times leaves the same three
// rows as running it once. Any failure is returned so startup can abort.
func (s *RoleService) EnsureRoles(ctx context.Context) error {
	for _, name := range domain.AllRoles {
		_, err := s.roles.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrRoleNotFound) {
			return fmt.Errorf("role bootstrap: lookup %q: %w", name, err)
		}
		if _, err := s.roles.Create(ctx, name); err != nil {
			return fmt.Errorf("role bootstrap: create %q: %w", name, err)
		}
		s.logger.Info().Str("role", name).Msg("role created")
	}
	return nil
}

// FindByName returns the role row for name.
func (s *RoleService) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	return s.roles.FindByName(ctx, name)
}
