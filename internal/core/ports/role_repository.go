package ports

import (
	"context"

	"github.com/starlog/catalog-api/internal/core/domain"
)

// RoleRepository persists the closed set of role definitions.
type RoleRepository interface {
	Create(ctx context.Context, name string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]domain.Role, error)
}
