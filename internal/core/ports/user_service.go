package ports

import (
	"context"

	"github.com/starlog/catalog-api/internal/core/domain"
)

// UserService manages user lifecycle and role assignment.
type UserService interface {
	// Create registers a new user with the default "user" role. Fails with
	// domain.ErrUserExists when the email is taken.
	Create(ctx context.Context, email, password string) (*domain.User, error)
	// AddRole appends roleName to the user's role set. Adding a role the
	// user already holds is a no-op returning current state.
	AddRole(ctx context.Context, email, roleName string) (*domain.User, error)
	// RemoveRole removes roleName from the user's role set. Fails with
	// domain.ErrRoleNotAssigned when the user does not hold it.
	RemoveRole(ctx context.Context, email, roleName string) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// RoleService exposes the role registry.
type RoleService interface {
	// EnsureRoles idempotently creates every member of the closed role
	// enumeration. Any failure is fatal at startup.
	EnsureRoles(ctx context.Context) error
	FindByName(ctx context.Context, name string) (*domain.Role, error)
}
