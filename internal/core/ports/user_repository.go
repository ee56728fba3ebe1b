package ports

import (
	"context"

	"github.com/starlog/catalog-api/internal/core/domain"
)

// UserRepository persists user records. Lookups return the full aggregate
// with roles resolved in assignment order.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// UpdateRoles replaces the user's role set. Last write wins on
	// concurrent mutation.
	UpdateRoles(ctx context.Context, userID int64, roles []domain.Role) error
	Delete(ctx context.Context, id int64) error
}
