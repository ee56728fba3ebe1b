package domain

import (
	"errors"
	"time"
)

// Role names form a closed enumeration. They are the contract boundary
// between stored role rows, token claims, and route policies, compared
// case-sensitively everywhere.
const (
	RoleAdmin      = "admin"
	RoleUser       = "user"
	RoleSuperAdmin = "super_admin"
)

// AllRoles lists every role name in bootstrap order.
var AllRoles = []string{RoleAdmin, RoleUser, RoleSuperAdmin}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrRoleNotFound = errors.New("role not found")
var ErrRoleNotAssigned = errors.New("role not assigned to user")
var ErrPasswordEncoding = errors.New("password encoding failed")

var ErrUnauthenticated = errors.New("unauthenticated")
var ErrForbidden = errors.New("access forbidden")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenMalformed = errors.New("token malformed")
var ErrMissingSecret = errors.New("signing secret not configured")

// IsValidRole reports whether name belongs to the closed role enumeration.
func IsValidRole(name string) bool {
	for _, r := range AllRoles {
		if r == name {
			return true
		}
	}
	return false
}

// Role is a named permission level. Rows are immutable once created and the
// registry guarantees at most one row per name.
type Role struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// User models an authenticated actor. Roles keep assignment order and hold
// no duplicates by role name.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoleNames returns the user's role names in assignment order.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// HasRole reports whether the user currently holds the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// Principal is the identity decoded from a verified access token. It lives
// for a single request and is never persisted. Roles are a snapshot taken
// at token issuance.
type Principal struct {
	SubjectID int64    `json:"subject_id"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
}

// HasAnyRole reports whether the principal holds at least one of the given
// role names. An empty required set always passes.
func (p *Principal) HasAnyRole(required ...string) bool {
	if len(required) == 0 {
		return true
	}
	for _, want := range required {
		for _, have := range p.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
