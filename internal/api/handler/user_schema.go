package handler

import "github.com/starlog/catalog-api/internal/core/domain"

type createUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type roleMutationRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user super_admin"`
}

type userResponse struct {
	ID    int64    `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Email: u.Email,
		Roles: u.RoleNames(),
	}
}
