package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/starlog/catalog-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	throttle    ports.LoginThrottle
}

func NewAuthHandler(authService ports.AuthService, throttle ports.LoginThrottle) *AuthHandler {
	return &AuthHandler{authService: authService, throttle: throttle}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginUserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type loginResponse struct {
	AccessToken string            `json:"access_token"`
	User        loginUserResponse `json:"user"`
}

// Login authenticates a user and returns a short-lived access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !h.throttle.Allow(c.Request().Context(), req.Email) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		User:        loginUserResponse{ID: result.User.ID, Email: result.User.Email},
	})
}
