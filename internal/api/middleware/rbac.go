package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/starlog/catalog-api/internal/api/metrics"
)

// RequireRoles gates a route on role membership. The decision is stateless
// and recomputed per request: an empty required set admits any
// authenticated principal, otherwise the principal must hold at least one
// of the required roles. A principal with no roles at all is denied on
// every restricted route.
func RequireRoles(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				metrics.GuardDecisionsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			if !principal.HasAnyRole(requiredRoles...) {
				metrics.GuardDecisionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}

			metrics.GuardDecisionsTotal.WithLabelValues("allowed").Inc()
			return next(c)
		}
	}
}
