package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/febic/fair-platform/internal/api/metrics"
	"github.com/febic/fair-platform/internal/core/domain"
)

// unauthorizedRedirect is the payload sent with 403 responses.
type unauthorizedRedirect struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// ActiveRole restricts a route to users whose active role is in allowed. It
// runs after Auth, so the session is already hydrated; the guard decision
// table is evaluated with the authenticated state.
func ActiveRole(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get("user").(*domain.User)

			result := domain.DecideRoute(domain.SessionAuthenticated, user, domain.RouteRule{
				Path:         c.Request().URL.Path,
				RequireAuth:  true,
				AllowedRoles: allowed,
			})
			if result.Decision != domain.GuardAllow {
				metrics.GuardDenialsTotal.WithLabelValues(result.Decision.String()).Inc()
				return c.JSON(http.StatusForbidden, unauthorizedRedirect{
					Error:    "active role not permitted",
					Redirect: "/unauthorized",
				})
			}
			return next(c)
		}
	}
}
