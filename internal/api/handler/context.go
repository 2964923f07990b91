package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/febic/fair-platform/internal/core/domain"
)

// ctxSession extracts the session user and token injected by the Auth
// middleware and performs a fast-fail check before any service call: both
// must be present, proving the middleware ran.
func ctxSession(c echo.Context) (*domain.User, string, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	token, _ := c.Get("session_token").(string)
	if token == "" {
		return nil, "", echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
	}

	return user, token, nil
}
