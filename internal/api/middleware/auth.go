package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/febic/fair-platform/internal/api/metrics"
	"github.com/febic/fair-platform/internal/core/domain"
	"github.com/febic/fair-platform/internal/core/ports"
)

// loginRedirect is the payload sent with 401 responses so the client can
// bounce to the login route and return to the original location afterwards.
type loginRedirect struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
	From     string `json:"from,omitempty"`
}

// Auth validates the bearer JWT and hydrates the embedded session token
// through the auth service. Requests that do not resolve to an authenticated
// session get a 401 carrying the login redirect and the originally requested
// path.
func Auth(jwtSecret string, auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, ok := sessionTokenFromHeader(c, jwtSecret)
			if !ok {
				return denyLogin(c)
			}

			session, state := auth.Hydrate(c.Request().Context(), sid)
			if state != domain.SessionAuthenticated {
				// token minted but session gone (logout, expiry, corrupt record)
				return denyLogin(c)
			}

			c.Set("session_token", session.Token)
			c.Set("user", session.User)
			return next(c)
		}
	}
}

// sessionTokenFromHeader extracts and verifies the JWT, returning the opaque
// session token carried in the "sid" claim.
func sessionTokenFromHeader(c echo.Context, jwtSecret string) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", false
	}

	sid, _ := claims["sid"].(string)
	return sid, sid != ""
}

func denyLogin(c echo.Context) error {
	metrics.GuardDenialsTotal.WithLabelValues(domain.GuardRedirectLogin.String()).Inc()
	return c.JSON(http.StatusUnauthorized, loginRedirect{
		Error:    "authentication required",
		Redirect: "/login",
		From:     c.Request().URL.Path,
	})
}
