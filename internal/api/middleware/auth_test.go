package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/febic/fair-platform/internal/core/domain"
)

type stubAuthService struct {
	sessions map[string]*domain.Session
}

func (s *stubAuthService) Hydrate(_ context.Context, token string) (*domain.Session, domain.SessionState) {
	if session, ok := s.sessions[token]; ok && session.Valid() {
		return session, domain.SessionAuthenticated
	}
	return nil, domain.SessionUnauthenticated
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.Session, error) {
	return "", nil, domain.ErrInvalidCredentials
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func (s *stubAuthService) UpdateUser(_ context.Context, token string, user *domain.User) (*domain.Session, error) {
	return &domain.Session{Token: token, User: user}, nil
}

func signedToken(t *testing.T, secret, sid string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid":         sid,
		"email":       "alice@x.com",
		"active_role": "admin_staff",
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware_ValidSession(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{sessions: map[string]*domain.Session{
		"sid-1": {Token: "sid-1", User: &domain.User{ID: "u1", Email: "alice@x.com", ActiveRole: domain.RoleAdminStaff}},
	}}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "secret", "sid-1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth("secret", auth)
	handler := mw(func(c echo.Context) error {
		called = true
		user, _ := c.Get("user").(*domain.User)
		if user == nil || user.Email != "alice@x.com" {
			t.Fatalf("user not injected")
		}
		if c.Get("session_token") != "sid-1" {
			t.Fatalf("session token not injected")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingHeaderRedirectsToLogin(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{sessions: map[string]*domain.Session{}}

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", auth)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body loginRedirect
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Redirect != "/login" {
		t.Fatalf("redirect = %q, want /login", body.Redirect)
	}
	if body.From != "/projects" {
		t.Fatalf("from = %q, want the requested path", body.From)
	}
}

func TestAuthMiddleware_ValidTokenWithoutSession(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{sessions: map[string]*domain.Session{}}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "secret", "sid-gone"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", auth)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_WrongSignature(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{sessions: map[string]*domain.Session{
		"sid-1": {Token: "sid-1", User: &domain.User{ID: "u1"}},
	}}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret", "sid-1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", auth)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
