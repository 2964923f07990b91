package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/febic/fair-platform/internal/core/domain"
	"github.com/febic/fair-platform/internal/core/ports"
)

type stubAuthService struct {
	email    string
	password string
	user     *domain.User
}

func (s *stubAuthService) Hydrate(_ context.Context, token string) (*domain.Session, domain.SessionState) {
	return nil, domain.SessionUnauthenticated
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.Session, error) {
	if email != s.email || password != s.password {
		return "", nil, domain.ErrInvalidCredentials
	}
	return "sid-1", &domain.Session{Token: "sid-1", User: s.user}, nil
}

func (s *stubAuthService) Logout(_ context.Context, _ string) error { return nil }

func (s *stubAuthService) UpdateUser(_ context.Context, token string, user *domain.User) (*domain.Session, error) {
	return &domain.Session{Token: token, User: user}, nil
}

type stubUserService struct {
	registered *ports.RegisterInput
}

func (s *stubUserService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	s.registered = &input
	return &domain.User{
		ID:    "new1",
		Email: input.Email,
		Name:  input.Name,
		Roles: []domain.RoleAssignment{{Role: input.RoleType, Status: domain.RoleStatusPending}},
	}, nil
}

func (s *stubUserService) ApproveRole(_ context.Context, _ *domain.User, _ string, _ domain.Role) (*domain.User, error) {
	return nil, domain.ErrRoleNotAssigned
}

func (s *stubUserService) SearchByCPF(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

type stubAudit struct {
	events []ports.AuditEvent
}

func (s *stubAudit) Enqueue(event ports.AuditEvent) {
	s.events = append(s.events, event)
}

func adminDemoUser() *domain.User {
	return &domain.User{
		ID:         "u1",
		Email:      "admin@x.com",
		Name:       "Admin",
		ActiveRole: domain.RoleAdminStaff,
		Roles:      []domain.RoleAssignment{{Role: domain.RoleAdminStaff, Status: domain.RoleStatusActive}},
	}
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	audit := &stubAudit{}
	h := NewAuthHandler(
		&stubAuthService{email: "admin@x.com", password: "admin123", user: adminDemoUser()},
		&stubUserService{}, audit, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"admin@x.com","password":"admin123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a bearer token")
	}
	if resp.User == nil || resp.User.ActiveRole != domain.RoleAdminStaff {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}
	if len(audit.events) != 1 || audit.events[0].Type != "login" {
		t.Fatalf("expected one login audit event, got %+v", audit.events)
	}
}

func TestAuthHandler_Login_InvalidCredentialsGenericMessage(t *testing.T) {
	h := NewAuthHandler(
		&stubAuthService{email: "admin@x.com", password: "admin123", user: adminDemoUser()},
		&stubUserService{}, &stubAudit{}, "secret", time.Hour)

	// wrong password and unknown email must be indistinguishable
	for _, body := range []string{
		`{"email":"admin@x.com","password":"wrong"}`,
		`{"email":"ghost@x.com","password":"admin123"}`,
	} {
		c, rec := newTestContext(t, http.MethodPost, "/auth/login", body)
		if err := h.Login(c); err != nil {
			t.Fatalf("Login returned error: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}

		var resp errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if resp.Error != "email or password incorrect" {
			t.Fatalf("error message = %q, must not reveal which field was wrong", resp.Error)
		}
	}
}

func TestAuthHandler_Login_RejectsInvalidPayload(t *testing.T) {
	h := NewAuthHandler(
		&stubAuthService{}, &stubUserService{}, &stubAudit{}, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"not-an-email","password":""}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_CreatesPendingUser(t *testing.T) {
	userService := &stubUserService{}
	h := NewAuthHandler(&stubAuthService{}, userService, &stubAudit{}, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register", `{
		"name": "Ana Costa",
		"email": "ana@x.com",
		"cpf": "111.222.333-44",
		"password": "longenough",
		"password_confirmation": "longenough",
		"role_type": "author"
	}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if userService.registered == nil || userService.registered.RoleType != domain.RoleAuthor {
		t.Fatalf("register input not forwarded: %+v", userService.registered)
	}
}

func TestAuthHandler_Register_PasswordConfirmationMismatch(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubUserService{}, &stubAudit{}, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register", `{
		"name": "Ana Costa",
		"email": "ana@x.com",
		"cpf": "111.222.333-44",
		"password": "longenough",
		"password_confirmation": "different1",
		"role_type": "author"
	}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubUserService{}, &stubAudit{}, "secret", time.Hour)

	c, rec := newTestContext(t, http.MethodGet, "/me", "")
	c.Set("user", adminDemoUser())
	c.Set("session_token", "sid-1")

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
