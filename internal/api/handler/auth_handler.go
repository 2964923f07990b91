package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/febic/fair-platform/internal/api/metrics"
	"github.com/febic/fair-platform/internal/core/domain"
	"github.com/febic/fair-platform/internal/core/ports"
)

// AuditSink receives security events without blocking the request path.
type AuditSink interface {
	Enqueue(event ports.AuditEvent)
}

type AuthHandler struct {
	authService ports.AuthService
	userService ports.UserService
	audit       AuditSink
	jwtSecret   string
	tokenTTL    time.Duration
}

func NewAuthHandler(authService ports.AuthService, userService ports.UserService, audit AuditSink, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthHandler{
		authService: authService,
		userService: userService,
		audit:       audit,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
	}
}

// Login authenticates a user and returns a bearer token plus the user record.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	sid, session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// never reveal which of the two fields was wrong
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "email or password incorrect"})
		}
		return err
	}

	bearer, err := h.mintToken(sid, session.User)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.audit.Enqueue(ports.AuditEvent{
		Type:      "login",
		Email:     session.User.Email,
		ActorID:   session.User.ID,
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, authResponse{Token: bearer, User: session.User})
}

// Logout clears the caller's session unconditionally.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	user, token, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	metrics.SessionsCleared.WithLabelValues("logout").Inc()
	h.audit.Enqueue(ports.AuditEvent{
		Type:      "logout",
		Email:     user.Email,
		ActorID:   user.ID,
		Timestamp: time.Now().UTC(),
	})

	return c.NoContent(http.StatusNoContent)
}

// Register creates a new account with one pending role assignment.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.userService.Register(c.Request().Context(), ports.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		CPF:            req.CPF,
		Phone:          req.Phone,
		Password:       req.Password,
		RoleType:       domain.Role(req.RoleType),
		Institution:    req.Institution,
		EducationLevel: req.EducationLevel,
		Field:          req.Field,
	})
	if err != nil {
		return err
	}

	h.audit.Enqueue(ports.AuditEvent{
		Type:      "register",
		Email:     user.Email,
		ActorID:   user.ID,
		Detail:    req.RoleType,
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Me returns the authenticated user record.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      401  {object}  errorResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{User: user})
}

// UpdateMe replaces the mutable parts of the session user. The token is
// unchanged; the active role must be backed by an active assignment.
//
// @Summary      Update current user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      updateUserRequest  true  "Updated fields"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /me [put]
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	user, token, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	updated := *user
	updated.Name = req.Name
	updated.Phone = req.Phone
	updated.Profile = req.Profile
	if req.ActiveRole != "" {
		updated.ActiveRole = req.ActiveRole
	}

	session, err := h.authService.UpdateUser(c.Request().Context(), token, &updated)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{User: session.User})
}

// mintToken wraps the opaque session token in a signed JWT so transport
// looks like any other bearer API; the session itself lives in the store.
func (h *AuthHandler) mintToken(sid string, user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sid":         sid,
		"email":       user.Email,
		"active_role": string(user.ActiveRole),
		"exp":         time.Now().Add(h.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.jwtSecret))
}
