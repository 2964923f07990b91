package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/febic/fair-platform/internal/core/domain"
	"github.com/febic/fair-platform/internal/core/ports"
)

// UserHandler covers user administration: role approval and CPF search.
type UserHandler struct {
	userService ports.UserService
	audit       AuditSink
}

func NewUserHandler(userService ports.UserService, audit AuditSink) *UserHandler {
	return &UserHandler{userService: userService, audit: audit}
}

// SearchByCPF backs the admin-side lookup widget.
//
// @Summary      Find a user by CPF
// @Tags         users
// @Produce      json
// @Param        cpf  query     string  true  "Document id"
// @Success      200  {object}  authResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/search [get]
func (h *UserHandler) SearchByCPF(c echo.Context) error {
	user, err := h.userService.SearchByCPF(c.Request().Context(), c.QueryParam("cpf"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{User: user})
}

// ApproveRole activates a pending role assignment, recording the approver
// and timestamp.
//
// @Summary      Approve a pending role assignment
// @Tags         users
// @Produce      json
// @Param        id    path      string  true  "User ID"
// @Param        role  path      string  true  "Role type"
// @Success      200   {object}  authResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id}/roles/{role}/approve [post]
func (h *UserHandler) ApproveRole(c echo.Context) error {
	approver, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	role := domain.Role(c.Param("role"))
	if !role.IsValid() {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown role type"})
	}

	user, err := h.userService.ApproveRole(c.Request().Context(), approver, c.Param("id"), role)
	if err != nil {
		return err
	}

	h.audit.Enqueue(ports.AuditEvent{
		Type:      "role_approved",
		Email:     user.Email,
		ActorID:   approver.ID,
		Detail:    string(role),
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, authResponse{User: user})
}
