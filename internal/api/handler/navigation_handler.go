package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/febic/fair-platform/internal/core/domain"
)

// NavigationHandler serves the active-role menu.
type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

type navigationResponse struct {
	ActiveRole domain.Role        `json:"active_role"`
	Entries    []domain.MenuEntry `json:"entries"`
}

// Menu returns the ordered navigation entries for the user's active role.
// Unknown or absent roles get an empty menu, never an error.
//
// @Summary      Navigation menu for the active role
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  navigationResponse
// @Failure      401  {object}  errorResponse
// @Router       /navigation [get]
func (h *NavigationHandler) Menu(c echo.Context) error {
	user, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	entries := domain.MenuFor(user.ActiveRole)
	if entries == nil {
		entries = []domain.MenuEntry{}
	}
	return c.JSON(http.StatusOK, navigationResponse{
		ActiveRole: user.ActiveRole,
		Entries:    entries,
	})
}
