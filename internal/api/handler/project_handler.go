package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/febic/fair-platform/internal/core/ports"
)

// ProjectHandler serves project listings scoped to the caller.
type ProjectHandler struct {
	projects ports.ProjectService
}

func NewProjectHandler(projects ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List returns the projects visible to the caller: all of them for
// view-all-projects holders, only their own otherwise.
//
// @Summary      List visible projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   domain.Project
// @Failure      401  {object}  errorResponse
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	user, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	projects, err := h.projects.ListVisible(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get returns one project, requiring view-all-projects or membership.
//
// @Summary      Fetch a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  domain.Project
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	user, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	project, err := h.projects.Get(c.Request().Context(), user, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}
