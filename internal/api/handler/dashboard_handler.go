package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/febic/fair-platform/internal/api/metrics"
	"github.com/febic/fair-platform/internal/core/ports"
)

// DashboardHandler resolves the active role to its dashboard summary.
type DashboardHandler struct {
	dashboards ports.DashboardService
}

func NewDashboardHandler(dashboards ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// Summary returns the dashboard for the caller's active role.
//
// @Summary      Dashboard for the active role
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.DashboardSummary
// @Failure      401  {object}  errorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	user, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	summary, err := h.dashboards.Summary(c.Request().Context(), user)
	if err != nil {
		return err
	}
	if summary.Fallback {
		metrics.DashboardFallbacksTotal.WithLabelValues(string(summary.Kind)).Inc()
	}
	return c.JSON(http.StatusOK, summary)
}
