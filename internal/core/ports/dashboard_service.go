package ports

import (
	"context"

	"github.com/febic/fair-platform/internal/core/domain"
)

// DashboardSummary is the payload behind GET /dashboard. Kind selects the
// view; exactly one of the optional sections is populated for kinds that
// carry data. Fallback marks summaries built from sample data after a
// repository failure (development aid, off by default).
type DashboardSummary struct {
	Kind      domain.Dashboard  `json:"kind"`
	Fallback  bool              `json:"fallback,omitempty"`
	Admin     *AdminSummary     `json:"admin,omitempty"`
	Financial *FinancialSummary `json:"financial,omitempty"`
	Projects  []domain.Project  `json:"projects,omitempty"`
	Welcome   string            `json:"welcome,omitempty"`
}

// AdminSummary aggregates platform-wide project numbers.
type AdminSummary struct {
	TotalProjects      int64                            `json:"total_projects"`
	ProjectsByStatus   map[domain.ProjectStatus]int64   `json:"projects_by_status"`
	ProjectsByCategory map[domain.ProjectCategory]int64 `json:"projects_by_category"`
}

// FinancialSummary aggregates registration-fee money flows.
type FinancialSummary struct {
	TotalRevenue      float64 `json:"total_revenue"`
	PendingPayments   float64 `json:"pending_payments"`
	OverduePayments   float64 `json:"overdue_payments"`
	ExemptionsGranted float64 `json:"exemptions_granted"`
}

// DashboardService resolves the active role to its dashboard and builds the
// per-role summary.
type DashboardService interface {
	Summary(ctx context.Context, user *domain.User) (*DashboardSummary, error)
}
