package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/febic/fair-platform/internal/core/domain"
	"github.com/febic/fair-platform/internal/core/ports"
)

// DashboardService resolves a user's active role to a dashboard view and
// builds its summary. When allowFallback is set, repository failures degrade
// to sample data instead of an error; that path is a development aid and is
// logged and marked on the payload so it can never pass silently.
type DashboardService struct {
	projects      ports.ProjectRepository
	allowFallback bool
	logger        zerolog.Logger
}

func NewDashboardService(projects ports.ProjectRepository, allowFallback bool, logger zerolog.Logger) *DashboardService {
	return &DashboardService{projects: projects, allowFallback: allowFallback, logger: logger}
}

// Summary builds the dashboard payload for the user's active role. A nil
// user or a role outside the known set resolves to the welcome view.
func (s *DashboardService) Summary(ctx context.Context, user *domain.User) (*ports.DashboardSummary, error) {
	if user == nil {
		return &ports.DashboardSummary{Kind: domain.DashboardWelcome, Welcome: "Welcome to FEBIC!"}, nil
	}

	kind := domain.DashboardFor(user.ActiveRole)
	switch kind {
	case domain.DashboardAdmin, domain.DashboardDirector, domain.DashboardCoordinator:
		return s.adminSummary(ctx, kind)
	case domain.DashboardFinancial:
		return s.financialSummary(ctx)
	case domain.DashboardEvaluator:
		return s.evaluatorSummary(ctx)
	case domain.DashboardProjects:
		return s.projectsSummary(ctx, user)
	case domain.DashboardVolunteer, domain.DashboardFairAffiliate:
		return &ports.DashboardSummary{Kind: kind}, nil
	default:
		return &ports.DashboardSummary{
			Kind:    domain.DashboardWelcome,
			Welcome: fmt.Sprintf("Welcome to FEBIC, %s! Your dashboard is being prepared.", user.Name),
		}, nil
	}
}

func (s *DashboardService) adminSummary(ctx context.Context, kind domain.Dashboard) (*ports.DashboardSummary, error) {
	byStatus, err := s.projects.CountByStatus(ctx)
	if err != nil {
		return s.fallback(kind, err)
	}
	byCategory, err := s.projects.CountByCategory(ctx)
	if err != nil {
		return s.fallback(kind, err)
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}
	return &ports.DashboardSummary{
		Kind: kind,
		Admin: &ports.AdminSummary{
			TotalProjects:      total,
			ProjectsByStatus:   byStatus,
			ProjectsByCategory: byCategory,
		},
	}, nil
}

func (s *DashboardService) financialSummary(ctx context.Context) (*ports.DashboardSummary, error) {
	totals, err := s.projects.PaymentTotals(ctx)
	if err != nil {
		return s.fallback(domain.DashboardFinancial, err)
	}
	return &ports.DashboardSummary{
		Kind: domain.DashboardFinancial,
		Financial: &ports.FinancialSummary{
			TotalRevenue:      totals.Revenue,
			PendingPayments:   totals.Pending,
			OverduePayments:   totals.Overdue,
			ExemptionsGranted: totals.Exemptions,
		},
	}, nil
}

func (s *DashboardService) evaluatorSummary(ctx context.Context) (*ports.DashboardSummary, error) {
	all, err := s.projects.List(ctx)
	if err != nil {
		return s.fallback(domain.DashboardEvaluator, err)
	}
	queue := make([]domain.Project, 0, len(all))
	for _, p := range all {
		if p.Status == domain.ProjectSelected || p.Status == domain.ProjectFinalist {
			queue = append(queue, p)
		}
	}
	return &ports.DashboardSummary{Kind: domain.DashboardEvaluator, Projects: queue}, nil
}

func (s *DashboardService) projectsSummary(ctx context.Context, user *domain.User) (*ports.DashboardSummary, error) {
	mine, err := s.projects.ListByMember(ctx, user.ID)
	if err != nil {
		return s.fallback(domain.DashboardProjects, err)
	}
	return &ports.DashboardSummary{Kind: domain.DashboardProjects, Projects: mine}, nil
}

// fallback substitutes sample data for a failed summary when enabled.
func (s *DashboardService) fallback(kind domain.Dashboard, cause error) (*ports.DashboardSummary, error) {
	if !s.allowFallback {
		return nil, cause
	}
	s.logger.Warn().Err(cause).Str("dashboard", string(kind)).Msg("demo_fallback: substituting sample dashboard data")

	out := &ports.DashboardSummary{Kind: kind, Fallback: true}
	switch kind {
	case domain.DashboardFinancial:
		out.Financial = &ports.FinancialSummary{
			TotalRevenue:      125400.50,
			PendingPayments:   34200.00,
			OverduePayments:   8750.00,
			ExemptionsGranted: 15600.00,
		}
	case domain.DashboardEvaluator, domain.DashboardProjects:
		out.Projects = []domain.Project{}
	default:
		out.Admin = &ports.AdminSummary{
			TotalProjects: 1247,
			ProjectsByStatus: map[domain.ProjectStatus]int64{
				domain.ProjectSubmitted: 423,
				domain.ProjectSelected:  312,
				domain.ProjectEvaluated: 267,
				domain.ProjectAwarded:   45,
			},
			ProjectsByCategory: map[domain.ProjectCategory]int64{
				domain.CategoryExactSciences: 156,
				domain.CategoryBiology:       189,
				domain.CategoryHumanities:    245,
				domain.CategoryEngineering:   178,
			},
		}
	}
	return out, nil
}
