package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/febic/fair-platform/internal/core/domain"
	"github.com/febic/fair-platform/internal/core/ports"
)

type stubProjectRepo struct {
	projects []domain.Project
	failAll  bool
}

var errRepoDown = errors.New("repository down")

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	if r.failAll {
		return nil, errRepoDown
	}
	for i := range r.projects {
		if r.projects[i].ID == id {
			return &r.projects[i], nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) List(_ context.Context) ([]domain.Project, error) {
	if r.failAll {
		return nil, errRepoDown
	}
	return r.projects, nil
}

func (r *stubProjectRepo) ListByMember(_ context.Context, userID string) ([]domain.Project, error) {
	if r.failAll {
		return nil, errRepoDown
	}
	var mine []domain.Project
	for _, p := range r.projects {
		if p.HasMember(userID) {
			mine = append(mine, p)
		}
	}
	return mine, nil
}

func (r *stubProjectRepo) CountByStatus(_ context.Context) (map[domain.ProjectStatus]int64, error) {
	if r.failAll {
		return nil, errRepoDown
	}
	out := make(map[domain.ProjectStatus]int64)
	for _, p := range r.projects {
		out[p.Status]++
	}
	return out, nil
}

func (r *stubProjectRepo) CountByCategory(_ context.Context) (map[domain.ProjectCategory]int64, error) {
	if r.failAll {
		return nil, errRepoDown
	}
	out := make(map[domain.ProjectCategory]int64)
	for _, p := range r.projects {
		out[p.Category]++
	}
	return out, nil
}

func (r *stubProjectRepo) PaymentTotals(_ context.Context) (ports.PaymentTotals, error) {
	if r.failAll {
		return ports.PaymentTotals{}, errRepoDown
	}
	var totals ports.PaymentTotals
	for _, p := range r.projects {
		switch p.PaymentStatus {
		case domain.PaymentPaid:
			totals.Revenue += p.FeeAmount
		case domain.PaymentPending:
			totals.Pending += p.FeeAmount
		case domain.PaymentOverdue:
			totals.Overdue += p.FeeAmount
		case domain.PaymentExempt:
			totals.Exemptions += p.FeeAmount
		}
	}
	return totals, nil
}

func adminActiveUser() *domain.User {
	return &domain.User{
		ID:         "admin1",
		Name:       "Admin",
		ActiveRole: domain.RoleAdminStaff,
		Roles:      []domain.RoleAssignment{{Role: domain.RoleAdminStaff, Status: domain.RoleStatusActive}},
	}
}

func TestDashboardService_AdminSummary(t *testing.T) {
	repo := &stubProjectRepo{projects: []domain.Project{
		{ID: "p1", Status: domain.ProjectSubmitted, Category: domain.CategoryEngineering},
		{ID: "p2", Status: domain.ProjectSelected, Category: domain.CategoryEngineering},
		{ID: "p3", Status: domain.ProjectSelected, Category: domain.CategoryHumanities},
	}}
	svc := NewDashboardService(repo, false, zerolog.Nop())

	summary, err := svc.Summary(context.Background(), adminActiveUser())
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if summary.Kind != domain.DashboardAdmin {
		t.Fatalf("kind = %q, want admin", summary.Kind)
	}
	if summary.Admin.TotalProjects != 3 {
		t.Fatalf("total = %d, want 3", summary.Admin.TotalProjects)
	}
	if summary.Admin.ProjectsByStatus[domain.ProjectSelected] != 2 {
		t.Fatalf("selected count = %d, want 2", summary.Admin.ProjectsByStatus[domain.ProjectSelected])
	}
	if summary.Admin.ProjectsByCategory[domain.CategoryEngineering] != 2 {
		t.Fatalf("engineering count = %d, want 2", summary.Admin.ProjectsByCategory[domain.CategoryEngineering])
	}
}

func TestDashboardService_FinancialSummary(t *testing.T) {
	repo := &stubProjectRepo{projects: []domain.Project{
		{ID: "p1", PaymentStatus: domain.PaymentPaid, FeeAmount: 100},
		{ID: "p2", PaymentStatus: domain.PaymentPending, FeeAmount: 50},
		{ID: "p3", PaymentStatus: domain.PaymentExempt, FeeAmount: 30},
	}}
	svc := NewDashboardService(repo, false, zerolog.Nop())

	user := &domain.User{ID: "f1", ActiveRole: domain.RoleFinancial}
	summary, err := svc.Summary(context.Background(), user)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if summary.Financial.TotalRevenue != 100 || summary.Financial.PendingPayments != 50 || summary.Financial.ExemptionsGranted != 30 {
		t.Fatalf("unexpected totals: %+v", summary.Financial)
	}
}

func TestDashboardService_EvaluatorQueueFiltersStatus(t *testing.T) {
	repo := &stubProjectRepo{projects: []domain.Project{
		{ID: "p1", Status: domain.ProjectSelected},
		{ID: "p2", Status: domain.ProjectDraft},
		{ID: "p3", Status: domain.ProjectFinalist},
	}}
	svc := NewDashboardService(repo, false, zerolog.Nop())

	user := &domain.User{ID: "e1", ActiveRole: domain.RoleEvaluator}
	summary, err := svc.Summary(context.Background(), user)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if len(summary.Projects) != 2 {
		t.Fatalf("queue length = %d, want 2", len(summary.Projects))
	}
}

func TestDashboardService_UnknownRoleGetsWelcome(t *testing.T) {
	svc := NewDashboardService(&stubProjectRepo{}, false, zerolog.Nop())

	user := &domain.User{ID: "u1", Name: "Maria"}
	summary, err := svc.Summary(context.Background(), user)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if summary.Kind != domain.DashboardWelcome {
		t.Fatalf("kind = %q, want welcome", summary.Kind)
	}
	if summary.Welcome == "" {
		t.Fatalf("welcome message missing")
	}
}

func TestDashboardService_RepositoryFailurePropagatesByDefault(t *testing.T) {
	svc := NewDashboardService(&stubProjectRepo{failAll: true}, false, zerolog.Nop())

	if _, err := svc.Summary(context.Background(), adminActiveUser()); !errors.Is(err, errRepoDown) {
		t.Fatalf("err = %v, want repository error", err)
	}
}

func TestDashboardService_FallbackIsOptInAndMarked(t *testing.T) {
	svc := NewDashboardService(&stubProjectRepo{failAll: true}, true, zerolog.Nop())

	summary, err := svc.Summary(context.Background(), adminActiveUser())
	if err != nil {
		t.Fatalf("Summary returned error with fallback enabled: %v", err)
	}
	if !summary.Fallback {
		t.Fatalf("fallback summary must be marked")
	}
	if summary.Admin == nil || summary.Admin.TotalProjects == 0 {
		t.Fatalf("fallback summary must carry sample data")
	}
}
