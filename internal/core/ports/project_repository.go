package ports

import (
	"context"

	"github.com/febic/fair-platform/internal/core/domain"
)

// ProjectRepository persists science-fair submissions.
type ProjectRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	ListByMember(ctx context.Context, userID string) ([]domain.Project, error)
	CountByStatus(ctx context.Context) (map[domain.ProjectStatus]int64, error)
	CountByCategory(ctx context.Context) (map[domain.ProjectCategory]int64, error)
	PaymentTotals(ctx context.Context) (PaymentTotals, error)
}

// PaymentTotals aggregates registration-fee amounts by payment state.
type PaymentTotals struct {
	Revenue    float64
	Pending    float64
	Overdue    float64
	Exemptions float64
}
