package ports

import (
	"context"

	"github.com/febic/fair-platform/internal/core/domain"
)

// ProjectService exposes project listings, scoped by the caller's
// permissions: view-all-projects holders see everything, everyone else sees
// only projects they are a member of.
type ProjectService interface {
	ListVisible(ctx context.Context, viewer *domain.User) ([]domain.Project, error)
	Get(ctx context.Context, viewer *domain.User, id string) (*domain.Project, error)
}
