package ports

import (
	"context"

	"github.com/febic/fair-platform/internal/core/domain"
)

// UserDirectory is the lookup-by-email credential directory backing
// authentication, plus the persistence operations the user-management
// surface needs.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByCPF(ctx context.Context, cpf string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
