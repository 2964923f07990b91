package ports

import (
	"context"

	"github.com/febic/fair-platform/internal/core/domain"
)

// RegisterInput carries everything needed to create an account with one
// pending role assignment.
type RegisterInput struct {
	Name           string
	Email          string
	CPF            string
	Phone          string
	Password       string
	RoleType       domain.Role
	Institution    string
	EducationLevel string
	Field          string
}

// UserService covers account creation, role approval and the admin-side
// search widget.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// ApproveRole flips a pending assignment to active, recording the
	// approver and timestamp. The approver must hold approve-users.
	ApproveRole(ctx context.Context, approver *domain.User, userID string, role domain.Role) (*domain.User, error)
	SearchByCPF(ctx context.Context, cpf string) (*domain.User, error)
}
