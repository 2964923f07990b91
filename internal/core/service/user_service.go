package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/febic/fair-platform/internal/core/domain"
	"github.com/febic/fair-platform/internal/core/ports"
)

// UserService implements registration, role approval and CPF search.
type UserService struct {
	directory ports.UserDirectory
	logger    zerolog.Logger
}

func NewUserService(directory ports.UserDirectory, logger zerolog.Logger) *UserService {
	return &UserService{directory: directory, logger: logger}
}

// Register creates an account with a single pending role assignment. The
// active role is left unset until an approver activates the assignment.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !input.RoleType.IsValid() {
		return nil, domain.ErrRoleNotAssigned
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		CPF:          input.CPF,
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		IsActive:     true,
		Profile: domain.Profile{
			Institution:    input.Institution,
			EducationLevel: input.EducationLevel,
			Field:          input.Field,
		},
		Roles: []domain.RoleAssignment{{
			Role:      input.RoleType,
			Status:    domain.RoleStatusPending,
			CreatedAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.directory.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("requested_role", string(input.RoleType)).Msg("user registered")
	return created, nil
}

// ApproveRole flips a pending assignment to active, recording who approved it
// and when. The first approved role becomes the user's active role.
func (s *UserService) ApproveRole(ctx context.Context, approver *domain.User, userID string, role domain.Role) (*domain.User, error) {
	if !domain.CanApproveUsers(approver) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.directory.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	approved := false
	now := time.Now().UTC()
	for i := range user.Roles {
		if user.Roles[i].Role != role {
			continue
		}
		user.Roles[i].Status = domain.RoleStatusActive
		user.Roles[i].ApprovedBy = approver.ID
		user.Roles[i].ApprovedAt = &now
		approved = true
		break
	}
	if !approved {
		return nil, domain.ErrRoleNotAssigned
	}

	if user.ActiveRole == "" {
		user.ActiveRole = role
	}
	user.UpdatedAt = now

	if err := s.directory.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(role)).Str("approved_by", approver.ID).Msg("role approved")
	return user, nil
}

// SearchByCPF backs the admin-side user search widget.
func (s *UserService) SearchByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	if cpf == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.directory.FindByCPF(ctx, cpf)
}
