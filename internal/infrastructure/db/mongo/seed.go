package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/febic/fair-platform/internal/core/domain"
)

// demoAccounts mirrors the demonstration directory of the original platform.
var demoAccounts = []struct {
	password string
	user     domain.User
}{
	{
		password: "admin123",
		user: domain.User{
			Email:    "admin@febic.com.br",
			CPF:      "123.456.789-00",
			Name:     "FEBIC Administrator",
			Phone:    "(11) 99999-9999",
			IsActive: true,
			Profile: domain.Profile{
				Institution:    "FEBIC - Administration",
				EducationLevel: "postgraduate",
				Field:          "Educational Administration",
			},
			ActiveRole: domain.RoleAdminStaff,
			Roles: []domain.RoleAssignment{
				{Role: domain.RoleAdminStaff, Status: domain.RoleStatusActive},
			},
		},
	},
	{
		password: "author123",
		user: domain.User{
			Email:    "author@febic.com.br",
			CPF:      "987.654.321-00",
			Name:     "Joao Silva",
			Phone:    "(11) 88888-8888",
			IsActive: true,
			Profile: domain.Profile{
				Institution:    "Federal University of Brazil",
				EducationLevel: "undergraduate",
				Field:          "Computer Science",
			},
			ActiveRole: domain.RoleAuthor,
			Roles: []domain.RoleAssignment{
				{Role: domain.RoleAuthor, Status: domain.RoleStatusActive},
			},
		},
	},
	{
		password: "eval123",
		user: domain.User{
			Email:    "evaluator@febic.com.br",
			CPF:      "456.789.123-00",
			Name:     "Dr. Maria Santos",
			Phone:    "(11) 77777-7777",
			IsActive: true,
			Profile: domain.Profile{
				Institution:    "Scientific Research Institute",
				EducationLevel: "postgraduate",
				Field:          "Exact and Earth Sciences",
				Lattes:         "http://lattes.cnpq.br/1234567890",
			},
			ActiveRole: domain.RoleEvaluator,
			Roles: []domain.RoleAssignment{
				{Role: domain.RoleEvaluator, Status: domain.RoleStatusActive},
			},
		},
	},
}

// SeedDemoUsers inserts the demonstration accounts when they do not exist
// yet. Intended for development environments only.
func SeedDemoUsers(ctx context.Context, repo *UserRepository, logger zerolog.Logger) error {
	now := time.Now().UTC()
	for _, acct := range demoAccounts {
		if _, err := repo.FindByEmail(ctx, acct.user.Email); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(acct.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := acct.user
		user.PasswordHash = string(hash)
		user.CreatedAt = now
		user.UpdatedAt = now
		for i := range user.Roles {
			user.Roles[i].Status = domain.RoleStatusActive
			user.Roles[i].CreatedAt = now
		}

		if _, err := repo.Create(ctx, &user); err != nil {
			return err
		}
		logger.Info().Str("email", user.Email).Str("active_role", string(user.ActiveRole)).Msg("seeded demo user")
	}
	return nil
}
