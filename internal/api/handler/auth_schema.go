package handler

import (
	"github.com/febic/fair-platform/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name                 string `json:"name"                  validate:"required"`
	Email                string `json:"email"                 validate:"required,email"`
	CPF                  string `json:"cpf"                   validate:"required"`
	Phone                string `json:"phone"`
	Password             string `json:"password"              validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	RoleType             string `json:"role_type"             validate:"required"`
	Institution          string `json:"institution"`
	EducationLevel       string `json:"education_level"`
	Field                string `json:"field"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type updateUserRequest struct {
	Name       string         `json:"name"  validate:"required"`
	Phone      string         `json:"phone"`
	Profile    domain.Profile `json:"profile"`
	ActiveRole domain.Role    `json:"active_role"`
}
