package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/febic/fair-platform/internal/core/domain"
	"github.com/febic/fair-platform/internal/core/ports"
)

func TestUserService_Register_PendingAssignment(t *testing.T) {
	dir := newStubDirectory()
	svc := NewUserService(dir, zerolog.Nop())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Ana Costa",
		Email:    "ana@x.com",
		CPF:      "111.222.333-44",
		Password: "longenough",
		RoleType: domain.RoleAuthor,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "longenough" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.ActiveRole != "" {
		t.Fatalf("active role must be unset until approval, got %q", user.ActiveRole)
	}
	if len(user.Roles) != 1 || user.Roles[0].Status != domain.RoleStatusPending {
		t.Fatalf("expected one pending assignment, got %+v", user.Roles)
	}
}

func TestUserService_Register_UnknownRole(t *testing.T) {
	svc := NewUserService(newStubDirectory(), zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "longenough",
		RoleType: domain.Role("superuser"),
	})
	if !errors.Is(err, domain.ErrRoleNotAssigned) {
		t.Fatalf("err = %v, want ErrRoleNotAssigned", err)
	}
}

func TestUserService_ApproveRole(t *testing.T) {
	dir := newStubDirectory()
	svc := NewUserService(dir, zerolog.Nop())
	approver := seedUser(t, dir, "admin@x.com", "admin123", domain.RoleAdminStaff)

	pending, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Pedro Lima",
		Email:    "pedro@x.com",
		Password: "longenough",
		RoleType: domain.RoleEvaluator,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	approved, err := svc.ApproveRole(context.Background(), approver, pending.ID, domain.RoleEvaluator)
	if err != nil {
		t.Fatalf("ApproveRole returned error: %v", err)
	}

	assignment, ok := approved.ActiveAssignment(domain.RoleEvaluator)
	if !ok {
		t.Fatalf("assignment not active after approval: %+v", approved.Roles)
	}
	if assignment.ApprovedBy != approver.ID {
		t.Fatalf("approved_by = %q, want approver id", assignment.ApprovedBy)
	}
	if assignment.ApprovedAt == nil {
		t.Fatalf("approval timestamp missing")
	}
	if approved.ActiveRole != domain.RoleEvaluator {
		t.Fatalf("first approved role must become active role, got %q", approved.ActiveRole)
	}
}

func TestUserService_ApproveRole_RequiresApproverPermission(t *testing.T) {
	dir := newStubDirectory()
	svc := NewUserService(dir, zerolog.Nop())
	author := seedUser(t, dir, "author@x.com", "author123", domain.RoleAuthor)
	target := seedUser(t, dir, "target@x.com", "target123", domain.RoleEvaluator)

	if _, err := svc.ApproveRole(context.Background(), author, target.ID, domain.RoleEvaluator); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestUserService_ApproveRole_NotAssigned(t *testing.T) {
	dir := newStubDirectory()
	svc := NewUserService(dir, zerolog.Nop())
	approver := seedUser(t, dir, "admin@x.com", "admin123", domain.RoleAdminStaff)
	target := seedUser(t, dir, "target@x.com", "target123", domain.RoleAuthor)

	if _, err := svc.ApproveRole(context.Background(), approver, target.ID, domain.RoleDirector); !errors.Is(err, domain.ErrRoleNotAssigned) {
		t.Fatalf("err = %v, want ErrRoleNotAssigned", err)
	}
}

func TestUserService_SearchByCPF(t *testing.T) {
	dir := newStubDirectory()
	svc := NewUserService(dir, zerolog.Nop())
	seeded := seedUser(t, dir, "admin@x.com", "admin123", domain.RoleAdminStaff)
	seeded.CPF = "123.456.789-00"
	if err := dir.Update(context.Background(), seeded); err != nil {
		t.Fatalf("update seeded user: %v", err)
	}

	found, err := svc.SearchByCPF(context.Background(), "123.456.789-00")
	if err != nil {
		t.Fatalf("SearchByCPF returned error: %v", err)
	}
	if found.Email != "admin@x.com" {
		t.Fatalf("found wrong user: %q", found.Email)
	}

	if _, err := svc.SearchByCPF(context.Background(), ""); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("empty cpf must not match, got %v", err)
	}
}
