package domain

import "time"

// Role is the closed set of roles a user can hold on the platform.
type Role string

const (
	RoleAuthor           Role = "author"
	RoleAdvisor          Role = "advisor"
	RoleCoAdvisor        Role = "co_advisor"
	RoleEvaluator        Role = "evaluator"
	RoleVolunteer        Role = "volunteer"
	RoleAffiliatedFair   Role = "affiliated_fair"
	RoleCoordinator      Role = "coordinator"
	RoleAdminCoordinator Role = "admin_coordinator"
	RoleDirector         Role = "director"
	RoleFinancial        Role = "financial"
	RoleAdminStaff       Role = "admin_staff"
)

// AllRoles lists every valid role, in declaration order.
var AllRoles = []Role{
	RoleAuthor,
	RoleAdvisor,
	RoleCoAdvisor,
	RoleEvaluator,
	RoleVolunteer,
	RoleAffiliatedFair,
	RoleCoordinator,
	RoleAdminCoordinator,
	RoleDirector,
	RoleFinancial,
	RoleAdminStaff,
}

// IsValid reports whether r is one of the eleven declared roles.
func (r Role) IsValid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// RoleStatus is the approval state of a role assignment.
type RoleStatus string

const (
	RoleStatusActive   RoleStatus = "active"
	RoleStatusPending  RoleStatus = "pending"
	RoleStatusRejected RoleStatus = "rejected"
	RoleStatusInactive RoleStatus = "inactive"
)

// RoleAssignment grants a role to a user. Assignments are independently
// approvable and revocable; only active assignments confer permissions.
type RoleAssignment struct {
	Role       Role       `json:"role"`
	Status     RoleStatus `json:"status"`
	ApprovedBy string     `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Profile carries the academic background attached to a user.
type Profile struct {
	Institution    string `json:"institution,omitempty"`
	EducationLevel string `json:"education_level,omitempty"`
	Field          string `json:"field,omitempty"`
	Lattes         string `json:"lattes,omitempty"`
}

// User models a platform participant. A user may hold several role
// assignments concurrently; ActiveRole is the one the user is currently
// operating as and must match an active-status assignment.
type User struct {
	ID           string           `json:"id"`
	Email        string           `json:"email"`
	CPF          string           `json:"cpf"`
	Name         string           `json:"name"`
	Phone        string           `json:"phone,omitempty"`
	PasswordHash string           `json:"-"`
	IsActive     bool             `json:"is_active"`
	Profile      Profile          `json:"profile"`
	Roles        []RoleAssignment `json:"roles"`
	ActiveRole   Role             `json:"active_role,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ActiveAssignment returns the assignment for role when it exists with
// active status.
func (u *User) ActiveAssignment(role Role) (RoleAssignment, bool) {
	for _, a := range u.Roles {
		if a.Role == role && a.Status == RoleStatusActive {
			return a, true
		}
	}
	return RoleAssignment{}, false
}
