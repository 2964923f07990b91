package domain

// Permission predicates over a user's role assignments. Only active-status
// assignments count. Every predicate tolerates a nil user and answers false.

// HasAnyRole reports whether the user holds at least one active assignment
// whose role is in required.
func HasAnyRole(u *User, required ...Role) bool {
	if u == nil {
		return false
	}
	for _, a := range u.Roles {
		if a.Status != RoleStatusActive {
			continue
		}
		for _, r := range required {
			if a.Role == r {
				return true
			}
		}
	}
	return false
}

// CanViewFinancial grants access to revenue and payment reports.
func CanViewFinancial(u *User) bool {
	return HasAnyRole(u, RoleAdminStaff, RoleFinancial)
}

// CanApproveUsers grants the ability to approve pending role assignments.
func CanApproveUsers(u *User) bool {
	return HasAnyRole(u, RoleAdminStaff, RoleAdminCoordinator)
}

// CanManageProjects grants project administration across the fair.
func CanManageProjects(u *User) bool {
	return HasAnyRole(u, RoleAdminStaff, RoleAdminCoordinator, RoleCoordinator)
}

// CanEvaluate grants access to the evaluation queue.
func CanEvaluate(u *User) bool {
	return HasAnyRole(u, RoleEvaluator)
}

// CanViewAllProjects grants read access to every project, not just the
// user's own.
func CanViewAllProjects(u *User) bool {
	return HasAnyRole(u, RoleAdminStaff, RoleAdminCoordinator, RoleCoordinator, RoleDirector)
}

// IsAdmin reports whether the user is platform staff.
func IsAdmin(u *User) bool {
	return HasAnyRole(u, RoleAdminStaff)
}

// IsCoordinator reports whether the user coordinates fairs.
func IsCoordinator(u *User) bool {
	return HasAnyRole(u, RoleAdminCoordinator, RoleCoordinator)
}
