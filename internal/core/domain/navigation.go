package domain

// MenuEntry is one navigation item presented to the user.
type MenuEntry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

// Dashboard identifies which dashboard view an active role resolves to.
type Dashboard string

const (
	DashboardAdmin         Dashboard = "admin"
	DashboardDirector      Dashboard = "director"
	DashboardCoordinator   Dashboard = "coordinator"
	DashboardFinancial     Dashboard = "financial"
	DashboardEvaluator     Dashboard = "evaluator"
	DashboardVolunteer     Dashboard = "volunteer"
	DashboardFairAffiliate Dashboard = "fair_affiliate"
	DashboardProjects      Dashboard = "projects"
	DashboardWelcome       Dashboard = "welcome"
)

// menusByRole is the static role→menu table. Order within each slice is the
// order entries are rendered.
var menusByRole = map[Role][]MenuEntry{
	RoleAdminStaff: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
		{Label: "Projects", Path: "/projects", Icon: "file-text"},
		{Label: "Users", Path: "/users", Icon: "users"},
		{Label: "Evaluations", Path: "/evaluations", Icon: "award"},
		{Label: "Financial", Path: "/financial", Icon: "dollar-sign"},
		{Label: "Reports", Path: "/reports", Icon: "bar-chart"},
		{Label: "Settings", Path: "/settings", Icon: "settings"},
	},
	RoleAdminCoordinator: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
		{Label: "Projects", Path: "/projects", Icon: "file-text"},
		{Label: "Users", Path: "/users", Icon: "users"},
		{Label: "Evaluations", Path: "/evaluations", Icon: "award"},
		{Label: "Reports", Path: "/reports", Icon: "bar-chart"},
	},
	RoleCoordinator: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
		{Label: "Projects", Path: "/projects", Icon: "file-text"},
		{Label: "Evaluations", Path: "/evaluations", Icon: "award"},
		{Label: "Reports", Path: "/reports", Icon: "bar-chart"},
	},
	RoleDirector: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
		{Label: "Projects", Path: "/projects", Icon: "file-text"},
		{Label: "Reports", Path: "/reports", Icon: "bar-chart"},
	},
	RoleFinancial: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
		{Label: "Financial", Path: "/financial", Icon: "dollar-sign"},
		{Label: "Reports", Path: "/reports", Icon: "bar-chart"},
	},
	RoleEvaluator: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
		{Label: "Evaluations", Path: "/evaluations", Icon: "award"},
		{Label: "Schedule", Path: "/schedule", Icon: "book-open"},
	},
	RoleAuthor: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
		{Label: "My Projects", Path: "/my-projects", Icon: "file-text"},
		{Label: "Notifications", Path: "/notifications", Icon: "bell"},
	},
	RoleAdvisor: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
		{Label: "My Projects", Path: "/my-projects", Icon: "file-text"},
		{Label: "Students", Path: "/students", Icon: "user-check"},
	},
	RoleCoAdvisor: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
		{Label: "My Projects", Path: "/my-projects", Icon: "file-text"},
	},
	RoleAffiliatedFair: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
		{Label: "Credentials", Path: "/credentials", Icon: "users"},
	},
	RoleVolunteer: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
		{Label: "Notices", Path: "/notices", Icon: "bell"},
	},
}

// MenuFor returns the navigation entries for a role. Unknown or absent roles
// get an empty menu rather than an error.
func MenuFor(role Role) []MenuEntry {
	return menusByRole[role]
}

// DashboardFor maps an active role to its dashboard view. Roles on the same
// dashboard share it deliberately: authors, advisors and co-advisors all work
// from the project dashboard, and both coordinator roles share the
// coordinator dashboard. Anything else falls back to the generic welcome.
func DashboardFor(role Role) Dashboard {
	switch role {
	case RoleAdminStaff:
		return DashboardAdmin
	case RoleDirector:
		return DashboardDirector
	case RoleAdminCoordinator, RoleCoordinator:
		return DashboardCoordinator
	case RoleFinancial:
		return DashboardFinancial
	case RoleEvaluator:
		return DashboardEvaluator
	case RoleVolunteer:
		return DashboardVolunteer
	case RoleAffiliatedFair:
		return DashboardFairAffiliate
	case RoleAuthor, RoleAdvisor, RoleCoAdvisor:
		return DashboardProjects
	default:
		return DashboardWelcome
	}
}
