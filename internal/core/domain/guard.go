package domain

// GuardDecision is the outcome of evaluating a protected route.
type GuardDecision int

const (
	// GuardPending means session hydration is still in flight; render a
	// neutral pending state and do not redirect.
	GuardPending GuardDecision = iota
	// GuardRedirectLogin sends the visitor to the login route, carrying the
	// originally requested path so login can return there.
	GuardRedirectLogin
	// GuardRedirectUnauthorized sends an authenticated user whose active role
	// is not allowed to the unauthorized route.
	GuardRedirectUnauthorized
	// GuardAllow renders the requested route.
	GuardAllow
)

func (d GuardDecision) String() string {
	switch d {
	case GuardPending:
		return "pending"
	case GuardRedirectLogin:
		return "redirect_login"
	case GuardRedirectUnauthorized:
		return "redirect_unauthorized"
	default:
		return "allow"
	}
}

// GuardResult carries the decision plus the path to return to after login.
type GuardResult struct {
	Decision GuardDecision
	From     string
}

// RouteRule annotates a protected path. An empty AllowedRoles list means any
// authenticated user may enter; RequireAuth false opens the route entirely.
type RouteRule struct {
	Path         string
	RequireAuth  bool
	AllowedRoles []Role
}

// DecideRoute evaluates the access-control checkpoint for a route. The clause
// order is load-bearing: Loading is checked before the auth requirement so a
// user whose session is still hydrating is never bounced to login.
func DecideRoute(state SessionState, user *User, rule RouteRule) GuardResult {
	if state == SessionLoading {
		return GuardResult{Decision: GuardPending}
	}
	if rule.RequireAuth && state != SessionAuthenticated {
		return GuardResult{Decision: GuardRedirectLogin, From: rule.Path}
	}
	if len(rule.AllowedRoles) > 0 && user != nil && user.ActiveRole != "" {
		for _, r := range rule.AllowedRoles {
			if user.ActiveRole == r {
				return GuardResult{Decision: GuardAllow}
			}
		}
		return GuardResult{Decision: GuardRedirectUnauthorized}
	}
	return GuardResult{Decision: GuardAllow}
}
