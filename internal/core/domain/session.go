package domain

// Session pairs an opaque bearer token with the authenticated user. A session
// exists only when both are present; a token without a readable user record
// is treated as corrupt and cleared by the store.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Valid reports whether the session carries both a token and a user.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// SessionState is the client-visible authentication lifecycle. Transitions
// are one-directional out of Loading: startup hydration resolves to either
// Authenticated or Unauthenticated, and only login/logout move between the
// latter two.
type SessionState int

const (
	SessionLoading SessionState = iota
	SessionUnauthenticated
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionLoading:
		return "loading"
	case SessionUnauthenticated:
		return "unauthenticated"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
