package ports

import (
	"context"

	"github.com/febic/fair-platform/internal/core/domain"
)

// AuthService drives the session lifecycle.
type AuthService interface {
	// Hydrate resolves a persisted token at startup, moving the session state
	// out of Loading. An empty or unresolvable token lands Unauthenticated.
	Hydrate(ctx context.Context, token string) (*domain.Session, domain.SessionState)
	// Login authenticates against the user directory. Any mismatch — unknown
	// email or wrong password — fails with ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.Session, error)
	// Logout clears the persisted session unconditionally.
	Logout(ctx context.Context, token string) error
	// UpdateUser replaces the user record on an authenticated session without
	// touching the token.
	UpdateUser(ctx context.Context, token string, user *domain.User) (*domain.Session, error)
}
