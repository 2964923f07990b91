package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/febic/fair-platform/internal/core/domain"
	"github.com/febic/fair-platform/internal/core/ports"
)

// AuthService implements the session lifecycle: startup hydration, login,
// logout and user replacement. State flows one way out of Loading — Hydrate
// resolves to Authenticated or Unauthenticated, and only Login/Logout move
// between those two afterwards.
type AuthService struct {
	directory ports.UserDirectory
	sessions  ports.SessionStore
	logger    zerolog.Logger
}

func NewAuthService(directory ports.UserDirectory, sessions ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{directory: directory, sessions: sessions, logger: logger}
}

// Hydrate resolves a persisted token at startup. Store errors and corrupt
// records both land Unauthenticated; the store has already cleared the keys.
func (s *AuthService) Hydrate(ctx context.Context, token string) (*domain.Session, domain.SessionState) {
	if token == "" {
		return nil, domain.SessionUnauthenticated
	}
	session, err := s.sessions.Load(ctx, token)
	if err != nil {
		s.logger.Warn().Err(err).Msg("session hydration failed")
		return nil, domain.SessionUnauthenticated
	}
	if !session.Valid() {
		return nil, domain.SessionUnauthenticated
	}
	return session, domain.SessionAuthenticated
}

// Login authenticates email/password against the directory and persists a
// fresh session. Unknown email and wrong password are deliberately
// indistinguishable: both fail with ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{Token: uuid.NewString(), User: user}
	if err := s.sessions.Save(ctx, session); err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("active_role", string(user.ActiveRole)).Msg("login succeeded")
	return session.Token, session, nil
}

// Logout clears the persisted session unconditionally.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Clear(ctx, token)
}

// UpdateUser replaces the user record on an existing session, keeping the
// token. The replacement's active role must be backed by an active-status
// assignment.
func (s *AuthService) UpdateUser(ctx context.Context, token string, user *domain.User) (*domain.Session, error) {
	session, err := s.sessions.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	if !session.Valid() {
		return nil, domain.ErrInvalidCredentials
	}
	if user.ActiveRole != "" {
		if _, ok := user.ActiveAssignment(user.ActiveRole); !ok {
			return nil, domain.ErrRoleNotAssigned
		}
	}

	// directory first; a rejected update must not leak into the session
	if err := s.directory.Update(ctx, user); err != nil {
		return nil, err
	}

	session.User = user
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
