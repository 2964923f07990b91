package ports

import (
	"context"

	"github.com/febic/fair-platform/internal/core/domain"
)

// SessionStore persists sessions in durable key-value storage, two keys per
// token: the bearer token itself and the serialized user record.
type SessionStore interface {
	// Load resolves a token to its session. A missing token yields (nil, nil).
	// A present token whose user record is absent or unparseable is corrupt:
	// the store clears both keys and yields (nil, nil) — fail closed.
	Load(ctx context.Context, token string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Clear(ctx context.Context, token string) error
}
