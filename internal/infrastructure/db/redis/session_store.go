package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/febic/fair-platform/internal/api/metrics"
	"github.com/febic/fair-platform/internal/core/domain"
)

// SessionStore persists sessions under two string keys per token, mirroring
// the token/user split of the client storage layout:
//
//	session:token:<token> → the bearer token
//	session:user:<token>  → the serialized user record
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewSessionStore(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl, logger: logger}
}

// Load resolves a token to its session. A present token with an absent or
// unparseable user record is corrupt: both keys are cleared and no session
// is returned (fail closed).
func (s *SessionStore) Load(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, nil
	}

	stored, err := s.client.Get(ctx, tokenKey(token)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session load: %w", err)
	}

	raw, err := s.client.Get(ctx, userKey(token)).Bytes()
	if err == redis.Nil {
		s.clearCorrupt(ctx, token, domain.ErrSessionCorrupt)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session load: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		s.clearCorrupt(ctx, token, domain.ErrSessionCorrupt)
		return nil, nil
	}

	return &domain.Session{Token: stored, User: &user}, nil
}

// Save writes both keys with the store TTL. Last completed write wins.
func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	if !session.Valid() {
		return domain.ErrSessionCorrupt
	}

	raw, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("session save: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, tokenKey(session.Token), session.Token, s.ttl)
	pipe.Set(ctx, userKey(session.Token), raw, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Clear removes both keys unconditionally.
func (s *SessionStore) Clear(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, tokenKey(token), userKey(token)).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

func (s *SessionStore) clearCorrupt(ctx context.Context, token string, cause error) {
	metrics.SessionsCleared.WithLabelValues("corrupt").Inc()
	s.logger.Warn().Err(cause).Msg("clearing corrupt session record")
	if err := s.Clear(ctx, token); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear corrupt session")
	}
}

func tokenKey(token string) string { return "session:token:" + token }
func userKey(token string) string  { return "session:user:" + token }
