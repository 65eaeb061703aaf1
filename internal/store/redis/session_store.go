package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/scribekit/scribe/internal/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore implements domain.SessionResolver on redis string keys.
// Session issuance lives elsewhere; this side only resolves tokens.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a redis-backed session resolver.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// ResolveEmail maps a session token to the authenticated user's email.
func (s *SessionStore) ResolveEmail(ctx context.Context, token string) (string, error) {
	email, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrUnauthenticated
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}
	return email, nil
}
