package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore tracks revoked JWT ids so logout invalidates a bearer token
// before its natural expiry. Key format: revoked:<jti>
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Revoke marks the token id as revoked. The entry expires when the token
// itself would have, so the set never grows unbounded.
func (s *SessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(tokenID), "1", ttl).Err()
}

// IsRevoked reports whether the token id has been revoked.
func (s *SessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *SessionStore) key(tokenID string) string {
	return "revoked:" + tokenID
}
