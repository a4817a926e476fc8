package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenStore is the blacklist consulted on every authenticated request and
// written on logout. Tokens are stateless otherwise, so this is the only
// server-side session state.
type TokenStore interface {
	AddBlacklist(ctx context.Context, token string, ttl time.Duration) error
	InBlacklist(ctx context.Context, token string) (bool, error)
}

// SessionManager is the Redis-backed TokenStore.
type SessionManager struct {
	rdb *redis.Client
}

func NewSessionManager(rdb *redis.Client) *SessionManager {
	return &SessionManager{rdb: rdb}
}

// AddBlacklist invalidates a token for the remainder of its lifetime.
func (s *SessionManager) AddBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to block
	}
	key := fmt.Sprintf("lk:black:%s", token)
	return s.rdb.Set(ctx, key, "1", ttl).Err()
}

// InBlacklist reports whether a token has been invalidated by logout.
func (s *SessionManager) InBlacklist(ctx context.Context, token string) (bool, error) {
	key := fmt.Sprintf("lk:black:%s", token)
	res, err := s.rdb.Exists(ctx, key).Result()
	return res == 1, err
}
