package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisTokenKey is the fixed storage key for the Redis-backed store.
const redisTokenKey = "dashboard:session:token"

// RedisTokenStore persists the session token in Redis. Useful when the
// dashboard runs in a container without a writable home directory.
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore connects to Redis and verifies the connection.
func NewRedisTokenStore(ctx context.Context, redisURL string) (*RedisTokenStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	// Connection pool settings
	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)

	// Verify connection
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &RedisTokenStore{client: client}, nil
}

// Ping checks Redis connectivity.
func (s *RedisTokenStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (s *RedisTokenStore) Close() error {
	return s.client.Close()
}

// Token reads the persisted token. A missing key means no session.
func (s *RedisTokenStore) Token(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, redisTokenKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("read token key: %w", err)
	}
	return val, nil
}

// Save writes the token under the fixed key with no expiry. The token's
// validity is owned by the backend, not the store.
func (s *RedisTokenStore) Save(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, redisTokenKey, token, 0).Err(); err != nil {
		return fmt.Errorf("write token key: %w", err)
	}
	return nil
}

// Clear deletes the token key. Idempotent.
func (s *RedisTokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, redisTokenKey).Err(); err != nil {
		return fmt.Errorf("delete token key: %w", err)
	}
	return nil
}
