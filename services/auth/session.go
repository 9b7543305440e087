// File: services/auth/session.go
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookingsite/utils"

	"github.com/go-redis/redis/v8"
)

// RedisSessionStore keeps sessions as JSON values with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

// Save saves the session in Redis with a TTL.
func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, session Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.Client.Set(ctx, utils.SessionPrefix+sessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load retrieves the session from Redis.
func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (*Session, error) {
	data, err := s.Client.Get(ctx, utils.SessionPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes a session from Redis.
func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, utils.SessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
