// Package session persists Session Gate state per browser session.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ispdesk/internal/domain/gate"
)

// RedisStore keeps each session's gate state as a JSON value under prefix+sessionID.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore. A zero ttl stores state without
// expiry, so the gate stays connected until an explicit disconnect.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Load returns the stored state, or Disconnected when the key is absent.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (gate.State, error) {
	if sessionID == "" {
		return gate.Disconnected(), nil
	}

	data, err := s.client.Get(ctx, s.buildKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return gate.Disconnected(), nil
		}
		return gate.State{}, fmt.Errorf("failed to load gate state from redis: %w", err)
	}

	var state gate.State
	if err := json.Unmarshal(data, &state); err != nil {
		return gate.State{}, fmt.Errorf("failed to unmarshal gate state: %w", err)
	}

	return state, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, state gate.State) error {
	if sessionID == "" {
		return errors.New("session ID cannot be empty")
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal gate state: %w", err)
	}

	if err := s.client.Set(ctx, s.buildKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store gate state in redis: %w", err)
	}

	return nil
}

// Clear deletes the state. Deleting a missing key is not an error.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.buildKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear gate state in redis: %w", err)
	}
	return nil
}

func (s *RedisStore) buildKey(sessionID string) string {
	return s.prefix + sessionID
}
