// Package cache provides the Redis and in-memory draft session stores.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/listing"
)

// housekeepingTTL bounds how long an abandoned draft key can linger. Logical
// expiry is enforced by the session manager; this only keeps Redis tidy.
const housekeepingTTL = 24 * time.Hour

// RedisStore implements listing.SessionStore on Redis, one JSON payload per
// submitter.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
	Prefix   string
}

// NewRedisStore creates a new Redis session store.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "draft:"
	}

	return &RedisStore{
		client: client,
		prefix: prefix,
	}, nil
}

// Get returns the open draft for sender, or nil when none exists.
func (s *RedisStore) Get(ctx context.Context, sender string) (*listing.Draft, error) {
	payload, err := s.client.Get(ctx, s.prefix+sender).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	draft := &listing.Draft{}
	if err := json.Unmarshal(payload, draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return draft, nil
}

// Put stores the draft under its sender key.
func (s *RedisStore) Put(ctx context.Context, draft *listing.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+draft.Sender, payload, housekeepingTTL).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes the draft for sender. Deleting an absent draft is not an
// error.
func (s *RedisStore) Delete(ctx context.Context, sender string) error {
	if err := s.client.Del(ctx, s.prefix+sender).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
