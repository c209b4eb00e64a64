package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	planio "github.com/matzehuels/rackroom/pkg/io"
)

// RedisStore persists plan documents in Redis under plan:{room_id}
// keys. Suitable for multi-instance server deployments where plans
// must be shared.
type RedisStore struct {
	client *redis.Client
}

// RedisConfig holds connection settings for [NewRedisStore].
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisStore connects to Redis and verifies the connection with a
// ping before returning the store.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// NewRedisStoreWithClient wraps an existing client, for embeddings that
// manage their own connection pool.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load retrieves the plan for a room.
func (s *RedisStore) Load(ctx context.Context, roomID string) (planio.Document, error) {
	data, err := s.client.Get(ctx, planKey(roomID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return planio.Document{}, fmt.Errorf("%w: %s", ErrNotFound, roomID)
	}
	if err != nil {
		return planio.Document{}, fmt.Errorf("redis get: %w", err)
	}

	var doc planio.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return planio.Document{}, fmt.Errorf("parse plan %s: %w", roomID, err)
	}
	return doc, nil
}

// Save stores a plan, overwriting any previous plan for the room.
// Plans have no TTL; they live until deleted.
func (s *RedisStore) Save(ctx context.Context, doc planio.Document) error {
	if doc.Room.RoomID == "" {
		return ErrInvalidKey
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	if err := s.client.Set(ctx, planKey(doc.Room.RoomID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes the plan for a room.
func (s *RedisStore) Delete(ctx context.Context, roomID string) error {
	n, err := s.client.Del(ctx, planKey(roomID)).Result()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, roomID)
	}
	return nil
}

// List returns the room ids of all stored plans using SCAN so large
// keyspaces are never blocked.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.client.Scan(ctx, 0, planKey("*"), 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), "plan:"))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	return ids, nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error { return s.client.Close() }

var _ Store = (*RedisStore)(nil)
