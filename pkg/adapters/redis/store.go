// Package redis provides a Redis-backed context store, so hosts can seed
// a rendering context once and render against it across requests and
// processes.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/weft/pkg/domain"
)

// Store implements ports.ContextStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the expiration for stored contexts.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for stored contexts.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "weft:context:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

// Save persists the context as JSON.
func (s *Store) Save(ctx context.Context, id string, data *domain.Context) error {
	payload, err := json.Marshal(data.Root().Interface())
	if err != nil {
		return fmt.Errorf("failed to marshal context: %w", err)
	}

	if err := s.client.Set(ctx, s.key(id), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the context for an ID.
func (s *Store) Load(ctx context.Context, id string) (*domain.Context, error) {
	val, err := s.client.Get(ctx, s.key(id)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrContextNotFound, id)
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var root map[string]any
	if err := json.Unmarshal([]byte(val), &root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal context: %w", err)
	}

	return domain.ContextFromAny(root), nil
}

// Delete removes the context.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
