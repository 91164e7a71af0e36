// Package redis implements core.Backend on a Redis server. Each key is one
// string value holding the whole collection.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/aretw0/docket/pkg/core"
)

// DefaultNamespace prefixes every key stored by this backend.
const DefaultNamespace = "docket:"

// Backend stores keys in Redis under a namespace.
type Backend struct {
	client    *redis.Client
	namespace string
}

// New wraps an existing client. An empty namespace selects DefaultNamespace.
func New(client *redis.Client, namespace string) *Backend {
	if client == nil {
		panic("redis.New: client is nil")
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Backend{client: client, namespace: namespace}
}

// Open parses a redis:// URL and connects.
func Open(url, namespace string) (*Backend, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return New(redis.NewClient(opts), namespace), nil
}

// Initialize pings the server.
func (b *Backend) Initialize(ctx context.Context) error {
	if err := b.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Get implements core.Backend.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := b.client.Get(ctx, b.namespace+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, core.ErrKeyNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

// Set implements core.Backend. Values never expire.
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	if err := b.client.Set(ctx, b.namespace+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (b *Backend) Close() error {
	return b.client.Close()
}

// ComponentType implements introspection.Component.
func (b *Backend) ComponentType() string {
	return "redis"
}

var _ core.Backend = (*Backend)(nil)
