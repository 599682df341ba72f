// Package dedupe suppresses repeated idea submissions within a time window.
package dedupe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces guard keys in a shared redis.
const DefaultPrefix = "qaspilab:idea:"

// RedisGuard claims keys with SET NX so every server instance sees the same window.
type RedisGuard struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisGuard creates a guard that remembers keys for ttl.
func NewRedisGuard(client redis.Cmdable, ttl time.Duration) (*RedisGuard, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if ttl <= 0 {
		return nil, errors.New("ttl must be positive")
	}
	return &RedisGuard{client: client, prefix: DefaultPrefix, ttl: ttl}, nil
}

// Claim returns false if key was claimed within the window.
func (g *RedisGuard) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.prefix+key, 1, g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim key: %w", err)
	}
	return ok, nil
}

// Release forgets key so the same idea can be sent again.
func (g *RedisGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, g.prefix+key).Err(); err != nil {
		return fmt.Errorf("release key: %w", err)
	}
	return nil
}

// MemoryGuard keeps claimed keys in process memory. Used when no redis is configured.
type MemoryGuard struct {
	cache *ttlcache.Cache[string, struct{}]
}

// NewMemoryGuard creates a guard that remembers keys for ttl.
// Close must be called to stop the expiry loop.
func NewMemoryGuard(ttl time.Duration) (*MemoryGuard, error) {
	if ttl <= 0 {
		return nil, errors.New("ttl must be positive")
	}

	cache := ttlcache.New(
		ttlcache.WithTTL[string, struct{}](ttl),
		ttlcache.WithDisableTouchOnHit[string, struct{}](),
	)
	go cache.Start()

	return &MemoryGuard{cache: cache}, nil
}

// Claim returns false if key was claimed within the window.
func (g *MemoryGuard) Claim(_ context.Context, key string) (bool, error) {
	_, found := g.cache.GetOrSet(key, struct{}{})
	return !found, nil
}

// Release forgets key.
func (g *MemoryGuard) Release(_ context.Context, key string) error {
	g.cache.Delete(key)
	return nil
}

// Len returns the number of live keys.
func (g *MemoryGuard) Len() int {
	return g.cache.Len()
}

// Close stops the expiry loop.
func (g *MemoryGuard) Close() {
	g.cache.Stop()
}
