package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"moodwave/internal/observability"

	"github.com/redis/go-redis/v9"
)

// keyClass reduces a concrete cache key to its first segment so metrics stay
// low-cardinality.
func keyClass(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}

// GetJSON fetches key and unmarshals it into dest. Returns false on a miss or
// when Redis is unavailable.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	raw, err := client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		observability.CacheRequests.WithLabelValues(keyClass(key), "miss").Inc()
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// Corrupt entry, drop it and treat as a miss
		client.Del(ctx, key)
		observability.CacheRequests.WithLabelValues(keyClass(key), "miss").Inc()
		return false, nil
	}
	observability.CacheRequests.WithLabelValues(keyClass(key), "hit").Inc()
	return true, nil
}

// SetJSON marshals val and stores it under key with the given TTL. Failures
// are swallowed so a cache outage never fails the request.
func SetJSON(ctx context.Context, key string, val any, ttl time.Duration) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	client.Set(ctx, key, raw, ttl)
}

// Aside runs the cache-aside pattern: return the cached value under key if
// present, otherwise load it, cache it, and return it.
func Aside[T any](ctx context.Context, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var cached T
	if ok, err := GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}
	fresh, err := load()
	if err != nil {
		return fresh, err
	}
	SetJSON(ctx, key, fresh, ttl)
	return fresh, nil
}
