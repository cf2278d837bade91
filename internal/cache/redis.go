// Package cache holds the Redis client and the read-through helpers for the
// app's derived surfaces: friend suggestions, mood analytics, mood history,
// feed summaries and external music lookups. The process runs without Redis;
// every helper degrades to computing results directly.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"moodwave/internal/middleware"
	"moodwave/internal/observability"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

const pingTimeout = 5 * time.Second

// errorCountingHook feeds command failures into the Redis error-rate metric.
// Cache misses (redis.Nil) are expected and not counted.
type errorCountingHook struct{}

func (h errorCountingHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h errorCountingHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.RedisErrorRate.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (h errorCountingHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.RedisErrorRate.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// InitRedis connects the process-wide client. addr accepts either a plain
// host:port or a redis:// URL. A failed connection leaves the client nil and
// the app serving uncached.
func InitRedis(addr string) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			middleware.Logger.Warn("invalid Redis URL, continuing without cache",
				slog.String("addr", addr),
				slog.String("error", err.Error()),
			)
			client = nil
			return
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client = redis.NewClient(opts)
	client.AddHook(errorCountingHook{})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis unreachable, continuing without cache",
			slog.String("error", err.Error()),
		)
		client = nil
		return
	}
	middleware.Logger.Info("Redis connected")
}

// GetClient returns the current Redis client instance, nil when uncached.
func GetClient() *redis.Client {
	return client
}

// SetClient overrides the Redis client. Used by tests.
func SetClient(c *redis.Client) {
	client = c
}
