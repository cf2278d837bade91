package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// FailPolicy defines the behavior when the rate limit store (Redis) is unavailable.
type FailPolicy int

const (
	// FailOpen allows the request to proceed if Redis is unavailable.
	FailOpen FailPolicy = iota
	// FailClosed blocks the request (503 Service Unavailable) if Redis is unavailable.
	FailClosed
)

// Quota is a named request budget for one endpoint class. Counters are
// fixed-window and keyed per authenticated user, falling back to the remote
// IP for anonymous traffic.
type Quota struct {
	Name   string
	Limit  int
	Window time.Duration
}

// Budgets for the endpoints that create rows or fan out notifications.
// Account creation and login are the tightest since they gate abuse; mood
// logs and feed comments allow bursts of normal activity. Reads are covered
// by the global per-IP limiter instead.
var (
	SignupQuota        = Quota{Name: "signup", Limit: 3, Window: 10 * time.Minute}
	LoginQuota         = Quota{Name: "login", Limit: 10, Window: 5 * time.Minute}
	LogMoodQuota       = Quota{Name: "log_mood", Limit: 30, Window: time.Minute}
	FriendRequestQuota = Quota{Name: "friend_request", Limit: 5, Window: 5 * time.Minute}
	FeedCommentQuota   = Quota{Name: "feed_comment", Limit: 15, Window: time.Minute}
	FeedReplyQuota     = Quota{Name: "feed_reply", Limit: 15, Window: time.Minute}
)

// QuotaLimit returns a Fiber middleware enforcing the named quota.
func QuotaLimit(rdb *redis.Client, q Quota) fiber.Handler {
	return RateLimit(rdb, q.Limit, q.Window, q.Name)
}

// CheckRateLimit checks if a resource has exceeded its rate limit.
// Returns true if allowed, false if limit exceeded.
// Rate limiting is disabled when APP_ENV is "test", "development" or "stress" so dev and load test workflows are not throttled.
func CheckRateLimit(ctx context.Context, rdb *redis.Client, resource, id string, limit int, window time.Duration) (bool, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	switch env {
	case "test", "development", "stress":
		return true, nil
	}

	if rdb == nil {
		return false, fmt.Errorf("redis client is nil")
	}

	key := fmt.Sprintf("rl:%s:%s", resource, id)

	// INCR and set EXPIRE if new
	cnt, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if cnt == 1 {
		rdb.Expire(ctx, key, window)
	}
	if cnt > int64(limit) {
		return false, nil
	}
	return true, nil
}

// RateLimit returns a Fiber middleware enforcing `limit` requests per `window`.
// It keys by authenticated userID (if set in c.Locals("userID")) otherwise by remote IP.
// It defaults to FailOpen policy.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, name ...string) fiber.Handler {
	return RateLimitWithPolicy(rdb, limit, window, FailOpen, name...)
}

// RateLimitWithPolicy returns a Fiber middleware enforcing `limit` requests per `window` with a specific failure policy.
func RateLimitWithPolicy(rdb *redis.Client, limit int, window time.Duration, policy FailPolicy, name ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		var id string
		if uid := c.Locals("userID"); uid != nil {
			id = fmt.Sprintf("user:%v", uid)
		} else {
			id = fmt.Sprintf("ip:%s", c.IP())
		}

		// Use the provided name or the request path as the resource identifier
		resource := c.Path()
		if len(name) > 0 {
			resource = name[0]
		}

		allowed, err := CheckRateLimit(ctx, rdb, resource, id, limit, window)
		if err != nil {
			if policy == FailClosed {
				Logger.WarnContext(c.UserContext(), "rate limit store unavailable, failing closed",
					slog.String("resource", resource),
					slog.String("error", err.Error()),
				)
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"error": "rate limit unavailable",
				})
			}
			// Default FailOpen
			return c.Next()
		}

		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}
		return c.Next()
	}
}
