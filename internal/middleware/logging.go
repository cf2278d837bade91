package middleware

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger is the process-wide structured logger. Records logged with the
// *Context variants pick up the request id, authenticated user id and trace
// id from the context, so a single mood log write can be followed from
// handler through service to repository.
var Logger *slog.Logger

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	UserIDKey    contextKey = "user_id"
	TraceIDKey   contextKey = "trace_id"
)

// requestScopedHandler decorates records with the request-scoped identifiers
// carried in the context.
type requestScopedHandler struct {
	slog.Handler
}

func (h *requestScopedHandler) Handle(ctx context.Context, r slog.Record) error {
	if rid, ok := ctx.Value(RequestIDKey).(string); ok {
		r.AddAttrs(slog.String("request_id", rid))
	}
	if uid, ok := ctx.Value(UserIDKey).(uint); ok {
		r.AddAttrs(slog.Uint64("user_id", uint64(uid)))
	}
	if tid, ok := ctx.Value(TraceIDKey).(string); ok {
		r.AddAttrs(slog.String("trace_id", tid))
	}
	return h.Handler.Handle(ctx, r)
}

func init() {
	Logger = slog.New(&requestScopedHandler{newRootHandler()})
}

// newRootHandler picks JSON output for production and readable text
// everywhere else.
func newRootHandler() slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if os.Getenv("APP_ENV") == "production" {
		return slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.NewTextHandler(os.Stdout, opts)
}

// ContextMiddleware copies the request id, user id and trace id from Fiber
// locals into the request context. AuthRequired sets userID after this
// middleware runs, so the user id only appears on log lines emitted from
// inside protected handlers.
func ContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		if rid, ok := c.Locals("requestid").(string); ok {
			ctx = context.WithValue(ctx, RequestIDKey, rid)
		}
		if uid, ok := c.Locals("userID").(uint); ok {
			ctx = context.WithValue(ctx, UserIDKey, uid)
		}
		if tid, ok := c.Locals("traceID").(string); ok {
			ctx = context.WithValue(ctx, TraceIDKey, tid)
		}

		c.SetUserContext(ctx)
		return c.Next()
	}
}

// StructuredLogger emits one access log line per request.
func StructuredLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		fields := []any{
			slog.Int("status", c.Response().StatusCode()),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
			slog.Int64("latency_ms", time.Since(start).Milliseconds()),
			slog.Int("bytes", len(c.Response().Body())),
			slog.String("user_agent", c.Get("User-Agent")),
		}

		if err != nil {
			fields = append(fields, slog.String("error", err.Error()))
			Logger.ErrorContext(c.UserContext(), "request failed", fields...)
		} else {
			Logger.InfoContext(c.UserContext(), "request completed", fields...)
		}

		return err
	}
}
