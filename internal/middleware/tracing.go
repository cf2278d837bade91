package middleware

import (
	"moodwave/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// TracingMiddleware opens a server span per request and threads the trace
// context through c.UserContext so downstream database, cache and music
// lookups join the same trace. The trace id is echoed in the X-Trace-ID
// response header for client-side correlation.
func TracingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := otel.GetTextMapPropagator().Extract(c.UserContext(), propagation.HeaderCarrier(c.GetReqHeaders()))

		ctx, span := observability.Tracer.Start(ctx, c.Method()+" "+c.Path(),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(requestAttrs(c)...),
		)
		defer span.End()

		c.Locals("traceID", span.SpanContext().TraceID().String())
		c.Locals("spanID", span.SpanContext().SpanID().String())
		c.Set("X-Trace-ID", span.SpanContext().TraceID().String())
		c.SetUserContext(ctx)

		err := c.Next()

		span.SetAttributes(attribute.Int("http.status_code", c.Response().StatusCode()))
		if route := c.Route(); route != nil {
			span.SetAttributes(attribute.String("http.route", route.Path))
		}
		if uid, ok := c.Locals("userID").(uint); ok {
			// Set after c.Next so spans on protected routes carry the
			// authenticated user.
			span.SetAttributes(attribute.Int64("enduser.id", int64(uid)))
		}
		if err != nil {
			span.RecordError(err)
		}

		return err
	}
}

func requestAttrs(c *fiber.Ctx) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", c.Method()),
		attribute.String("http.target", c.OriginalURL()),
		attribute.String("net.peer.ip", c.IP()),
		attribute.String("http.user_agent", c.Get("User-Agent")),
	}
	if rid, ok := c.Locals("requestid").(string); ok {
		attrs = append(attrs, attribute.String("request.id", rid))
	}
	return attrs
}
