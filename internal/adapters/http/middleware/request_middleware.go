package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"noteful/pkg/logger"
)

// requestContextKey is the Locals key for the request-scoped context.
const requestContextKey = "requestContext"

// NewRequestIDMiddleware attaches a request-id-carrying context for
// downstream logging, honoring an X-Request-ID header when present.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get("X-Request-ID"))
		ctx.Locals(requestContextKey, requestCtx)
		return ctx.Next()
	}
}

// RequestContext returns the request-scoped context attached by
// NewRequestIDMiddleware, falling back to the raw request context.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(requestContextKey).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}
