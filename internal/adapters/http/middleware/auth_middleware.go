// Package middleware contains the HTTP middleware chain.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteful/internal/adapters/http/apierr"
	svc "noteful/internal/ports/services"
	"noteful/pkg/logger"
)

// UserIDKey is the Locals key under which the authenticated user id is
// stored for downstream handlers.
const UserIDKey = "userID"

const (
	errorNoAuthHeader       = "no authorization header provided"
	errorInvalidTokenFormat = "invalid token format"
	errorInvalidToken       = "invalid or expired token"
)

// NewAuthMiddleware validates the bearer credential and attaches the
// resolved identity. Every protected route rejects here before any
// persistence access.
func NewAuthMiddleware(tokenService svc.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, errorNoAuthHeader)
			return apierr.Write(ctx, fiber.StatusUnauthorized, apierr.ReasonAuth, "No credentials provided", "")
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Debug(requestCtx, errorInvalidTokenFormat)
			return apierr.Write(ctx, fiber.StatusUnauthorized, apierr.ReasonAuth, "Invalid credentials", "")
		}

		userID, err := tokenService.ValidateAccessToken(requestCtx, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.Debug(requestCtx, errorInvalidToken, zap.Error(err))
			return apierr.Write(ctx, fiber.StatusUnauthorized, apierr.ReasonAuth, "Invalid credentials", "")
		}

		ctx.Locals(UserIDKey, userID)
		return ctx.Next()
	}
}

// UserID returns the authenticated user id attached by the auth middleware.
func UserID(ctx fiber.Ctx) string {
	id, _ := ctx.Locals(UserIDKey).(string)
	return id
}
