// Package users contains the HTTP handlers for registration and login.
package users

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteful/internal/adapters/http/apierr"
	"noteful/internal/adapters/http/middleware"
	"noteful/internal/app"
	"noteful/internal/app/dto"
	svc "noteful/internal/ports/services"
	"noteful/pkg/logger"
)

const (
	logHandlerRegister = "handling register request"
	logHandlerLogin    = "handling login request"
)

// Handler serves the user endpoints.
type Handler struct {
	users        *app.UserUseCase
	tokenService svc.TokenService
}

// NewHandler creates a new user handler.
func NewHandler(users *app.UserUseCase, tokenService svc.TokenService) *Handler {
	return &Handler{
		users:        users,
		tokenService: tokenService,
	}
}

// Register handles account creation.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Register"))
	log.Debug(requestCtx, logHandlerRegister)

	var payload dto.RegisterPayload
	if err := ctx.Bind().Body(&payload); err != nil {
		log.Debug(requestCtx, apierr.MsgInvalidBody, zap.Error(err))
		return apierr.Write(ctx, fiber.StatusBadRequest, apierr.ReasonValidation, apierr.MsgInvalidBody, "")
	}

	user, err := h.users.Register(requestCtx, &payload)
	if err != nil {
		return apierr.Translate(ctx, err)
	}

	ctx.Set(fiber.HeaderLocation, "/api/users/"+user.ID)
	if err := ctx.Status(fiber.StatusCreated).JSON(dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Fullname: user.Fullname,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Login verifies credentials and issues a bearer token.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Login"))
	log.Debug(requestCtx, logHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, apierr.MsgInvalidBody, zap.Error(err))
		return apierr.Write(ctx, fiber.StatusBadRequest, apierr.ReasonValidation, apierr.MsgInvalidBody, "")
	}

	user, err := h.users.Authenticate(requestCtx, req.Username, req.Password)
	if err != nil {
		return apierr.Translate(ctx, err)
	}

	token, err := h.tokenService.GenerateAccessToken(requestCtx, user.ID, user.Username)
	if err != nil {
		log.Error(requestCtx, "failed to generate access token", zap.Error(err))
		return apierr.Translate(ctx, err)
	}

	if err := ctx.JSON(dto.LoginResponse{AuthToken: token}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
