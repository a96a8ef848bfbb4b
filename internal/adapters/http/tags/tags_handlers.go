// Package tags contains the HTTP handlers for tag management.
package tags

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteful/internal/adapters/http/apierr"
	"noteful/internal/adapters/http/middleware"
	"noteful/internal/app"
	"noteful/internal/app/dto"
	"noteful/pkg/logger"
)

// Handler serves the tag endpoints.
type Handler struct {
	tags *app.TagUseCase
}

// NewHandler creates a new tag handler.
func NewHandler(tags *app.TagUseCase) *Handler {
	return &Handler{tags: tags}
}

// ListTags returns the caller's tags.
func (h *Handler) ListTags(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	tags, err := h.tags.ListTags(requestCtx, middleware.UserID(ctx))
	if err != nil {
		logger.Log(requestCtx).Error(requestCtx, "failed to list tags", zap.Error(err))
		return apierr.Translate(ctx, err)
	}

	if err := ctx.JSON(tags); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateTag creates a tag for the caller.
func (h *Handler) CreateTag(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	var req dto.CreateTagRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return apierr.Write(ctx, fiber.StatusBadRequest, apierr.ReasonValidation, apierr.MsgInvalidBody, "")
	}

	tag, err := h.tags.CreateTag(requestCtx, middleware.UserID(ctx), req.Name)
	if err != nil {
		return apierr.Translate(ctx, err)
	}

	ctx.Set(fiber.HeaderLocation, ctx.Path()+"/"+tag.ID)
	if err := ctx.Status(fiber.StatusCreated).JSON(tag); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteTag removes a tag; idempotent like note deletion.
func (h *Handler) DeleteTag(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	if err := h.tags.DeleteTag(requestCtx, middleware.UserID(ctx), ctx.Params("id")); err != nil {
		logger.Log(requestCtx).Error(requestCtx, "failed to delete tag", zap.Error(err))
		return apierr.Translate(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
