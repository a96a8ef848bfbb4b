// Package folders contains the HTTP handlers for folder management.
package folders

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

// Handler serves the folder endpoints.
type Handler struct {
	folders *app.FolderUseCase
}

// NewHandler creates a new folder handler.
func NewHandler(folders *app.FolderUseCase) *Handler {
	return &Handler{folders: folders}
}

// ListFolders returns the caller's folders.
func (h *Handler) ListFolders(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	folders, err := h.folders.ListFolders(requestCtx, middleware.UserID(ctx))
	if err != nil {
		logger.Log(requestCtx).Error(requestCtx, "failed to list folders", zap.Error(err))
		return apierr.Translate(ctx, err)
	}

	if err := ctx.JSON(folders); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateFolder creates a folder for the caller.
func (h *Handler) CreateFolder(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	var req dto.CreateFolderRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return apierr.Write(ctx, fiber.StatusBadRequest, apierr.ReasonValidation, apierr.MsgInvalidBody, "")
	}

	folder, err := h.folders.CreateFolder(requestCtx, middleware.UserID(ctx), req.Name)
	if err != nil {
		return apierr.Translate(ctx, err)
	}

	ctx.Set(fiber.HeaderLocation, ctx.Path()+"/"+folder.ID)
	if err := ctx.Status(fiber.StatusCreated).JSON(folder); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteFolder removes a folder; idempotent like note deletion.
func (h *Handler) DeleteFolder(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)

	if err := h.folders.DeleteFolder(requestCtx, middleware.UserID(ctx), ctx.Params("id")); err != nil {
		logger.Log(requestCtx).Error(requestCtx, "failed to delete folder", zap.Error(err))
		return apierr.Translate(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
