// Package notes contains the HTTP handlers for note CRUD.
package notes

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

const (
	logHandlerCreateNote = "handling create note request"
	logHandlerGetNote    = "handling get note request"
	logHandlerListNotes  = "handling list notes request"
	logHandlerUpdateNote = "handling update note request"
	logHandlerDeleteNote = "handling delete note request"
)

// Handler serves the note endpoints.
type Handler struct {
	notes *app.NoteUseCase
}

// NewHandler creates a new note handler.
func NewHandler(notes *app.NoteUseCase) *Handler {
	return &Handler{notes: notes}
}

// ListNotes handles the filtered note list.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, logHandlerListNotes)

	query := dto.ListNotesQuery{
		SearchTerm: ctx.Query("searchTerm"),
		FolderID:   ctx.Query("folderId"),
		TagID:      ctx.Query("tagId"),
	}

	notes, err := h.notes.ListNotes(requestCtx, middleware.UserID(ctx), &query)
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return apierr.Translate(ctx, err)
	}

	if err := ctx.JSON(notes); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote handles a single note fetch.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(requestCtx, logHandlerGetNote)

	note, err := h.notes.GetNote(requestCtx, middleware.UserID(ctx), ctx.Params("id"))
	if err != nil {
		return apierr.Translate(ctx, err)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateNote handles note creation.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, logHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, apierr.MsgInvalidBody, zap.Error(err))
		return apierr.Write(ctx, fiber.StatusBadRequest, apierr.ReasonValidation, apierr.MsgInvalidBody, "")
	}

	note, err := h.notes.CreateNote(requestCtx, middleware.UserID(ctx), &req)
	if err != nil {
		return apierr.Translate(ctx, err)
	}

	ctx.Set(fiber.HeaderLocation, ctx.Path()+"/"+note.ID)
	if err := ctx.Status(fiber.StatusCreated).JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote handles a full-field note replace.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, logHandlerUpdateNote)

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, apierr.MsgInvalidBody, zap.Error(err))
		return apierr.Write(ctx, fiber.StatusBadRequest, apierr.ReasonValidation, apierr.MsgInvalidBody, "")
	}

	note, err := h.notes.UpdateNote(requestCtx, middleware.UserID(ctx), ctx.Params("id"), &req)
	if err != nil {
		return apierr.Translate(ctx, err)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote handles idempotent note deletion.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, logHandlerDeleteNote)

	if err := h.notes.DeleteNote(requestCtx, middleware.UserID(ctx), ctx.Params("id")); err != nil {
		log.Error(requestCtx, "failed to delete note", zap.Error(err))
		return apierr.Translate(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
