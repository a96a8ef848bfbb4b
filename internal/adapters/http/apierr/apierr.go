// Package apierr translates domain errors into the HTTP error envelope the
// API contract requires.
package apierr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"noteful/internal/domain/services"
)

// Reasons carried by the error envelope.
const (
	ReasonValidation = "ValidationError"
	ReasonAuth       = "AuthError"
	ReasonNotFound   = "NotFoundError"
	ReasonInternal   = "InternalServerError"
)

// Client-facing messages, part of the API contract.
const (
	MsgMissingTitle       = "Missing `title` in request body"
	MsgMissingName        = "Missing `name` in request body"
	MsgInvalidFolder      = "The folder is not valid"
	MsgInvalidTag         = "The tag is not valid"
	MsgUsernameTaken      = "The username already exists"
	MsgInvalidCredentials = "Incorrect username or password"
	MsgNotFound           = "Not Found"
	MsgInternal           = "Internal Server Error"
	MsgInvalidBody        = "Invalid request body"
)

// Envelope is the error body: a machine-checkable code, a human-readable
// message, and, where applicable, the offending input field.
type Envelope struct {
	Code     int    `json:"code"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

// Write sends the envelope with the given status.
func Write(ctx fiber.Ctx, status int, reason, message, location string) error {
	if err := ctx.Status(status).JSON(Envelope{
		Code:     status,
		Reason:   reason,
		Message:  message,
		Location: location,
	}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}
	return nil
}

// Translate maps a domain error to its HTTP envelope. Unclassified errors
// fall through to a generic 500.
func Translate(ctx fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return Write(ctx, fiber.StatusUnprocessableEntity, ReasonValidation, validationErr.Message, validationErr.Location)
	}

	var shapeErr *services.ShapeError
	if errors.As(err, &shapeErr) {
		return Write(ctx, fiber.StatusBadRequest, ReasonValidation,
			fmt.Sprintf("The `%s` is not valid", shapeErr.Field), shapeErr.Field)
	}

	switch {
	case errors.Is(err, services.ErrMissingTitle):
		return Write(ctx, fiber.StatusBadRequest, ReasonValidation, MsgMissingTitle, "title")
	case errors.Is(err, services.ErrMissingName):
		return Write(ctx, fiber.StatusBadRequest, ReasonValidation, MsgMissingName, "name")
	case errors.Is(err, services.ErrInvalidFolder):
		return Write(ctx, fiber.StatusBadRequest, ReasonValidation, MsgInvalidFolder, "folderId")
	case errors.Is(err, services.ErrInvalidTag):
		return Write(ctx, fiber.StatusBadRequest, ReasonValidation, MsgInvalidTag, "tags")
	case errors.Is(err, services.ErrUsernameTaken):
		return Write(ctx, fiber.StatusBadRequest, ReasonValidation, MsgUsernameTaken, "username")
	case errors.Is(err, services.ErrInvalidCredentials):
		return Write(ctx, fiber.StatusUnauthorized, ReasonAuth, MsgInvalidCredentials, "")
	case errors.Is(err, services.ErrNoteNotFound):
		return Write(ctx, fiber.StatusNotFound, ReasonNotFound, MsgNotFound, "")
	default:
		return Write(ctx, fiber.StatusInternalServerError, ReasonInternal, MsgInternal, "")
	}
}
