// Package services holds domain-level error taxonomy and value types shared
// by the use cases.
package services

import (
	"errors"
	"fmt"
)

// Domain errors. HTTP translation happens only at the adapter boundary.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidFolder      = errors.New("invalid folder")
	ErrInvalidTag         = errors.New("invalid tag")
	ErrNoteNotFound       = errors.New("note not found")
	ErrMissingTitle       = errors.New("missing title")
	ErrMissingName        = errors.New("missing name")
)

// Password length bounds. The upper bound matches bcrypt's input limit so no
// silently ignored characters are stored.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// CredentialError classifies an authentication failure by the offending
// field. Callers must present both cases identically so username existence
// is not leaked.
type CredentialError struct {
	Field string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("incorrect %s", e.Field)
}

// Unwrap makes every credential error match ErrInvalidCredentials.
func (e *CredentialError) Unwrap() error {
	return ErrInvalidCredentials
}

// ShapeError reports a request field whose value does not have the expected
// identifier shape.
type ShapeError struct {
	Field string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("the `%s` is not valid", e.Field)
}

// ValidationError reports a structurally invalid registration field together
// with the message shown to the client.
type ValidationError struct {
	Message  string
	Location string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}
