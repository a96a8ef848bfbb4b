// Package services defines the service interfaces used by the use cases.
package services

import "context"

// PasswordService provides one-way password digests. Plaintext passwords are
// never stored or compared directly.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, hash string) (bool, error)
}
