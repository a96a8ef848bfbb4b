package services

import "context"

// TokenService issues and validates bearer tokens. ValidateAccessToken
// returns the user id carried by a valid token.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID, username string) (string, error)
	ValidateAccessToken(ctx context.Context, token string) (string, error)
}
