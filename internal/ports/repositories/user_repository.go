// Package repositories defines the persistence interfaces of the service.
package repositories

import (
	"context"

	"noteful/internal/domain/entities"
)

// UserRepository persists accounts. Create returns
// services.ErrUsernameTaken when the username is already stored; the lookup
// methods return entities.ErrUserNotFound on a miss.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
}
