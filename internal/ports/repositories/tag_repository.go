package repositories

import (
	"context"

	"noteful/internal/domain/entities"
)

// TagRepository persists tags. CountByIDsForUser returns how many of the
// given ids exist and are owned by the user; callers compare it against the
// size of the requested set.
type TagRepository interface {
	List(ctx context.Context, userID string) ([]*entities.Tag, error)
	Create(ctx context.Context, tag *entities.Tag) (*entities.Tag, error)
	Delete(ctx context.Context, tagID, userID string) error
	CountByIDsForUser(ctx context.Context, tagIDs []string, userID string) (int, error)
}
