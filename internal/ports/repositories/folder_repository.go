package repositories

import (
	"context"

	"noteful/internal/domain/entities"
)

// FolderRepository persists folders. ExistsForUser checks existence and
// ownership in one scoped lookup.
type FolderRepository interface {
	List(ctx context.Context, userID string) ([]*entities.Folder, error)
	Create(ctx context.Context, folder *entities.Folder) (*entities.Folder, error)
	Delete(ctx context.Context, folderID, userID string) error
	ExistsForUser(ctx context.Context, folderID, userID string) (bool, error)
}
