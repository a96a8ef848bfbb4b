package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"noteful/internal/domain/entities"
	"noteful/internal/ports/repositories"
	"noteful/pkg/logger"
)

// FolderRepository implements repositories.FolderRepository over Postgres.
type FolderRepository struct {
	pool PgxPoolInterface
}

// NewFolderRepository creates a new folder repository.
func NewFolderRepository(pool PgxPoolInterface) repositories.FolderRepository {
	return &FolderRepository{pool: pool}
}

// List fetches all folders owned by the user, by name.
func (r *FolderRepository) List(ctx context.Context, userID string) ([]*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "List"))

	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, created_at, updated_at FROM folders WHERE user_id = $1 ORDER BY name`,
		userID,
	)
	if err != nil {
		log.Error(ctx, "failed to list folders", zap.Error(err))
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	defer rows.Close()

	folders := make([]*entities.Folder, 0)
	for rows.Next() {
		var folder entities.Folder
		if err := rows.Scan(&folder.ID, &folder.UserID, &folder.Name, &folder.CreatedAt, &folder.UpdatedAt); err != nil {
			log.Error(ctx, "failed to scan folder", zap.Error(err))
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		folders = append(folders, &folder)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return folders, nil
}

// Create stores a new folder.
func (r *FolderRepository) Create(ctx context.Context, folder *entities.Folder) (*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "Create"))

	var created entities.Folder
	err := r.pool.QueryRow(ctx,
		`INSERT INTO folders (user_id, name) VALUES ($1, $2)
         RETURNING id, user_id, name, created_at, updated_at`,
		folder.UserID, folder.Name,
	).Scan(&created.ID, &created.UserID, &created.Name, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		log.Error(ctx, "failed to create folder", zap.Error(err))
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	return &created, nil
}

// Delete removes a folder scoped by id and owner. Notes referencing it fall
// back to no folder via the schema's ON DELETE SET NULL.
func (r *FolderRepository) Delete(ctx context.Context, folderID, userID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "Delete"))

	_, err := r.pool.Exec(ctx,
		`DELETE FROM folders WHERE id = $1 AND user_id = $2`,
		folderID, userID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete folder", zap.Error(err))
		return fmt.Errorf("failed to delete folder: %w", err)
	}

	return nil
}

// ExistsForUser reports whether the folder exists and is owned by the user.
// Existence and ownership are checked in one scoped lookup so cross-tenant
// references cannot be probed.
func (r *FolderRepository) ExistsForUser(ctx context.Context, folderID, userID string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "ExistsForUser"))

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM folders WHERE id = $1 AND user_id = $2)`,
		folderID, userID,
	).Scan(&exists)
	if err != nil {
		log.Error(ctx, "failed to check folder", zap.Error(err))
		return false, fmt.Errorf("failed to check folder: %w", err)
	}

	return exists, nil
}
