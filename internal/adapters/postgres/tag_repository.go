package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"noteful/internal/domain/entities"
	"noteful/internal/ports/repositories"
	"noteful/pkg/logger"
)

// TagRepository implements repositories.TagRepository over Postgres.
type TagRepository struct {
	pool PgxPoolInterface
}

// NewTagRepository creates a new tag repository.
func NewTagRepository(pool PgxPoolInterface) repositories.TagRepository {
	return &TagRepository{pool: pool}
}

// List fetches all tags owned by the user, by name.
func (r *TagRepository) List(ctx context.Context, userID string) ([]*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "List"))

	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, created_at, updated_at FROM tags WHERE user_id = $1 ORDER BY name`,
		userID,
	)
	if err != nil {
		log.Error(ctx, "failed to list tags", zap.Error(err))
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := make([]*entities.Tag, 0)
	for rows.Next() {
		var tag entities.Tag
		if err := rows.Scan(&tag.ID, &tag.UserID, &tag.Name, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
			log.Error(ctx, "failed to scan tag", zap.Error(err))
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, &tag)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return tags, nil
}

// Create stores a new tag.
func (r *TagRepository) Create(ctx context.Context, tag *entities.Tag) (*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "Create"))

	var created entities.Tag
	err := r.pool.QueryRow(ctx,
		`INSERT INTO tags (user_id, name) VALUES ($1, $2)
         RETURNING id, user_id, name, created_at, updated_at`,
		tag.UserID, tag.Name,
	).Scan(&created.ID, &created.UserID, &created.Name, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		log.Error(ctx, "failed to create tag", zap.Error(err))
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return &created, nil
}

// Delete removes a tag scoped by id and owner. Note links are dropped via
// the schema's ON DELETE CASCADE on note_tags.
func (r *TagRepository) Delete(ctx context.Context, tagID, userID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "Delete"))

	_, err := r.pool.Exec(ctx,
		`DELETE FROM tags WHERE id = $1 AND user_id = $2`,
		tagID, userID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete tag", zap.Error(err))
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	return nil
}

// CountByIDsForUser counts how many of the given tag ids exist and are owned
// by the user in a single set lookup.
func (r *TagRepository) CountByIDsForUser(ctx context.Context, tagIDs []string, userID string) (int, error) {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "CountByIDsForUser"))

	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM tags WHERE id = ANY($1::uuid[]) AND user_id = $2`,
		tagIDs, userID,
	).Scan(&count)
	if err != nil {
		log.Error(ctx, "failed to count tags", zap.Error(err))
		return 0, fmt.Errorf("failed to count tags: %w", err)
	}

	return count, nil
}
