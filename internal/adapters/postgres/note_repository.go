package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"noteful/internal/domain/entities"
	"noteful/internal/domain/services"
	"noteful/internal/ports/repositories"
	"noteful/pkg/logger"
)

// noteColumns selects a note row with its tag ids aggregated; queries using
// it must join note_tags and group by the note id.
const noteColumns = `n.id, n.user_id, n.title, n.content, n.folder_id, n.created_at, n.updated_at,
        COALESCE(array_agg(nt.tag_id::text) FILTER (WHERE nt.tag_id IS NOT NULL), '{}')`

// NoteRepository implements repositories.NoteRepository over Postgres.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository creates a new note repository.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create stores a new note and its tag links in one transaction.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))
	log.Debug(ctx, "creating new note", zap.String("userID", note.UserID))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "failed to begin transaction", zap.Error(err))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	created := *note
	err = tx.QueryRow(ctx,
		`INSERT INTO notes (user_id, title, content, folder_id) VALUES ($1, $2, $3, $4)
         RETURNING id, created_at, updated_at`,
		note.UserID, note.Title, note.Content, note.FolderID,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	if err := replaceNoteTags(ctx, tx, created.ID, note.Tags); err != nil {
		log.Error(ctx, "failed to attach tags", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "failed to commit transaction", zap.Error(err))
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return &created, nil
}

// GetByID fetches a note scoped by both id and owner. A miss returns
// (nil, nil).
func (r *NoteRepository) GetByID(ctx context.Context, noteID, userID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "GetByID"))
	log.Debug(ctx, "getting note", zap.String("noteID", noteID), zap.String("userID", userID))

	query := `SELECT ` + noteColumns + `
        FROM notes n
        LEFT JOIN note_tags nt ON nt.note_id = n.id
        WHERE n.id = $1 AND n.user_id = $2
        GROUP BY n.id`

	var note entities.Note
	err := r.pool.QueryRow(ctx, query, noteID, userID).Scan(
		&note.ID, &note.UserID, &note.Title, &note.Content,
		&note.FolderID, &note.CreatedAt, &note.UpdatedAt, &note.Tags,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return nil, nil
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// List fetches the notes matching the filter, newest update first. The owner
// constraint is always bound first; optional constraints are appended with
// AND.
func (r *NoteRepository) List(ctx context.Context, filter services.NoteFilter) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "List"))
	log.Debug(ctx, "listing notes", zap.String("userID", filter.OwnerID))

	conds := []string{"n.user_id = $1"}
	args := []interface{}{filter.OwnerID}

	if filter.SearchTerm != "" {
		args = append(args, "%"+escapeLike(filter.SearchTerm)+"%")
		p := len(args)
		conds = append(conds, fmt.Sprintf("(n.title LIKE $%d OR n.content LIKE $%d)", p, p))
	}
	if filter.FolderID != "" {
		args = append(args, filter.FolderID)
		conds = append(conds, fmt.Sprintf("n.folder_id::text = $%d", len(args)))
	}
	if filter.TagID != "" {
		args = append(args, filter.TagID)
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM note_tags m WHERE m.note_id = n.id AND m.tag_id::text = $%d)", len(args)))
	}

	query := `SELECT ` + noteColumns + `
        FROM notes n
        LEFT JOIN note_tags nt ON nt.note_id = n.id
        WHERE ` + strings.Join(conds, " AND ") + `
        GROUP BY n.id
        ORDER BY n.updated_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(
			&note.ID, &note.UserID, &note.Title, &note.Content,
			&note.FolderID, &note.CreatedAt, &note.UpdatedAt, &note.Tags,
		)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Update performs a full-field replace of a note scoped by id and owner,
// replacing its tag links in the same transaction. A scoped miss returns
// (nil, nil).
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", note.ID))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "failed to begin transaction", zap.Error(err))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	updated := *note
	err = tx.QueryRow(ctx,
		`UPDATE notes SET title = $1, content = $2, folder_id = $3, updated_at = now()
         WHERE id = $4 AND user_id = $5
         RETURNING id, user_id, title, content, folder_id, created_at, updated_at`,
		note.Title, note.Content, note.FolderID, note.ID, note.UserID,
	).Scan(
		&updated.ID, &updated.UserID, &updated.Title, &updated.Content,
		&updated.FolderID, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found or not owned by user")
			return nil, nil
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	if err := replaceNoteTags(ctx, tx, updated.ID, note.Tags); err != nil {
		log.Error(ctx, "failed to replace tags", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "failed to commit transaction", zap.Error(err))
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	updated.Tags = note.Tags
	if updated.Tags == nil {
		updated.Tags = []string{}
	}
	return &updated, nil
}

// Delete removes a note scoped by id and owner. Deleting a note that does
// not exist or is not owned is not an error.
func (r *NoteRepository) Delete(ctx context.Context, noteID, userID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	_, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}

func replaceNoteTags(ctx context.Context, tx pgx.Tx, noteID string, tagIDs []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM note_tags WHERE note_id = $1`, noteID); err != nil {
		return fmt.Errorf("failed to clear note tags: %w", err)
	}
	for _, tagID := range tagIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO note_tags (note_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			noteID, tagID,
		); err != nil {
			return fmt.Errorf("failed to insert note tag: %w", err)
		}
	}
	return nil
}

// escapeLike escapes LIKE metacharacters so the search term matches as a
// literal substring.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
