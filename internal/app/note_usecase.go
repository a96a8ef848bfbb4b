// Package app implements the application use cases.
package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"noteful/internal/app/dto"
	"noteful/internal/domain/entities"
	"noteful/internal/domain/services"
	"noteful/internal/ports/repositories"
	svc "noteful/internal/ports/services"
	"noteful/pkg/logger"
)

const (
	msgListingNotes    = "listing notes"
	msgGettingNote     = "getting note"
	msgCreatingNote    = "creating note"
	msgUpdatingNote    = "updating note"
	msgDeletingNote    = "deleting note"
	msgListCacheHit    = "serving note list from cache"
	msgCacheReadFailed = "note list cache read failed"
	msgCacheWriteSkip  = "note list cache write failed"
	msgCacheDropSkip   = "note list cache invalidation failed"
)

// NoteUseCase implements the note command handlers: list, get, create,
// update, delete. The owner id always comes from the authenticated identity,
// never from the payload.
type NoteUseCase struct {
	noteRepo   repositories.NoteRepository
	folderRepo repositories.FolderRepository
	tagRepo    repositories.TagRepository
	cache      svc.Cache
}

// NewNoteUseCase creates a new note use case.
func NewNoteUseCase(
	noteRepo repositories.NoteRepository,
	folderRepo repositories.FolderRepository,
	tagRepo repositories.TagRepository,
	cache svc.Cache,
) *NoteUseCase {
	return &NoteUseCase{
		noteRepo:   noteRepo,
		folderRepo: folderRepo,
		tagRepo:    tagRepo,
		cache:      cache,
	}
}

// ListNotes returns the owner's notes matching the optional filters, newest
// update first. Unfiltered lists are served through the cache.
func (uc *NoteUseCase) ListNotes(ctx context.Context, ownerID string, query *dto.ListNotesQuery) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "ListNotes"), zap.String("userID", ownerID))
	log.Debug(ctx, msgListingNotes)

	filter := services.NewNoteFilter(ownerID, query.SearchTerm, query.FolderID, query.TagID)

	if filter.Unfiltered() {
		if cached, err := uc.cache.Get(ctx, listCacheKey(ownerID)); err != nil {
			log.Warn(ctx, msgCacheReadFailed, zap.Error(err))
		} else if cached != "" {
			var notes []*entities.Note
			if err := json.Unmarshal([]byte(cached), &notes); err == nil {
				log.Debug(ctx, msgListCacheHit)
				return notes, nil
			}
		}
	}

	notes, err := uc.noteRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	if filter.Unfiltered() {
		if encoded, err := json.Marshal(notes); err == nil {
			if err := uc.cache.Set(ctx, listCacheKey(ownerID), string(encoded), 0); err != nil {
				log.Warn(ctx, msgCacheWriteSkip, zap.Error(err))
			}
		}
	}

	return notes, nil
}

// GetNote returns one note scoped by id and owner.
func (uc *NoteUseCase) GetNote(ctx context.Context, ownerID, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "GetNote"), zap.String("noteID", noteID))
	log.Debug(ctx, msgGettingNote)

	if !validID(noteID) {
		return nil, &services.ShapeError{Field: "id"}
	}

	note, err := uc.noteRepo.GetByID(ctx, noteID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, services.ErrNoteNotFound
	}

	return note, nil
}

// CreateNote validates the payload and its references, then persists the
// note. Reference validation is strictly front-loaded: nothing is written
// until the folder and every tag are confirmed to exist and be owned by the
// caller.
func (uc *NoteUseCase) CreateNote(ctx context.Context, ownerID string, req *dto.CreateNoteRequest) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "CreateNote"), zap.String("userID", ownerID))
	log.Debug(ctx, msgCreatingNote)

	tags, err := checkNotePayload(req.Title, req.FolderID, req.Tags, "id")
	if err != nil {
		return nil, err
	}

	if err := uc.validateReferences(ctx, ownerID, req.FolderID, tags); err != nil {
		return nil, err
	}

	note := entities.NewNote(ownerID, req.Title, req.Content, optionalID(req.FolderID), tags)
	created, err := uc.noteRepo.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	uc.dropListCache(ctx, ownerID, log)
	return created, nil
}

// UpdateNote validates the payload and its references, then performs a
// full-field replace scoped by id and owner.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, ownerID, noteID string, req *dto.UpdateNoteRequest) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "UpdateNote"), zap.String("noteID", noteID))
	log.Debug(ctx, msgUpdatingNote)

	if !validID(noteID) {
		return nil, &services.ShapeError{Field: "id"}
	}

	tags, err := checkNotePayload(req.Title, req.FolderID, req.Tags, "tags.id")
	if err != nil {
		return nil, err
	}

	if err := uc.validateReferences(ctx, ownerID, req.FolderID, tags); err != nil {
		return nil, err
	}

	note := &entities.Note{
		ID:       noteID,
		UserID:   ownerID,
		Title:    req.Title,
		Content:  req.Content,
		FolderID: optionalID(req.FolderID),
		Tags:     tags,
	}

	updated, err := uc.noteRepo.Update(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	if updated == nil {
		return nil, services.ErrNoteNotFound
	}

	uc.dropListCache(ctx, ownerID, log)
	return updated, nil
}

// DeleteNote removes a note scoped by id and owner. Deletion is idempotent:
// a missing or malformed id deletes nothing and is not an error.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", "DeleteNote"), zap.String("noteID", noteID))
	log.Debug(ctx, msgDeletingNote)

	if !validID(noteID) {
		return nil
	}

	if err := uc.noteRepo.Delete(ctx, noteID, ownerID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	uc.dropListCache(ctx, ownerID, log)
	return nil
}

// validateReferences runs the folder and tag checks concurrently and waits
// for both. The reads are independent, so a failure in either rejects the
// request before any write happens.
func (uc *NoteUseCase) validateReferences(ctx context.Context, ownerID, folderID string, tagIDs []string) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return uc.validateFolder(gctx, folderID, ownerID)
	})
	g.Go(func() error {
		return uc.validateTags(gctx, tagIDs, ownerID)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return nil
}

// validateFolder succeeds trivially for an absent folder reference and
// otherwise requires a folder matching both the id and the owner.
func (uc *NoteUseCase) validateFolder(ctx context.Context, folderID, ownerID string) error {
	if folderID == "" {
		return nil
	}

	exists, err := uc.folderRepo.ExistsForUser(ctx, folderID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to validate folder: %w", err)
	}
	if !exists {
		return services.ErrInvalidFolder
	}
	return nil
}

// validateTags succeeds trivially for an empty tag set and otherwise
// requires every referenced tag to exist and be owned by the caller. The ids
// are already deduplicated, so the count comparison is exact.
func (uc *NoteUseCase) validateTags(ctx context.Context, tagIDs []string, ownerID string) error {
	if len(tagIDs) == 0 {
		return nil
	}

	count, err := uc.tagRepo.CountByIDsForUser(ctx, tagIDs, ownerID)
	if err != nil {
		return fmt.Errorf("failed to validate tags: %w", err)
	}
	if count != len(tagIDs) {
		return services.ErrInvalidTag
	}
	return nil
}

func (uc *NoteUseCase) dropListCache(ctx context.Context, ownerID string, log *logger.Logger) {
	if err := uc.cache.Delete(ctx, listCacheKey(ownerID)); err != nil {
		log.Warn(ctx, msgCacheDropSkip, zap.Error(err))
	}
}

// checkNotePayload runs the synchronous shape checks shared by create and
// update, returning the deduplicated tag set. tagField names the reported
// location for a malformed tag id: "id" on create, "tags.id" on update.
func checkNotePayload(title, folderID string, tagIDs []string, tagField string) ([]string, error) {
	if title == "" {
		return nil, services.ErrMissingTitle
	}
	if folderID != "" && !validID(folderID) {
		return nil, &services.ShapeError{Field: "folderId"}
	}
	for _, tagID := range tagIDs {
		if !validID(tagID) {
			return nil, &services.ShapeError{Field: tagField}
		}
	}
	return dedupeIDs(tagIDs), nil
}

// dedupeIDs drops duplicate ids while preserving order, so a duplicated
// valid tag cannot mask a missing one in the count comparison.
func dedupeIDs(ids []string) []string {
	deduped := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}
	return deduped
}

// validID reports whether the value has the expected reference shape.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func listCacheKey(ownerID string) string {
	return "notes:list:" + ownerID
}
