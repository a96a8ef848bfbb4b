package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"noteful/internal/domain/entities"
	"noteful/internal/domain/services"
	"noteful/internal/ports/repositories"
	svc "noteful/internal/ports/services"
	"noteful/pkg/logger"
)

// FolderUseCase implements folder management, enough to maintain the
// reference graph notes point into.
type FolderUseCase struct {
	folderRepo repositories.FolderRepository
	cache      svc.Cache
}

// NewFolderUseCase creates a new folder use case.
func NewFolderUseCase(folderRepo repositories.FolderRepository, cache svc.Cache) *FolderUseCase {
	return &FolderUseCase{
		folderRepo: folderRepo,
		cache:      cache,
	}
}

// ListFolders returns the owner's folders.
func (uc *FolderUseCase) ListFolders(ctx context.Context, ownerID string) ([]*entities.Folder, error) {
	folders, err := uc.folderRepo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return folders, nil
}

// CreateFolder creates a folder owned by the caller.
func (uc *FolderUseCase) CreateFolder(ctx context.Context, ownerID, name string) (*entities.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, services.ErrMissingName
	}

	folder, err := uc.folderRepo.Create(ctx, &entities.Folder{UserID: ownerID, Name: name})
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}
	return folder, nil
}

// DeleteFolder removes a folder scoped by id and owner. Idempotent like note
// deletion; a malformed id deletes nothing. The schema clears folder_id on
// the owner's notes, so the cached note list is dropped too.
func (uc *FolderUseCase) DeleteFolder(ctx context.Context, ownerID, folderID string) error {
	if !validID(folderID) {
		return nil
	}
	if err := uc.folderRepo.Delete(ctx, folderID, ownerID); err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}

	if err := uc.cache.Delete(ctx, listCacheKey(ownerID)); err != nil {
		logger.Log(ctx).Warn(ctx, msgCacheDropSkip, zap.Error(err))
	}
	return nil
}
