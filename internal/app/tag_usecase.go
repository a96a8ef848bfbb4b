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

// TagUseCase implements tag management.
type TagUseCase struct {
	tagRepo repositories.TagRepository
	cache   svc.Cache
}

// NewTagUseCase creates a new tag use case.
func NewTagUseCase(tagRepo repositories.TagRepository, cache svc.Cache) *TagUseCase {
	return &TagUseCase{
		tagRepo: tagRepo,
		cache:   cache,
	}
}

// ListTags returns the owner's tags.
func (uc *TagUseCase) ListTags(ctx context.Context, ownerID string) ([]*entities.Tag, error) {
	tags, err := uc.tagRepo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// CreateTag creates a tag owned by the caller.
func (uc *TagUseCase) CreateTag(ctx context.Context, ownerID, name string) (*entities.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, services.ErrMissingName
	}

	tag, err := uc.tagRepo.Create(ctx, &entities.Tag{UserID: ownerID, Name: name})
	if err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

// DeleteTag removes a tag scoped by id and owner. The schema drops the tag's
// note links, so the cached note list is dropped too.
func (uc *TagUseCase) DeleteTag(ctx context.Context, ownerID, tagID string) error {
	if !validID(tagID) {
		return nil
	}
	if err := uc.tagRepo.Delete(ctx, tagID, ownerID); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	if err := uc.cache.Delete(ctx, listCacheKey(ownerID)); err != nil {
		logger.Log(ctx).Warn(ctx, msgCacheDropSkip, zap.Error(err))
	}
	return nil
}
