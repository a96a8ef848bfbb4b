package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"noteful/internal/app"
	"noteful/internal/app/dto"
	"noteful/internal/domain/entities"
	"noteful/internal/domain/services"
)

func TestFolderUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a folder for the caller", func(t *testing.T) {
		folderRepo := new(mockFolderRepository)
		uc := app.NewFolderUseCase(folderRepo, quietCache{})

		folderRepo.On("Create", ctx, mock.MatchedBy(func(f *entities.Folder) bool {
			return f.UserID == ownerID && f.Name == "Work"
		})).Return(&entities.Folder{ID: folderID, UserID: ownerID, Name: "Work"}, nil)

		folder, err := uc.CreateFolder(ctx, ownerID, "Work")

		require.NoError(t, err)
		assert.Equal(t, folderID, folder.ID)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		folderRepo := new(mockFolderRepository)
		uc := app.NewFolderUseCase(folderRepo, quietCache{})

		_, err := uc.CreateFolder(ctx, ownerID, "   ")

		require.ErrorIs(t, err, services.ErrMissingName)
		folderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("delete ignores a malformed id", func(t *testing.T) {
		folderRepo := new(mockFolderRepository)
		uc := app.NewFolderUseCase(folderRepo, quietCache{})

		require.NoError(t, uc.DeleteFolder(ctx, ownerID, "garbage"))
		folderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lists the owner's folders", func(t *testing.T) {
		folderRepo := new(mockFolderRepository)
		uc := app.NewFolderUseCase(folderRepo, quietCache{})

		folderRepo.On("List", ctx, ownerID).
			Return([]*entities.Folder{{ID: folderID, UserID: ownerID, Name: "Work"}}, nil)

		folders, err := uc.ListFolders(ctx, ownerID)

		require.NoError(t, err)
		require.Len(t, folders, 1)
	})
}

func TestTagUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a tag for the caller", func(t *testing.T) {
		tagRepo := new(mockTagRepository)
		uc := app.NewTagUseCase(tagRepo, quietCache{})

		tagRepo.On("Create", ctx, mock.MatchedBy(func(tag *entities.Tag) bool {
			return tag.UserID == ownerID && tag.Name == "urgent"
		})).Return(&entities.Tag{ID: tagOne, UserID: ownerID, Name: "urgent"}, nil)

		tag, err := uc.CreateTag(ctx, ownerID, "urgent")

		require.NoError(t, err)
		assert.Equal(t, tagOne, tag.ID)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		tagRepo := new(mockTagRepository)
		uc := app.NewTagUseCase(tagRepo, quietCache{})

		_, err := uc.CreateTag(ctx, ownerID, "")

		require.ErrorIs(t, err, services.ErrMissingName)
		tagRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("delete ignores a malformed id", func(t *testing.T) {
		tagRepo := new(mockTagRepository)
		uc := app.NewTagUseCase(tagRepo, quietCache{})

		require.NoError(t, uc.DeleteTag(ctx, ownerID, "garbage"))
		tagRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReferenceDeletesInvalidateNoteListCache(t *testing.T) {
	ctx := context.Background()

	t.Run("folder delete drops the owner's cached list", func(t *testing.T) {
		folderRepo := new(mockFolderRepository)
		cache := new(mockCache)
		uc := app.NewFolderUseCase(folderRepo, cache)

		folderRepo.On("Delete", ctx, folderID, ownerID).Return(nil)
		cache.On("Delete", ctx, "notes:list:"+ownerID).Return(nil)

		require.NoError(t, uc.DeleteFolder(ctx, ownerID, folderID))
		cache.AssertExpectations(t)
	})

	t.Run("tag delete drops the owner's cached list", func(t *testing.T) {
		tagRepo := new(mockTagRepository)
		cache := new(mockCache)
		uc := app.NewTagUseCase(tagRepo, cache)

		tagRepo.On("Delete", ctx, tagOne, ownerID).Return(nil)
		cache.On("Delete", ctx, "notes:list:"+ownerID).Return(nil)

		require.NoError(t, uc.DeleteTag(ctx, ownerID, tagOne))
		cache.AssertExpectations(t)
	})

	t.Run("a list after a folder delete no longer serves the stale entry", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		folderRepo := new(mockFolderRepository)
		cache := newMapCache()

		notes := app.NewNoteUseCase(noteRepo, folderRepo, new(mockTagRepository), cache)
		folders := app.NewFolderUseCase(folderRepo, cache)

		filed := folderID
		noteRepo.On("List", ctx, services.NewNoteFilter(ownerID, "", "", "")).
			Return([]*entities.Note{{ID: noteID, UserID: ownerID, Title: "t", FolderID: &filed, Tags: []string{}}}, nil).
			Once()
		noteRepo.On("List", ctx, services.NewNoteFilter(ownerID, "", "", "")).
			Return([]*entities.Note{{ID: noteID, UserID: ownerID, Title: "t", Tags: []string{}}}, nil).
			Once()
		folderRepo.On("Delete", ctx, folderID, ownerID).Return(nil)

		warmed, err := notes.ListNotes(ctx, ownerID, &dto.ListNotesQuery{})
		require.NoError(t, err)
		require.NotNil(t, warmed[0].FolderID)

		require.NoError(t, folders.DeleteFolder(ctx, ownerID, folderID))

		listed, err := notes.ListNotes(ctx, ownerID, &dto.ListNotesQuery{})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Nil(t, listed[0].FolderID)
		noteRepo.AssertNumberOfCalls(t, "List", 2)
	})
}
