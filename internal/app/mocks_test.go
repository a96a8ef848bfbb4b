package app_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"noteful/internal/domain/entities"
	"noteful/internal/domain/services"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) GetByID(ctx context.Context, noteID, userID string) (*entities.Note, error) {
	args := m.Called(ctx, noteID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) List(ctx context.Context, filter services.NoteFilter) ([]*entities.Note, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID, userID string) error {
	args := m.Called(ctx, noteID, userID)
	return args.Error(0)
}

type mockFolderRepository struct {
	mock.Mock
}

func (m *mockFolderRepository) List(ctx context.Context, userID string) ([]*entities.Folder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Folder), args.Error(1)
}

func (m *mockFolderRepository) Create(ctx context.Context, folder *entities.Folder) (*entities.Folder, error) {
	args := m.Called(ctx, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Folder), args.Error(1)
}

func (m *mockFolderRepository) Delete(ctx context.Context, folderID, userID string) error {
	args := m.Called(ctx, folderID, userID)
	return args.Error(0)
}

func (m *mockFolderRepository) ExistsForUser(ctx context.Context, folderID, userID string) (bool, error) {
	args := m.Called(ctx, folderID, userID)
	return args.Bool(0), args.Error(1)
}

type mockTagRepository struct {
	mock.Mock
}

func (m *mockTagRepository) List(ctx context.Context, userID string) ([]*entities.Tag, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Tag), args.Error(1)
}

func (m *mockTagRepository) Create(ctx context.Context, tag *entities.Tag) (*entities.Tag, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Tag), args.Error(1)
}

func (m *mockTagRepository) Delete(ctx context.Context, tagID, userID string) error {
	args := m.Called(ctx, tagID, userID)
	return args.Error(0)
}

func (m *mockTagRepository) CountByIDsForUser(ctx context.Context, tagIDs []string, userID string) (int, error) {
	args := m.Called(ctx, tagIDs, userID)
	return args.Int(0), args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

// mapCache is an in-memory cache for tests that exercise read-through and
// invalidation together.
type mapCache struct {
	entries map[string]string
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]string)}
}

func (c *mapCache) Get(_ context.Context, key string) (string, error) {
	return c.entries[key], nil
}

func (c *mapCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *mapCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func (c *mapCache) Close() error { return nil }

// quietCache ignores every call, for tests that do not assert cache traffic.
type quietCache struct{}

func (quietCache) Get(context.Context, string) (string, error) { return "", nil }

func (quietCache) Set(context.Context, string, string, time.Duration) error { return nil }

func (quietCache) Delete(context.Context, string) error { return nil }

func (quietCache) Close() error { return nil }
