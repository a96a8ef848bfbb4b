// Package postgres provides PostgreSQL implementations of the repository
// interfaces.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"noteful/internal/ports/repositories"
)

// PgxPoolInterface is the subset of pgxpool.Pool the repositories use. It is
// satisfied by pgxpool.Pool and by pgxmock pools in tests.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// RepositoryFactory builds the repository set over one pool.
type RepositoryFactory struct {
	pool PgxPoolInterface
}

// NewRepositoryFactory creates a repository factory.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// UserRepository returns the user repository.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return NewUserRepository(f.pool)
}

// NoteRepository returns the note repository.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return NewNoteRepository(f.pool)
}

// FolderRepository returns the folder repository.
func (f *RepositoryFactory) FolderRepository() repositories.FolderRepository {
	return NewFolderRepository(f.pool)
}

// TagRepository returns the tag repository.
func (f *RepositoryFactory) TagRepository() repositories.TagRepository {
	return NewTagRepository(f.pool)
}
