package postgres_test

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteful/internal/adapters/postgres"
	"noteful/internal/domain/entities"
	"noteful/internal/domain/services"
)

const (
	testOwnerID  = "3b8f4a7e-92cd-4f6b-8a2e-5d1c9e0f6a21"
	testNoteID   = "7c1d2e3f-4a5b-6c7d-8e9f-0a1b2c3d4e5f"
	testFolderID = "9e8d7c6b-5a4f-3e2d-1c0b-a9f8e7d6c5b4"
	testTagID    = "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d"
)

var noteRowColumns = []string{"id", "user_id", "title", "content", "folder_id", "created_at", "updated_at", "tags"}

func TestNoteRepository_Create(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("inserts the note and its tag links in one transaction", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		note := entities.NewNote(testOwnerID, "trip", "pack sunscreen", nil, []string{testTagID})

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO notes .+").
			WithArgs(testOwnerID, "trip", "pack sunscreen", (*string)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(testNoteID, now, now))
		mock.ExpectExec("DELETE FROM note_tags WHERE note_id = \\$1").
			WithArgs(testNoteID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec("INSERT INTO note_tags .+").
			WithArgs(testNoteID, testTagID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		mock.ExpectRollback()

		repo := postgres.NewNoteRepository(mock)
		created, err := repo.Create(ctx, note)

		require.NoError(t, err)
		assert.Equal(t, testNoteID, created.ID)
		assert.Equal(t, testOwnerID, created.UserID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the insert fails", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		note := entities.NewNote(testOwnerID, "trip", "", nil, nil)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO notes .+").
			WithArgs(testOwnerID, "trip", "", (*string)(nil)).
			WillReturnError(pgx.ErrTxClosed)
		mock.ExpectRollback()

		repo := postgres.NewNoteRepository(mock)
		_, err = repo.Create(ctx, note)

		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_GetByID(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("scopes the lookup by id and owner", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("WHERE n.id = \\$1 AND n.user_id = \\$2").
			WithArgs(testNoteID, testOwnerID).
			WillReturnRows(pgxmock.NewRows(noteRowColumns).
				AddRow(testNoteID, testOwnerID, "trip", "pack sunscreen", (*string)(nil), now, now, []string{testTagID}))

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.GetByID(ctx, testNoteID, testOwnerID)

		require.NoError(t, err)
		require.NotNil(t, note)
		assert.Equal(t, []string{testTagID}, note.Tags)
	})

	t.Run("returns nil on a scoped miss", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("WHERE n.id = \\$1 AND n.user_id = \\$2").
			WithArgs(testNoteID, testOwnerID).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewNoteRepository(mock)
		note, err := repo.GetByID(ctx, testNoteID, testOwnerID)

		require.NoError(t, err)
		assert.Nil(t, note)
	})
}

func TestNoteRepository_List(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("binds only the owner when unfiltered", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("WHERE n.user_id = \\$1\\s+GROUP BY n.id\\s+ORDER BY n.updated_at DESC").
			WithArgs(testOwnerID).
			WillReturnRows(pgxmock.NewRows(noteRowColumns).
				AddRow(testNoteID, testOwnerID, "trip", "", (*string)(nil), now, now, []string{}))

		repo := postgres.NewNoteRepository(mock)
		notes, err := repo.List(ctx, services.NewNoteFilter(testOwnerID, "", "", ""))

		require.NoError(t, err)
		require.Len(t, notes, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("escapes LIKE metacharacters in the search term", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("WHERE n.user_id = \\$1 AND \\(n.title LIKE \\$2 OR n.content LIKE \\$2\\)").
			WithArgs(testOwnerID, `%100\%%`).
			WillReturnRows(pgxmock.NewRows(noteRowColumns))

		repo := postgres.NewNoteRepository(mock)
		notes, err := repo.List(ctx, services.NewNoteFilter(testOwnerID, "100%", "", ""))

		require.NoError(t, err)
		assert.Empty(t, notes)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("binds every optional constraint in order", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("WHERE n.user_id = \\$1 AND \\(n.title LIKE \\$2 OR n.content LIKE \\$2\\) AND n.folder_id::text = \\$3 AND EXISTS .*m.tag_id::text = \\$4").
			WithArgs(testOwnerID, "%beach%", testFolderID, testTagID).
			WillReturnRows(pgxmock.NewRows(noteRowColumns))

		repo := postgres.NewNoteRepository(mock)
		_, err = repo.List(ctx, services.NewNoteFilter(testOwnerID, "beach", testFolderID, testTagID))

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_Update(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("replaces the row and its tag links", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		note := &entities.Note{
			ID:      testNoteID,
			UserID:  testOwnerID,
			Title:   "new title",
			Content: "new content",
			Tags:    []string{testTagID},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("WHERE id = \\$4 AND user_id = \\$5").
			WithArgs("new title", "new content", (*string)(nil), testNoteID, testOwnerID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "title", "content", "folder_id", "created_at", "updated_at"}).
				AddRow(testNoteID, testOwnerID, "new title", "new content", (*string)(nil), now, now))
		mock.ExpectExec("DELETE FROM note_tags WHERE note_id = \\$1").
			WithArgs(testNoteID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec("INSERT INTO note_tags .+").
			WithArgs(testNoteID, testTagID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		mock.ExpectRollback()

		repo := postgres.NewNoteRepository(mock)
		updated, err := repo.Update(ctx, note)

		require.NoError(t, err)
		assert.Equal(t, "new title", updated.Title)
		assert.Equal(t, []string{testTagID}, updated.Tags)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns nil on a scoped miss", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		note := &entities.Note{ID: testNoteID, UserID: testOwnerID, Title: "t"}

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE notes SET .+").
			WithArgs("t", "", (*string)(nil), testNoteID, testOwnerID).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		repo := postgres.NewNoteRepository(mock)
		updated, err := repo.Update(ctx, note)

		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestNoteRepository_Delete(t *testing.T) {
	ctx := testContext(t)

	t.Run("ignores how many rows were removed", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM notes WHERE id = \\$1 AND user_id = \\$2").
			WithArgs(testNoteID, testOwnerID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewNoteRepository(mock)
		require.NoError(t, repo.Delete(ctx, testNoteID, testOwnerID))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
