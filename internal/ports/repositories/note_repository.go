package repositories

import (
	"context"

	"noteful/internal/domain/entities"
	"noteful/internal/domain/services"
)

// NoteRepository persists notes. GetByID and Update return (nil, nil) when no
// note matches both the id and the owner; Delete is a no-op in that case.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	GetByID(ctx context.Context, noteID, userID string) (*entities.Note, error)
	List(ctx context.Context, filter services.NoteFilter) ([]*entities.Note, error)
	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)
	Delete(ctx context.Context, noteID, userID string) error
}
