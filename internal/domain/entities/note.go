package entities

import "time"

// Note represents a user's note. FolderID is nil when the note is not filed
// in a folder. Tags holds the ids of the tags attached to the note.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	FolderID  *string   `json:"folder_id"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote creates a note owned by the given user.
func NewNote(userID, title, content string, folderID *string, tags []string) *Note {
	now := time.Now().UTC()
	if tags == nil {
		tags = []string{}
	}
	return &Note{
		UserID:    userID,
		Title:     title,
		Content:   content,
		FolderID:  folderID,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
