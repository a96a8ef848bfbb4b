// Package dto holds the request and response shapes of the HTTP API.
package dto

// CreateNoteRequest carries the payload for creating a note.
type CreateNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	FolderID string   `json:"folderId"`
	Tags     []string `json:"tags"`
}

// UpdateNoteRequest carries the payload for a full-field note replace.
type UpdateNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	FolderID string   `json:"folderId"`
	Tags     []string `json:"tags"`
}

// ListNotesQuery carries the optional list filters.
type ListNotesQuery struct {
	SearchTerm string `query:"searchTerm"`
	FolderID   string `query:"folderId"`
	TagID      string `query:"tagId"`
}
