package dto

// CreateFolderRequest carries the payload for creating a folder.
type CreateFolderRequest struct {
	Name string `json:"name"`
}

// CreateTagRequest carries the payload for creating a tag.
type CreateTagRequest struct {
	Name string `json:"name"`
}
