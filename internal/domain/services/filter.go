package services

// NoteFilter is the declarative predicate for note list queries. OwnerID is
// always set, so every query is tenant-scoped by construction; the optional
// fields narrow the result further and combine with AND. Ordering is not part
// of the filter.
type NoteFilter struct {
	OwnerID    string
	SearchTerm string
	FolderID   string
	TagID      string
}

// NewNoteFilter builds a filter scoped to the given owner.
func NewNoteFilter(ownerID, searchTerm, folderID, tagID string) NoteFilter {
	return NoteFilter{
		OwnerID:    ownerID,
		SearchTerm: searchTerm,
		FolderID:   folderID,
		TagID:      tagID,
	}
}

// Unfiltered reports whether the filter carries no optional constraints, in
// which case it selects all notes owned by the identity.
func (f NoteFilter) Unfiltered() bool {
	return f.SearchTerm == "" && f.FolderID == "" && f.TagID == ""
}
