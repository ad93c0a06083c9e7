package models

// FolderNode is one level of the inventory hierarchy. Folder points at the
// inventory record for the folder itself and is nil for path segments that
// only exist because a deeper item referenced them.
type FolderNode struct {
	Name     string        `json:"name"`
	Path     string        `json:"path"`
	Folder   *Record       `json:"folder,omitempty"`
	Files    []Record      `json:"files,omitempty"`
	Children []*FolderNode `json:"children,omitempty"`
}
