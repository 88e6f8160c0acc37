package models

type FileStatus string

const (
	FileStatusAdded    FileStatus = "added"
	FileStatusModified FileStatus = "modified"
	FileStatusRemoved  FileStatus = "removed"
	FileStatusRenamed  FileStatus = "renamed"
)

type ChangedFile struct {
	Path    string
	BlobSHA string
	Status  FileStatus
}

// FileFacts are the structural facts derived from a repository-relative path.
// TopLevelDir is only meaningful when HasTopLevelDir is set.
type FileFacts struct {
	TopLevelDir    string
	HasTopLevelDir bool
	BaseName       string
	Extension      string
}
