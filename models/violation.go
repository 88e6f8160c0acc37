package models

type ViolationCategory int

const (
	InvalidFilename ViolationCategory = iota
	InvalidExtension
	UnapprovedRootDirectory
	OversizedFile
)

// ViolationCategories lists every category in reporting order.
var ViolationCategories = []ViolationCategory{
	InvalidFilename,
	InvalidExtension,
	UnapprovedRootDirectory,
	OversizedFile,
}

func (c ViolationCategory) String() string {
	switch c {
	case InvalidFilename:
		return "invalid-filename"
	case InvalidExtension:
		return "invalid-extension"
	case UnapprovedRootDirectory:
		return "unapproved-root-directory"
	case OversizedFile:
		return "oversized-file"
	default:
		return "unknown"
	}
}

type Finding struct {
	Path     string
	Category ViolationCategory
	Detail   string
	Size     int64 // only set for OversizedFile
}
