package policy

import (
	"strings"

	"github.com/tracker-tv/github-pr-gatekeeper/models"
)

// Classify derives the structural facts of a repository-relative path.
// Names whose only dot is the leading character (".gitignore") have no extension.
func Classify(path string) models.FileFacts {
	var facts models.FileFacts

	if slash := strings.IndexByte(path, '/'); slash >= 0 {
		facts.TopLevelDir = path[:slash]
		facts.HasTopLevelDir = true
	}

	facts.BaseName = path
	if slash := strings.LastIndexByte(path, '/'); slash >= 0 {
		facts.BaseName = path[slash+1:]
	}

	if dot := strings.LastIndexByte(facts.BaseName, '.'); dot > 0 {
		facts.Extension = facts.BaseName[dot+1:]
	}

	return facts
}
