package policy

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tracker-tv/github-pr-gatekeeper/models"
)

// CheckRootDirectory reports files that sit at the repository root or under a
// top-level directory that is not approved. Root files are never approvable.
func CheckRootDirectory(cfg *Config, facts models.FileFacts) (models.ViolationCategory, bool) {
	if !facts.HasTopLevelDir {
		return models.UnapprovedRootDirectory, true
	}
	if _, ok := cfg.ApprovedTopLevelDirs[facts.TopLevelDir]; !ok {
		return models.UnapprovedRootDirectory, true
	}
	return 0, false
}

func CheckFilename(cfg *Config, facts models.FileFacts) (models.ViolationCategory, bool) {
	if _, ok := cfg.FilenameExceptions[facts.BaseName]; ok {
		return 0, false
	}
	if !cfg.FilenamePattern.MatchString(facts.BaseName) {
		return models.InvalidFilename, true
	}
	return 0, false
}

func CheckExtension(cfg *Config, facts models.FileFacts) (models.ViolationCategory, bool) {
	if _, ok := cfg.AllowedExtensions[facts.Extension]; !ok {
		return models.InvalidExtension, true
	}
	return 0, false
}

// CheckSize allows files of exactly the limit.
func CheckSize(cfg *Config, size int64) (models.ViolationCategory, bool) {
	if size > cfg.MaxFileSizeBytes {
		return models.OversizedFile, true
	}
	return 0, false
}

// Ignored reports whether path matches one of the configured ignore globs.
func (c *Config) Ignored(path string) bool {
	for _, glob := range c.IgnorePaths {
		if ok, err := doublestar.Match(glob, path); err == nil && ok {
			return true
		}
	}
	return false
}

// Applies reports whether a changed file is subject to the rules at all.
func (c *Config) Applies(file models.ChangedFile) bool {
	return file.Status != models.FileStatusRemoved && !c.Ignored(file.Path)
}

// Evaluate runs every rule over every applicable file. sizes is only consulted
// when the size check is enabled; files missing from it are not size-checked.
func Evaluate(cfg *Config, files []models.ChangedFile, sizes map[string]int64) *RunState {
	state := NewRunState()
	for _, file := range files {
		EvaluateFile(cfg, state, file, sizes)
	}
	return state
}

func EvaluateFile(cfg *Config, state *RunState, file models.ChangedFile, sizes map[string]int64) {
	if !cfg.Applies(file) {
		return
	}

	facts := Classify(file.Path)

	if category, bad := CheckRootDirectory(cfg, facts); bad {
		state.Record(category)
		if facts.HasTopLevelDir {
			state.AddRootDirectory(facts.TopLevelDir)
			state.AddFinding(models.Finding{
				Path:     file.Path,
				Category: category,
				Detail:   fmt.Sprintf("top-level directory %q is not approved", facts.TopLevelDir),
			})
		} else {
			state.AddRootFile(file.Path)
			state.AddFinding(models.Finding{
				Path:     file.Path,
				Category: category,
				Detail:   "files may not be added at the repository root",
			})
		}
	}

	if category, bad := CheckFilename(cfg, facts); bad {
		state.Record(category)
		state.AddFinding(models.Finding{
			Path:     file.Path,
			Category: category,
			Detail:   fmt.Sprintf("invalid file name %q: names must be lowercase and cannot contain spaces or special characters", facts.BaseName),
		})
	}

	if category, bad := CheckExtension(cfg, facts); bad {
		state.Record(category)
		state.AddFinding(models.Finding{
			Path:     file.Path,
			Category: category,
			Detail:   fmt.Sprintf("extension %q is not allowed", facts.Extension),
		})
	}

	if !cfg.SizeCheck {
		return
	}
	size, ok := sizes[file.Path]
	if !ok {
		return
	}
	if category, bad := CheckSize(cfg, size); bad {
		state.Record(category)
		state.AddOversized(file.Path, size)
		state.AddFinding(models.Finding{
			Path:     file.Path,
			Category: category,
			Detail:   fmt.Sprintf("file is %d bytes, limit is %d", size, cfg.MaxFileSizeBytes),
			Size:     size,
		})
	}
}
