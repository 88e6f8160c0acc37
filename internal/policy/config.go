package policy

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
)

var ErrInvalidPolicy = errors.New("invalid policy")

// Document is the on-disk JSON form of a policy.
type Document struct {
	AllowedExtensions    []string `json:"allowed_extensions"`
	FilenamePattern      string   `json:"filename_pattern"`
	FilenameExceptions   []string `json:"filename_exceptions"`
	ApprovedTopLevelDirs []string `json:"approved_top_level_dirs"`
	MaxFileSizeBytes     int64    `json:"max_file_size_bytes"`
	SizeCheck            bool     `json:"size_check"`
	SplitExtensionLabel  bool     `json:"split_extension_label"`
	IgnorePaths          []string `json:"ignore_paths"`
}

// Config is a compiled policy. It is built once per run and never mutated.
type Config struct {
	AllowedExtensions    map[string]struct{}
	FilenamePattern      *regexp.Regexp
	FilenameExceptions   map[string]struct{}
	ApprovedTopLevelDirs map[string]struct{}
	MaxFileSizeBytes     int64
	SizeCheck            bool
	SplitExtensionLabel  bool
	IgnorePaths          []string
}

func FromJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPolicy, err)
	}
	return &doc, nil
}

func FromFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy %s: %w", path, err)
	}
	return FromJSON(data)
}

// Compile validates the document and produces a Config. The filename pattern
// is anchored so that it must match the whole base name.
func (d *Document) Compile() (*Config, error) {
	if d.MaxFileSizeBytes < 0 {
		return nil, fmt.Errorf("%w: max_file_size_bytes must be >= 0, got %d", ErrInvalidPolicy, d.MaxFileSizeBytes)
	}
	if d.FilenamePattern == "" {
		return nil, fmt.Errorf("%w: filename_pattern is required", ErrInvalidPolicy)
	}

	pattern, err := regexp.Compile(`^(?:` + d.FilenamePattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: filename_pattern: %w", ErrInvalidPolicy, err)
	}

	for _, glob := range d.IgnorePaths {
		if !doublestar.ValidatePattern(glob) {
			return nil, fmt.Errorf("%w: ignore_paths: bad pattern %q", ErrInvalidPolicy, glob)
		}
	}

	return &Config{
		AllowedExtensions:    toSet(d.AllowedExtensions),
		FilenamePattern:      pattern,
		FilenameExceptions:   toSet(d.FilenameExceptions),
		ApprovedTopLevelDirs: toSet(d.ApprovedTopLevelDirs),
		MaxFileSizeBytes:     d.MaxFileSizeBytes,
		SizeCheck:            d.SizeCheck,
		SplitExtensionLabel:  d.SplitExtensionLabel,
		IgnorePaths:          append([]string(nil), d.IgnorePaths...),
	}, nil
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
