package policy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracker-tv/github-pr-gatekeeper/models"
)

func newTestConfig(t *testing.T, mutate func(d *Document)) *Config {
	t.Helper()
	doc := Document{
		AllowedExtensions:    []string{"md", "yml", "jpg", "png"},
		FilenamePattern:      testPattern,
		FilenameExceptions:   []string{"README.md"},
		ApprovedTopLevelDirs: []string{"docs", "assets"},
		MaxFileSizeBytes:     1000,
		SizeCheck:            true,
	}
	if mutate != nil {
		mutate(&doc)
	}
	cfg, err := doc.Compile()
	require.NoError(t, err)
	return cfg
}

func TestCheckRootDirectory(t *testing.T) {
	cfg := newTestConfig(t, nil)

	_, bad := CheckRootDirectory(cfg, Classify("docs/a.md"))
	assert.False(t, bad)

	category, bad := CheckRootDirectory(cfg, Classify("new/b.md"))
	assert.True(t, bad)
	assert.Equal(t, models.UnapprovedRootDirectory, category)

	category, bad = CheckRootDirectory(cfg, Classify("a.md"))
	assert.True(t, bad)
	assert.Equal(t, models.UnapprovedRootDirectory, category)
}

func TestCheckRootDirectory_RootFileNeverApprovable(t *testing.T) {
	cfg := newTestConfig(t, func(d *Document) {
		d.ApprovedTopLevelDirs = append(d.ApprovedTopLevelDirs, "a.md", "")
	})

	_, bad := CheckRootDirectory(cfg, Classify("a.md"))
	assert.True(t, bad)
}

func TestCheckFilename(t *testing.T) {
	cfg := newTestConfig(t, nil)

	tests := []struct {
		path string
		bad  bool
	}{
		{"docs/report-2024.md", false},
		{"docs/Report.md", true},
		{"docs/my report.md", true},
		{"docs/double--dash.md", true},
		{"docs/README.md", false},
		{"docs/readme.MD", true},
		{"docs/no-extension", true},
		{"docs/a.b.md", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			category, bad := CheckFilename(cfg, Classify(tt.path))
			assert.Equal(t, tt.bad, bad)
			if bad {
				assert.Equal(t, models.InvalidFilename, category)
			}
		})
	}
}

func TestCheckFilename_ExceptionIsCaseSensitive(t *testing.T) {
	cfg := newTestConfig(t, nil)

	_, bad := CheckFilename(cfg, Classify("docs/readme.md"))
	assert.False(t, bad, "matches pattern on its own")

	_, bad = CheckFilename(cfg, Classify("docs/Readme.md"))
	assert.True(t, bad)
}

func TestCheckExtension(t *testing.T) {
	cfg := newTestConfig(t, func(d *Document) { d.AllowedExtensions = []string{"md"} })

	_, bad := CheckExtension(cfg, Classify("docs/report.md"))
	assert.False(t, bad)

	category, bad := CheckExtension(cfg, Classify("docs/report.PDF"))
	assert.True(t, bad)
	assert.Equal(t, models.InvalidExtension, category)

	_, bad = CheckExtension(cfg, Classify("docs/report.MD"))
	assert.True(t, bad)

	_, bad = CheckExtension(cfg, Classify("docs/.gitignore"))
	assert.True(t, bad, "dotfiles have an empty extension")
}

func TestCheckSize_Boundary(t *testing.T) {
	cfg := newTestConfig(t, nil)

	_, bad := CheckSize(cfg, 1000)
	assert.False(t, bad)

	category, bad := CheckSize(cfg, 1001)
	assert.True(t, bad)
	assert.Equal(t, models.OversizedFile, category)
}

func TestEvaluate_NewRootDirectory(t *testing.T) {
	cfg := newTestConfig(t, func(d *Document) { d.ApprovedTopLevelDirs = []string{"docs"} })

	state := Evaluate(cfg, []models.ChangedFile{
		{Path: "docs/a.md"},
		{Path: "new/b.md"},
	}, nil)

	assert.Equal(t, []models.ViolationCategory{models.UnapprovedRootDirectory}, state.Categories())
	assert.Equal(t, []string{"new"}, state.NewRootDirectories())
	assert.Empty(t, state.RootFiles())
}

func TestEvaluate_RootDirectoryReportedOnce(t *testing.T) {
	cfg := newTestConfig(t, nil)

	var files []models.ChangedFile
	for i := 0; i < 50; i++ {
		files = append(files, models.ChangedFile{Path: fmt.Sprintf("vendor/file-%d.md", i)})
	}
	files = append(files, models.ChangedFile{Path: "tools/x.md"}, models.ChangedFile{Path: "vendor/y.md"})

	state := Evaluate(cfg, files, nil)

	assert.Equal(t, []string{"vendor", "tools"}, state.NewRootDirectories())
	assert.Len(t, state.Findings(), 52)
}

func TestEvaluate_RootFileRecorded(t *testing.T) {
	cfg := newTestConfig(t, nil)

	state := Evaluate(cfg, []models.ChangedFile{{Path: "notes.md"}}, nil)

	assert.True(t, state.HasCategory(models.UnapprovedRootDirectory))
	assert.Equal(t, []string{"notes.md"}, state.RootFiles())
	assert.Empty(t, state.NewRootDirectories())
}

func TestEvaluate_FilenameAndExtensionIndependent(t *testing.T) {
	cfg := newTestConfig(t, nil)

	state := Evaluate(cfg, []models.ChangedFile{{Path: "docs/Bad Name.exe"}}, nil)

	assert.Equal(t, []models.ViolationCategory{models.InvalidFilename, models.InvalidExtension}, state.Categories())

	state = Evaluate(cfg, []models.ChangedFile{{Path: "docs/good.exe"}}, nil)
	assert.Equal(t, []models.ViolationCategory{models.InvalidExtension}, state.Categories())
}

func TestEvaluate_Sizes(t *testing.T) {
	cfg := newTestConfig(t, nil)
	files := []models.ChangedFile{
		{Path: "assets/ok.png"},
		{Path: "assets/big.png"},
		{Path: "assets/unknown.png"},
	}
	sizes := map[string]int64{"assets/ok.png": 1000, "assets/big.png": 1001}

	state := Evaluate(cfg, files, sizes)

	assert.Equal(t, []models.ViolationCategory{models.OversizedFile}, state.Categories())
	oversized := state.OversizedFiles()
	require.Len(t, oversized, 1)
	assert.Equal(t, "assets/big.png", oversized[0].Path)
	assert.Equal(t, int64(1001), oversized[0].Size)
}

func TestEvaluate_SizeCheckDisabled(t *testing.T) {
	cfg := newTestConfig(t, func(d *Document) { d.SizeCheck = false })

	state := Evaluate(cfg, []models.ChangedFile{{Path: "assets/big.png"}}, map[string]int64{"assets/big.png": 5000})

	assert.False(t, state.HasViolations())
}

func TestEvaluate_CleanPullRequest(t *testing.T) {
	cfg := newTestConfig(t, nil)

	state := Evaluate(cfg, []models.ChangedFile{
		{Path: "docs/getting-started.md"},
		{Path: "docs/README.md"},
		{Path: "assets/logo.png"},
	}, map[string]int64{"assets/logo.png": 10})

	assert.False(t, state.HasViolations())
	assert.Empty(t, state.Categories())
	assert.Empty(t, state.Findings())
}

func TestEvaluate_SkipsRemovedAndIgnored(t *testing.T) {
	cfg := newTestConfig(t, func(d *Document) { d.IgnorePaths = []string{".github/**"} })

	state := Evaluate(cfg, []models.ChangedFile{
		{Path: "Old File.txt", Status: models.FileStatusRemoved},
		{Path: ".github/workflows/CI.yaml", Status: models.FileStatusAdded},
	}, nil)

	assert.False(t, state.HasViolations())
}
