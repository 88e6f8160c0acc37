package orchestrator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tracker-tv/github-pr-gatekeeper/internal/policy"
	"github.com/tracker-tv/github-pr-gatekeeper/models"
)

func violatingReport(t *testing.T) *Report {
	cfg := testPolicy(t, nil)
	state := policy.Evaluate(cfg, []models.ChangedFile{
		{Path: "docs/Bad.md"},
		{Path: "docs/notes.txt"},
		{Path: "tools/run.md"},
		{Path: "stray.md"},
		{Path: "assets/big.png"},
	}, map[string]int64{"assets/big.png": 4096})

	return &Report{
		PullRequest:  8,
		FilesChecked: 5,
		State:        state,
		Labels:       []string{"invalid-file-name", "new-root-dir", "lf-detected"},
	}
}

func TestReport_SummaryOneLinePerCategory(t *testing.T) {
	summary := violatingReport(t).Summary()
	lines := strings.Split(summary, "\n")

	assert.Equal(t, "Found one or more file errors.", lines[0])
	assert.Equal(t, []string{
		"Invalid file names: docs/Bad.md",
		"Disallowed file extensions: docs/notes.txt",
		"Unapproved root directories: new tools; files at repository root stray.md",
		"Large files detected: assets/big.png (4096 bytes)",
	}, lines[1:])
}

func TestReport_Clean(t *testing.T) {
	r := &Report{PullRequest: 8, FilesChecked: 2, State: policy.NewRunState()}

	assert.False(t, r.Failed())
	assert.Contains(t, r.Summary(), "passed")
	assert.Contains(t, r.Markdown(), "no violations")
}

func TestReport_Markdown(t *testing.T) {
	r := violatingReport(t)

	md := r.Markdown()

	assert.Contains(t, md, "## File checks for #8")
	assert.Contains(t, md, "Labels applied: `invalid-file-name`, `new-root-dir`, `lf-detected`")
	assert.Contains(t, md, "| `assets/big.png` | oversized-file |")
	assert.Contains(t, md, "| `stray.md` | unapproved-root-directory |")

	r.DryRun = true
	assert.Contains(t, r.Markdown(), "dry run, not applied")
}
