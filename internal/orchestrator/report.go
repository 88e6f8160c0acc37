package orchestrator

import (
	"fmt"
	"strings"

	"github.com/tracker-tv/github-pr-gatekeeper/internal/policy"
	"github.com/tracker-tv/github-pr-gatekeeper/models"
)

type Phase string

const (
	PhaseInit       Phase = "init"
	PhaseEvaluating Phase = "evaluating"
	PhaseClean      Phase = "clean"
	PhaseViolating  Phase = "violating"
	PhaseReported   Phase = "reported"
)

type Report struct {
	PullRequest  int
	FilesChecked int
	State        *policy.RunState
	Labels       []string
	Outcome      Phase // PhaseClean or PhaseViolating
	Phase        Phase
	DryRun       bool
}

func (r *Report) Failed() bool {
	return r.State != nil && r.State.HasViolations()
}

// Summary is the failure message: one line per violated category.
func (r *Report) Summary() string {
	if !r.Failed() {
		return fmt.Sprintf("Pull request #%d passed all file checks.", r.PullRequest)
	}

	findings := r.State.Findings()
	var lines []string
	for _, category := range r.State.Categories() {
		switch category {
		case models.InvalidFilename:
			lines = append(lines, "Invalid file names: "+strings.Join(pathsOf(findings, category), ", "))
		case models.InvalidExtension:
			lines = append(lines, "Disallowed file extensions: "+strings.Join(pathsOf(findings, category), ", "))
		case models.UnapprovedRootDirectory:
			line := "Unapproved root directories"
			if dirs := r.State.NewRootDirectories(); len(dirs) > 0 {
				line += ": new " + strings.Join(dirs, ", ")
			}
			if files := r.State.RootFiles(); len(files) > 0 {
				line += "; files at repository root " + strings.Join(files, ", ")
			}
			lines = append(lines, line)
		case models.OversizedFile:
			var parts []string
			for _, f := range r.State.OversizedFiles() {
				parts = append(parts, fmt.Sprintf("%s (%d bytes)", f.Path, f.Size))
			}
			lines = append(lines, "Large files detected: "+strings.Join(parts, ", "))
		}
	}

	return "Found one or more file errors.\n" + strings.Join(lines, "\n")
}

// Markdown renders the report for the job step summary.
func (r *Report) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "## File checks for #%d\n\n", r.PullRequest)
	if !r.Failed() {
		fmt.Fprintf(&b, ":white_check_mark: %d changed files checked, no violations.\n", r.FilesChecked)
		return b.String()
	}

	fmt.Fprintf(&b, ":x: %d changed files checked.\n\n", r.FilesChecked)
	if len(r.Labels) > 0 {
		labels := make([]string, len(r.Labels))
		for i, l := range r.Labels {
			labels[i] = "`" + l + "`"
		}
		verb := "Labels applied"
		if r.DryRun {
			verb = "Labels (dry run, not applied)"
		}
		fmt.Fprintf(&b, "%s: %s\n\n", verb, strings.Join(labels, ", "))
	}

	b.WriteString("| File | Rule | Detail |\n|------|------|--------|\n")
	for _, f := range r.State.Findings() {
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", f.Path, f.Category, strings.ReplaceAll(f.Detail, "|", `\|`))
	}

	return b.String()
}

func pathsOf(findings []models.Finding, category models.ViolationCategory) []string {
	var paths []string
	for _, f := range findings {
		if f.Category == category {
			paths = append(paths, f.Path)
		}
	}
	return paths
}
