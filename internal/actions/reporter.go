// Package actions reports to the GitHub Actions runner through workflow
// commands, job outputs and the step summary.
package actions

import (
	"fmt"
	"io"
	"os"

	"github.com/sethvargo/go-githubactions"
	"github.com/tracker-tv/github-pr-gatekeeper/models"
)

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
}

type Reporter struct {
	action *githubactions.Action
	getenv func(string) string
}

var _ Logger = (*Reporter)(nil)

func New() *Reporter {
	return NewWithEnv(os.Stdout, os.Getenv)
}

// NewWithEnv writes workflow commands to w and resolves runner files
// (GITHUB_OUTPUT, GITHUB_STEP_SUMMARY) through getenv.
func NewWithEnv(w io.Writer, getenv func(string) string) *Reporter {
	return &Reporter{
		action: githubactions.New(
			githubactions.WithWriter(w),
			githubactions.WithGetenv(getenv),
		),
		getenv: getenv,
	}
}

func (r *Reporter) Debugf(format string, args ...any) {
	r.action.Debugf(format, args...)
}

func (r *Reporter) Infof(format string, args ...any) {
	r.action.Infof(format, args...)
}

func (r *Reporter) Warningf(format string, args ...any) {
	r.action.Warningf(format, args...)
}

func (r *Reporter) Errorf(format string, args ...any) {
	r.action.Errorf(format, args...)
}

// Annotate emits an error annotation attached to the offending file.
func (r *Reporter) Annotate(f models.Finding) {
	r.action.WithFieldsMap(map[string]string{
		"file":  f.Path,
		"title": f.Category.String(),
	}).Errorf("%s: %s", f.Path, f.Detail)
}

// Fail marks the step as failed with a human-readable message. The caller is
// still responsible for exiting non-zero.
func (r *Reporter) Fail(msg string) {
	r.action.Errorf("%s", msg)
}

// SetOutput is a no-op outside a runner that provides GITHUB_OUTPUT.
func (r *Reporter) SetOutput(name, value string) {
	if r.getenv("GITHUB_OUTPUT") == "" {
		return
	}
	r.action.SetOutput(name, value)
}

func (r *Reporter) AddSummary(markdown string) {
	if r.getenv("GITHUB_STEP_SUMMARY") == "" {
		r.Debugf("GITHUB_STEP_SUMMARY not set, skipping step summary")
		return
	}
	r.action.AddStepSummary(markdown)
}

func (r *Reporter) Group(title string, fn func()) {
	r.action.Group(title)
	defer r.action.EndGroup()
	fn()
}

// Failf is a convenience for fatal start-up faults.
func (r *Reporter) Failf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	r.Fail(err.Error())
	return err
}
