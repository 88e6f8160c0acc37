package orchestrator

import (
	"context"
	"fmt"

	"github.com/tracker-tv/github-pr-gatekeeper/internal/actions"
	"github.com/tracker-tv/github-pr-gatekeeper/internal/policy"
	"github.com/tracker-tv/github-pr-gatekeeper/internal/service"
	"github.com/tracker-tv/github-pr-gatekeeper/models"
)

type Gatekeeper struct {
	files    service.FileService
	labels   service.LabelService
	policy   *policy.Config
	resolver LabelResolver
	log      actions.Logger
	dryRun   bool
}

type Option func(*Gatekeeper)

func WithDryRun(dryRun bool) Option {
	return func(g *Gatekeeper) { g.dryRun = dryRun }
}

func WithLabelResolver(r LabelResolver) Option {
	return func(g *Gatekeeper) { g.resolver = r }
}

func NewGatekeeper(files service.FileService, labels service.LabelService, cfg *policy.Config, log actions.Logger, opts ...Option) *Gatekeeper {
	g := &Gatekeeper{
		files:    files,
		labels:   labels,
		policy:   cfg,
		resolver: CategoryLabels{SplitExtension: cfg.SplitExtensionLabel},
		log:      log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run evaluates one pull request and labels it when it violates the policy.
// Violations are reported through the returned Report; an error means the
// run itself could not complete.
func (g *Gatekeeper) Run(ctx context.Context, number int) (*Report, error) {
	report := &Report{PullRequest: number, Phase: PhaseInit, DryRun: g.dryRun}

	files, err := g.files.List(ctx, number)
	if err != nil {
		return nil, err
	}

	report.Phase = PhaseEvaluating
	var sizes map[string]int64
	if g.policy.SizeCheck {
		var applicable []models.ChangedFile
		for _, f := range files {
			if g.policy.Applies(f) {
				applicable = append(applicable, f)
			}
		}
		sizes, err = g.files.Sizes(ctx, applicable)
		if err != nil {
			return nil, err
		}
	}

	report.State = policy.Evaluate(g.policy, files, sizes)
	for _, f := range files {
		if g.policy.Applies(f) {
			report.FilesChecked++
		}
	}

	if !report.State.HasViolations() {
		report.Outcome = PhaseClean
		report.Phase = PhaseReported
		g.log.Infof("no violations in %d files", report.FilesChecked)
		return report, nil
	}

	report.Outcome = PhaseViolating
	for _, f := range report.State.Findings() {
		g.log.Debugf("%s: %s: %s", f.Path, f.Category, f.Detail)
	}

	labels := g.resolver.Resolve(report.State.Categories())
	for _, l := range labels {
		report.Labels = append(report.Labels, l.Name)
	}

	if g.dryRun {
		g.log.Infof("dry run: not applying labels %v", report.Labels)
		report.Phase = PhaseReported
		return report, nil
	}

	for _, record := range g.labels.EnsureAll(ctx, labels) {
		if !record.Exists {
			g.log.Warningf("label %s could not be ensured, applying anyway", record.Name)
		}
	}

	if err := g.labels.Apply(ctx, number, report.Labels); err != nil {
		return nil, fmt.Errorf("labelling pull request #%d: %w", number, err)
	}

	report.Phase = PhaseReported
	return report, nil
}
