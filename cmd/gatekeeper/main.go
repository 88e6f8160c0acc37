package main

import (
	"context"
	"embed"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tracker-tv/github-pr-gatekeeper/internal/actions"
	"github.com/tracker-tv/github-pr-gatekeeper/internal/config"
	"github.com/tracker-tv/github-pr-gatekeeper/internal/github"
	"github.com/tracker-tv/github-pr-gatekeeper/internal/orchestrator"
	"github.com/tracker-tv/github-pr-gatekeeper/internal/policy"
	"github.com/tracker-tv/github-pr-gatekeeper/internal/service"
)

//go:embed policies/*.json
var embeddedPolicies embed.FS

var errViolations = errors.New("found one or more file errors")

type flags struct {
	policyPath  string
	pullRequest int
	dryRun      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "gatekeeper",
		Short:         "Flag pull requests with badly named files, new root directories or large files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), actions.New(), f)
		},
	}

	cmd.Flags().StringVar(&f.policyPath, "policy", "", "path to a policy JSON file (default: embedded policy, or GATEKEEPER_POLICY_PATH)")
	cmd.Flags().IntVar(&f.pullRequest, "pr", 0, "pull request number (default: read from GITHUB_EVENT_PATH)")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "evaluate and report without labelling")

	return cmd
}

func run(ctx context.Context, reporter *actions.Reporter, f flags) error {
	cfg, err := config.Load()
	if err != nil {
		return reporter.Failf("failed to load config: %v", err)
	}
	if f.policyPath != "" {
		cfg.PolicyPath = f.policyPath
	}
	if f.dryRun {
		cfg.DryRun = true
	}

	policyCfg, err := loadPolicy(cfg)
	if err != nil {
		return reporter.Failf("failed to load policy: %v", err)
	}

	number := f.pullRequest
	if number == 0 {
		number, err = github.PullRequestNumber(cfg.EventPath)
		if err != nil {
			return reporter.Failf("%v", err)
		}
	}

	ghClient, err := newClient(cfg)
	if err != nil {
		return reporter.Failf("%v", err)
	}

	fileSvc := service.NewFileService(ghClient, cfg.SizeConcurrency, reporter)
	labelSvc := service.NewLabelService(ghClient, reporter)
	gatekeeper := orchestrator.NewGatekeeper(fileSvc, labelSvc, policyCfg, reporter, orchestrator.WithDryRun(cfg.DryRun))

	reporter.Infof("starting file check run for %s#%d", cfg.Repository, number)

	report, err := gatekeeper.Run(ctx, number)
	if err != nil {
		return reporter.Failf("%v", err)
	}

	publish(reporter, report)

	if report.Failed() {
		reporter.Fail(report.Summary())
		return errViolations
	}
	reporter.Infof("%s", report.Summary())
	return nil
}

func newClient(cfg *config.Config) (github.Client, error) {
	owner, repo, err := github.SplitRepository(cfg.Repository)
	if err != nil {
		return nil, err
	}
	if cfg.Enterprise() {
		return github.NewEnterprise(cfg.GithubToken, cfg.APIURL, owner, repo)
	}
	return github.New(cfg.GithubToken, owner, repo), nil
}

// loadPolicy reads the policy file named by the config, falling back to the
// embedded default, and applies the environment's size limit override.
func loadPolicy(cfg *config.Config) (*policy.Config, error) {
	var doc *policy.Document
	var err error
	if cfg.PolicyPath != "" {
		doc, err = policy.FromFile(cfg.PolicyPath)
	} else {
		var data []byte
		data, err = embeddedPolicies.ReadFile("policies/default.json")
		if err != nil {
			return nil, err
		}
		doc, err = policy.FromJSON(data)
	}
	if err != nil {
		return nil, err
	}

	if limit, ok := cfg.MaxFileSizeOverride(); ok {
		doc.MaxFileSizeBytes = limit
	}

	return doc.Compile()
}

func publish(reporter *actions.Reporter, report *orchestrator.Report) {
	if findings := report.State.Findings(); len(findings) > 0 {
		reporter.Group("violations", func() {
			for _, finding := range findings {
				reporter.Annotate(finding)
			}
		})
	}

	categories := make([]string, 0, len(report.State.Categories()))
	for _, c := range report.State.Categories() {
		categories = append(categories, c.String())
	}

	reporter.SetOutput("violations", strings.Join(categories, ","))
	reporter.SetOutput("labels", strings.Join(report.Labels, ","))
	reporter.SetOutput("new-root-directories", strings.Join(report.State.NewRootDirectories(), ","))
	reporter.AddSummary(report.Markdown())
}
