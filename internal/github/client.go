package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-pr-gatekeeper/models"
)

var ErrNotFound = errors.New("not found")

type PullRequestsAdapter interface {
	ListFiles(ctx context.Context, owner, repo string, number int, opts *gh.ListOptions) ([]*gh.CommitFile, *gh.Response, error)
}

type GitAdapter interface {
	GetBlob(ctx context.Context, owner, repo, sha string) (*gh.Blob, *gh.Response, error)
}

type IssuesAdapter interface {
	GetLabel(ctx context.Context, owner, repo, name string) (*gh.Label, *gh.Response, error)
	CreateLabel(ctx context.Context, owner, repo string, label *gh.Label) (*gh.Label, *gh.Response, error)
	AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*gh.Label, *gh.Response, error)
}

// Client is the subset of the GitHub API the gatekeeper talks to, scoped to a
// single repository.
type Client interface {
	ListChangedFiles(ctx context.Context, number int) ([]models.ChangedFile, error)
	GetBlobSize(ctx context.Context, sha string) (int64, error)
	GetLabel(ctx context.Context, name string) (*models.Label, error)
	CreateLabel(ctx context.Context, label models.Label) error
	AddLabels(ctx context.Context, number int, names []string) error
}

type client struct {
	pullRequests PullRequestsAdapter
	git          GitAdapter
	issues       IssuesAdapter
	owner        string
	repo         string
	maxRetries   int
	baseDelay    time.Duration
}

type authTransport struct {
	token string
	base  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// New returns a Client for owner/repo on github.com.
func New(token, owner, repo string) Client {
	return newClient(gh.NewClient(httpClient(token)), owner, repo)
}

// NewEnterprise returns a Client talking to a GitHub Enterprise API root.
func NewEnterprise(token, apiURL, owner, repo string) (Client, error) {
	ghc, err := gh.NewClient(httpClient(token)).WithEnterpriseURLs(apiURL, apiURL)
	if err != nil {
		return nil, fmt.Errorf("configuring api url %s: %w", apiURL, err)
	}
	return newClient(ghc, owner, repo), nil
}

// SplitRepository splits an "owner/repo" slug.
func SplitRepository(slug string) (string, string, error) {
	owner, repo, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("invalid repository %q, expected owner/repo", slug)
	}
	return owner, repo, nil
}

func httpClient(token string) *http.Client {
	if token == "" {
		return nil
	}
	return &http.Client{
		Transport: &authTransport{token: token},
	}
}

func newClient(ghc *gh.Client, owner, repo string) *client {
	return &client{
		pullRequests: ghc.PullRequests,
		git:          ghc.Git,
		issues:       ghc.Issues,
		owner:        owner,
		repo:         repo,
		maxRetries:   5,
		baseDelay:    1 * time.Second,
	}
}

func isNotFound(resp *gh.Response, err error) bool {
	if resp != nil && resp.Response != nil && resp.StatusCode == http.StatusNotFound {
		return true
	}
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode == http.StatusNotFound
	}
	return false
}
