package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-pr-gatekeeper/models"
)

// GetLabel returns ErrNotFound (wrapped) when the repository has no such label.
func (c *client) GetLabel(ctx context.Context, name string) (*models.Label, error) {
	label, resp, err := c.issues.GetLabel(ctx, c.owner, c.repo, name)
	if err != nil {
		if isNotFound(resp, err) {
			return nil, fmt.Errorf("label %s: %w", name, ErrNotFound)
		}
		return nil, err
	}
	return &models.Label{
		Name:        label.GetName(),
		Color:       label.GetColor(),
		Description: label.GetDescription(),
	}, nil
}

func (c *client) CreateLabel(ctx context.Context, label models.Label) error {
	_, _, err := c.issues.CreateLabel(ctx, c.owner, c.repo, &gh.Label{
		Name:        gh.Ptr(label.Name),
		Color:       gh.Ptr(label.Color),
		Description: gh.Ptr(label.Description),
	})
	return err
}

func (c *client) AddLabels(ctx context.Context, number int, names []string) error {
	_, _, err := c.issues.AddLabelsToIssue(ctx, c.owner, c.repo, number, names)
	return err
}
