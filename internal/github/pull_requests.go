package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-pr-gatekeeper/models"
)

func (c *client) ListChangedFiles(ctx context.Context, number int) ([]models.ChangedFile, error) {
	var files []models.ChangedFile
	opts := &gh.ListOptions{PerPage: 100}

	for {
		page, resp, err := withRetry(ctx, c, func() ([]*gh.CommitFile, *gh.Response, error) {
			return c.pullRequests.ListFiles(ctx, c.owner, c.repo, number, opts)
		})
		if err != nil {
			return nil, err
		}

		for _, f := range page {
			if f == nil {
				continue
			}
			files = append(files, models.ChangedFile{
				Path:    f.GetFilename(),
				BlobSHA: f.GetSHA(),
				Status:  models.FileStatus(f.GetStatus()),
			})
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return files, nil
}
