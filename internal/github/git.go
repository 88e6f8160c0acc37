package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) GetBlobSize(ctx context.Context, sha string) (int64, error) {
	blob, resp, err := withRetry(ctx, c, func() (*gh.Blob, *gh.Response, error) {
		return c.git.GetBlob(ctx, c.owner, c.repo, sha)
	})
	if err != nil {
		if isNotFound(resp, err) {
			return 0, fmt.Errorf("blob %s: %w", sha, ErrNotFound)
		}
		return 0, err
	}
	return int64(blob.GetSize()), nil
}
