package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
)

// withRetry calls fn until it succeeds, fails with something other than a
// rate limit, or runs out of attempts. It waits for the rate limit reset when
// GitHub reports one and backs off exponentially otherwise.
func withRetry[T any](ctx context.Context, c *client, fn func() (T, *gh.Response, error)) (T, *gh.Response, error) {
	var zero T

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		result, resp, err := fn()
		if err == nil {
			return result, resp, nil
		}

		var waitDuration time.Duration
		var rateLimitErr *gh.RateLimitError
		var abuseErr *gh.AbuseRateLimitError
		switch {
		case errors.As(err, &rateLimitErr):
			waitDuration = time.Until(rateLimitErr.Rate.Reset.Time)
		case errors.As(err, &abuseErr):
			waitDuration = abuseErr.GetRetryAfter()
		default:
			return zero, resp, err
		}

		if attempt == c.maxRetries {
			return zero, resp, fmt.Errorf("max retries reached: %w", err)
		}

		if waitDuration <= 0 {
			waitDuration = c.baseDelay * time.Duration(1<<attempt)
		}

		select {
		case <-time.After(waitDuration):
		case <-ctx.Done():
			return zero, nil, ctx.Err()
		}
	}

	return zero, nil, fmt.Errorf("unexpected retry loop exit")
}
