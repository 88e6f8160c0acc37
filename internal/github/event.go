package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	gh "github.com/google/go-github/v80/github"
)

var ErrNoPullRequest = errors.New("could not get pull request number from event")

// PullRequestNumber reads the event payload that triggered the workflow and
// returns the pull request number it refers to.
func PullRequestNumber(eventPath string) (int, error) {
	if eventPath == "" {
		return 0, ErrNoPullRequest
	}

	data, err := os.ReadFile(eventPath)
	if err != nil {
		return 0, fmt.Errorf("reading event %s: %w", eventPath, err)
	}

	var event gh.PullRequestEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return 0, fmt.Errorf("decoding event %s: %w", eventPath, err)
	}

	if n := event.GetPullRequest().GetNumber(); n > 0 {
		return n, nil
	}
	if n := event.GetNumber(); n > 0 {
		return n, nil
	}
	return 0, ErrNoPullRequest
}
