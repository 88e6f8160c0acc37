package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tracker-tv/github-pr-gatekeeper/internal/actions"
	"github.com/tracker-tv/github-pr-gatekeeper/internal/github"
	"github.com/tracker-tv/github-pr-gatekeeper/models"
	"golang.org/x/sync/errgroup"
)

type LabelService interface {
	Ensure(ctx context.Context, label models.Label) models.LabelRecord
	EnsureAll(ctx context.Context, labels []models.Label) []models.LabelRecord
	Apply(ctx context.Context, number int, names []string) error
}

type labelEntry struct {
	once   sync.Once
	record models.LabelRecord
}

type labelService struct {
	gh  github.Client
	log actions.Logger

	mu    sync.Mutex
	cache map[string]*labelEntry
}

// NewLabelService returns a LabelService whose Ensure results are cached for
// the lifetime of the service, i.e. one run.
func NewLabelService(ghClient github.Client, log actions.Logger) LabelService {
	return &labelService{
		gh:    ghClient,
		log:   log,
		cache: make(map[string]*labelEntry),
	}
}

// Ensure makes sure the label exists in the repository, creating it when the
// lookup reports it missing. Lookup and creation failures are logged and
// reported through LabelRecord.Exists, never returned.
func (s *labelService) Ensure(ctx context.Context, label models.Label) models.LabelRecord {
	s.mu.Lock()
	entry, ok := s.cache[label.Name]
	if !ok {
		entry = &labelEntry{}
		s.cache[label.Name] = entry
	}
	s.mu.Unlock()

	entry.once.Do(func() {
		entry.record = s.ensure(ctx, label)
	})
	return entry.record
}

func (s *labelService) ensure(ctx context.Context, label models.Label) models.LabelRecord {
	record := models.LabelRecord{Name: label.Name}

	_, err := s.gh.GetLabel(ctx, label.Name)
	switch {
	case err == nil:
		s.log.Debugf("label %s exists", label.Name)
		record.Exists = true
	case errors.Is(err, github.ErrNotFound):
		s.log.Infof("creating label %s", label.Name)
		if err := s.gh.CreateLabel(ctx, label); err != nil {
			s.log.Warningf("creating label %s: %v", label.Name, err)
			return record
		}
		record.Exists = true
	default:
		s.log.Warningf("getting label %s: %v", label.Name, err)
	}

	return record
}

// EnsureAll ensures every label concurrently and returns the records in the
// order of labels.
func (s *labelService) EnsureAll(ctx context.Context, labels []models.Label) []models.LabelRecord {
	records := make([]models.LabelRecord, len(labels))

	var g errgroup.Group
	for i, label := range labels {
		g.Go(func() error {
			records[i] = s.Ensure(ctx, label)
			return nil
		})
	}
	_ = g.Wait()

	return records
}

// Apply adds all names to the pull request in a single call.
func (s *labelService) Apply(ctx context.Context, number int, names []string) error {
	if len(names) == 0 {
		return nil
	}
	if err := s.gh.AddLabels(ctx, number, names); err != nil {
		return fmt.Errorf("adding labels %v to pull request #%d: %w", names, number, err)
	}
	return nil
}
