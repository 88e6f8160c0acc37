package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/tracker-tv/github-pr-gatekeeper/internal/actions"
	"github.com/tracker-tv/github-pr-gatekeeper/internal/github"
	"github.com/tracker-tv/github-pr-gatekeeper/models"
	"golang.org/x/sync/errgroup"
)

type FileService interface {
	List(ctx context.Context, number int) ([]models.ChangedFile, error)
	Sizes(ctx context.Context, files []models.ChangedFile) (map[string]int64, error)
}

type fileService struct {
	gh          github.Client
	concurrency int
	log         actions.Logger
}

func NewFileService(ghClient github.Client, concurrency int, log actions.Logger) FileService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &fileService{gh: ghClient, concurrency: concurrency, log: log}
}

func (s *fileService) List(ctx context.Context, number int) ([]models.ChangedFile, error) {
	files, err := s.gh.ListChangedFiles(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("listing files of pull request #%d: %w", number, err)
	}

	s.log.Infof("found %d changed files:", len(files))
	for _, f := range files {
		s.log.Infof("  %s (%s)", f.Path, f.Status)
	}

	return files, nil
}

// Sizes looks up the blob size of every file, keyed by path, with at most
// s.concurrency requests in flight. Removed files and files without a blob
// are skipped; a blob shared by several paths is fetched once.
func (s *fileService) Sizes(ctx context.Context, files []models.ChangedFile) (map[string]int64, error) {
	pathsBySHA := make(map[string][]string)
	var shas []string
	for _, f := range files {
		if f.Status == models.FileStatusRemoved || f.BlobSHA == "" {
			continue
		}
		if _, seen := pathsBySHA[f.BlobSHA]; !seen {
			shas = append(shas, f.BlobSHA)
		}
		pathsBySHA[f.BlobSHA] = append(pathsBySHA[f.BlobSHA], f.Path)
	}

	var mu sync.Mutex
	sizes := make(map[string]int64, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, sha := range shas {
		g.Go(func() error {
			size, err := s.gh.GetBlobSize(ctx, sha)
			if err != nil {
				return fmt.Errorf("getting size of %s: %w", pathsBySHA[sha][0], err)
			}

			mu.Lock()
			defer mu.Unlock()
			for _, path := range pathsBySHA[sha] {
				sizes[path] = size
				s.log.Debugf("%s is %d bytes", path, size)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sizes, nil
}
