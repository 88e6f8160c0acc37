package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	githubMocks "github.com/tracker-tv/github-pr-gatekeeper/internal/github/mocks"
	"github.com/tracker-tv/github-pr-gatekeeper/models"
)

func TestNewFileService(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)

	svc := NewFileService(mockClient, 0, &recordingLogger{})

	assert.NotNil(t, svc)
	assert.Implements(t, (*FileService)(nil), svc)
	assert.Equal(t, 1, svc.(*fileService).concurrency)
}

func TestFileService_List(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	log := &recordingLogger{}

	files := []models.ChangedFile{
		{Path: "docs/a.md", BlobSHA: "sha-a", Status: models.FileStatusAdded},
	}

	mockClient.
		EXPECT().
		ListChangedFiles(mock.Anything, 3).
		Once().
		Return(files, nil)

	svc := NewFileService(mockClient, 4, log)
	got, err := svc.List(ctx, 3)

	assert.NoError(t, err)
	assert.Equal(t, files, got)
	assert.Contains(t, log.infos, "  docs/a.md (added)")
}

func TestFileService_List_Error(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		ListChangedFiles(mock.Anything, 3).
		Once().
		Return(nil, errors.New("API error"))

	svc := NewFileService(mockClient, 4, &recordingLogger{})
	got, err := svc.List(ctx, 3)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "pull request #3")
}

func TestFileService_Sizes(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	files := []models.ChangedFile{
		{Path: "assets/a.png", BlobSHA: "sha-a", Status: models.FileStatusAdded},
		{Path: "assets/copy-of-a.png", BlobSHA: "sha-a", Status: models.FileStatusAdded},
		{Path: "assets/b.png", BlobSHA: "sha-b", Status: models.FileStatusModified},
		{Path: "assets/gone.png", BlobSHA: "sha-gone", Status: models.FileStatusRemoved},
		{Path: "assets/submodule", Status: models.FileStatusAdded},
	}

	mockClient.
		EXPECT().
		GetBlobSize(mock.Anything, "sha-a").
		Once().
		Return(int64(10), nil)

	mockClient.
		EXPECT().
		GetBlobSize(mock.Anything, "sha-b").
		Once().
		Return(int64(2000), nil)

	svc := NewFileService(mockClient, 2, &recordingLogger{})
	sizes, err := svc.Sizes(ctx, files)

	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"assets/a.png":         10,
		"assets/copy-of-a.png": 10,
		"assets/b.png":         2000,
	}, sizes)
}

func TestFileService_Sizes_Error(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	files := []models.ChangedFile{
		{Path: "assets/a.png", BlobSHA: "sha-a", Status: models.FileStatusAdded},
	}

	mockClient.
		EXPECT().
		GetBlobSize(mock.Anything, "sha-a").
		Once().
		Return(int64(0), errors.New("API error"))

	svc := NewFileService(mockClient, 2, &recordingLogger{})
	sizes, err := svc.Sizes(ctx, files)

	assert.Error(t, err)
	assert.Nil(t, sizes)
	assert.Contains(t, err.Error(), "assets/a.png")
}

func TestFileService_Sizes_BoundedConcurrency(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	var files []models.ChangedFile
	for _, sha := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"} {
		files = append(files, models.ChangedFile{Path: "assets/" + sha + ".png", BlobSHA: sha, Status: models.FileStatusAdded})
	}

	var inFlight, peak atomic.Int32
	mockClient.
		EXPECT().
		GetBlobSize(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string) (int64, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return 1, nil
		}).
		Times(len(files))

	svc := NewFileService(mockClient, 3, &recordingLogger{})
	sizes, err := svc.Sizes(ctx, files)

	require.NoError(t, err)
	assert.Len(t, sizes, len(files))
	assert.LessOrEqual(t, peak.Load(), int32(3))
}
