package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tracker-tv/github-pr-gatekeeper/internal/github"
	githubMocks "github.com/tracker-tv/github-pr-gatekeeper/internal/github/mocks"
	"github.com/tracker-tv/github-pr-gatekeeper/models"
)

var largeFile = models.Label{Name: "lf-detected", Color: "b60205", Description: "Large file detected"}

func notFound(name string) error {
	return fmt.Errorf("label %s: %w", name, github.ErrNotFound)
}

func TestNewLabelService(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)

	svc := NewLabelService(mockClient, &recordingLogger{})

	assert.NotNil(t, svc)
	assert.Implements(t, (*LabelService)(nil), svc)
}

func TestEnsure_Exists(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		GetLabel(mock.Anything, "lf-detected").
		Once().
		Return(&models.Label{Name: "lf-detected"}, nil)

	svc := NewLabelService(mockClient, &recordingLogger{})
	record := svc.Ensure(ctx, largeFile)

	assert.Equal(t, models.LabelRecord{Name: "lf-detected", Exists: true}, record)
}

func TestEnsure_CreatesWhenMissing(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		GetLabel(mock.Anything, "lf-detected").
		Once().
		Return(nil, notFound("lf-detected"))

	mockClient.
		EXPECT().
		CreateLabel(mock.Anything, largeFile).
		Once().
		Return(nil)

	svc := NewLabelService(mockClient, &recordingLogger{})
	record := svc.Ensure(ctx, largeFile)

	assert.True(t, record.Exists)
}

func TestEnsure_CreateFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	log := &recordingLogger{}

	mockClient.
		EXPECT().
		GetLabel(mock.Anything, "lf-detected").
		Once().
		Return(nil, notFound("lf-detected"))

	mockClient.
		EXPECT().
		CreateLabel(mock.Anything, largeFile).
		Once().
		Return(errors.New("validation failed"))

	svc := NewLabelService(mockClient, log)
	record := svc.Ensure(ctx, largeFile)

	assert.False(t, record.Exists)
	assert.Len(t, log.warnings, 1)
}

func TestEnsure_LookupFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	log := &recordingLogger{}

	mockClient.
		EXPECT().
		GetLabel(mock.Anything, "lf-detected").
		Once().
		Return(nil, errors.New("bad gateway"))

	svc := NewLabelService(mockClient, log)
	record := svc.Ensure(ctx, largeFile)

	assert.Equal(t, models.LabelRecord{Name: "lf-detected"}, record)
	assert.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "bad gateway")
}

func TestEnsure_CachedForTheRun(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		GetLabel(mock.Anything, "lf-detected").
		Once().
		Return(nil, notFound("lf-detected"))

	mockClient.
		EXPECT().
		CreateLabel(mock.Anything, largeFile).
		Once().
		Return(nil)

	svc := NewLabelService(mockClient, &recordingLogger{})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, svc.Ensure(ctx, largeFile).Exists)
		}()
	}
	wg.Wait()
}

func TestEnsureAll(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	newRootDir := models.Label{Name: "new-root-dir", Color: "fbca04"}

	mockClient.
		EXPECT().
		GetLabel(mock.Anything, "new-root-dir").
		Once().
		Return(&models.Label{Name: "new-root-dir"}, nil)

	mockClient.
		EXPECT().
		GetLabel(mock.Anything, "lf-detected").
		Once().
		Return(nil, errors.New("timeout"))

	svc := NewLabelService(mockClient, &recordingLogger{})
	records := svc.EnsureAll(ctx, []models.Label{newRootDir, largeFile, newRootDir})

	assert.Equal(t, []models.LabelRecord{
		{Name: "new-root-dir", Exists: true},
		{Name: "lf-detected", Exists: false},
		{Name: "new-root-dir", Exists: true},
	}, records)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		AddLabels(mock.Anything, 5, []string{"invalid-file-name", "lf-detected"}).
		Once().
		Return(nil)

	svc := NewLabelService(mockClient, &recordingLogger{})
	err := svc.Apply(ctx, 5, []string{"invalid-file-name", "lf-detected"})

	assert.NoError(t, err)
}

func TestApply_Empty(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	svc := NewLabelService(mockClient, &recordingLogger{})
	err := svc.Apply(ctx, 5, nil)

	assert.NoError(t, err)
}

func TestApply_Error(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		AddLabels(mock.Anything, 5, mock.Anything).
		Once().
		Return(errors.New("permission denied"))

	svc := NewLabelService(mockClient, &recordingLogger{})
	err := svc.Apply(ctx, 5, []string{"new-root-dir"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}
