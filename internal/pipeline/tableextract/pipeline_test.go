package tableextract

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgasparetto/geoverify/constants"
	"github.com/lgasparetto/geoverify/gen/ent"
	"github.com/lgasparetto/geoverify/internal/repository"
)

type stubFilesRepo struct {
	row *ent.ScanFile
}

func (s *stubFilesRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.ScanFile, error) {
	return s.row, nil
}

func (s *stubFilesRepo) GetByHash(ctx context.Context, hash []byte) (*ent.ScanFile, error) {
	return s.row, nil
}

func (s *stubFilesRepo) GetByProtocol(ctx context.Context, protocol int) (*ent.ScanFile, error) {
	return s.row, nil
}

func (s *stubFilesRepo) Create(ctx context.Context, in repository.CreateScanFile) (*ent.ScanFile, error) {
	return s.row, nil
}

func (s *stubFilesRepo) UpsertByHash(ctx context.Context, in repository.CreateScanFile) (*ent.ScanFile, bool, error) {
	return s.row, true, nil
}

type stubJobsRepo struct {
	job            *ent.VerifyJob
	markRunningErr error

	failedID  uuid.UUID
	failedMsg string
}

func (s *stubJobsRepo) Start(ctx context.Context, fileID uuid.UUID, protocol int) (*ent.VerifyJob, error) {
	return s.job, nil
}

func (s *stubJobsRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.VerifyJob, error) {
	return s.job, nil
}

func (s *stubJobsRepo) List(ctx context.Context, status constants.JobStatus, limit int) ([]*ent.VerifyJob, error) {
	return []*ent.VerifyJob{s.job}, nil
}

func (s *stubJobsRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	return s.markRunningErr
}

func (s *stubJobsRepo) SaveRawReplies(ctx context.Context, jobID uuid.UUID, memorialRaw, projectRaw string) error {
	return nil
}

func (s *stubJobsRepo) SaveExtraction(ctx context.Context, jobID uuid.UUID, in repository.ExtractionResult) error {
	return nil
}

func (s *stubJobsRepo) SaveComparison(ctx context.Context, jobID uuid.UUID, comparison json.RawMessage, divergences int, match bool) error {
	return nil
}

func (s *stubJobsRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	s.failedID = jobID
	s.failedMsg = message
	return nil
}

// A job that cannot even transition to RUNNING must still end up FAILED, not
// stuck in QUEUED.
func TestRunMarkRunningErrorFinishesJobFailed(t *testing.T) {
	fileID := uuid.New()
	jobID := uuid.New()

	files := &stubFilesRepo{row: &ent.ScanFile{
		ID:         fileID,
		SourcePath: "/data/00002500.pdf",
		Filename:   "00002500.pdf",
		FileExt:    ".pdf",
	}}
	jobs := &stubJobsRepo{
		job:            &ent.VerifyJob{ID: jobID},
		markRunningErr: errors.New("connection reset"),
	}

	p := NewPipeline(files, jobs, nil, nil, nil, nil, t.TempDir(), "test-model", nil)
	gotID, err := p.Run(context.Background(), fileID)
	require.Error(t, err)

	assert.Equal(t, jobID, gotID)
	assert.Equal(t, jobID, jobs.failedID)
	assert.Contains(t, jobs.failedMsg, "connection reset")
}
