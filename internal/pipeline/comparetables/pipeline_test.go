package comparetables

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
	"github.com/lgasparetto/geoverify/internal/compare"
	"github.com/lgasparetto/geoverify/internal/llm"
	"github.com/lgasparetto/geoverify/internal/repository"
)

// stubJobsRepo records terminal transitions so tests can assert that every
// failing run actually lands the job in FAILED.
type stubJobsRepo struct {
	job        *ent.VerifyJob
	getErr     error
	saveCmpErr error

	savedComparison bool
	savedMatch      bool
	failedID        uuid.UUID
	failedMsg       string
}

func (s *stubJobsRepo) Start(ctx context.Context, fileID uuid.UUID, protocol int) (*ent.VerifyJob, error) {
	return s.job, nil
}

func (s *stubJobsRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.VerifyJob, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.job, nil
}

func (s *stubJobsRepo) List(ctx context.Context, status constants.JobStatus, limit int) ([]*ent.VerifyJob, error) {
	return []*ent.VerifyJob{s.job}, nil
}

func (s *stubJobsRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error { return nil }

func (s *stubJobsRepo) SaveRawReplies(ctx context.Context, jobID uuid.UUID, memorialRaw, projectRaw string) error {
	return nil
}

func (s *stubJobsRepo) SaveExtraction(ctx context.Context, jobID uuid.UUID, in repository.ExtractionResult) error {
	return nil
}

func (s *stubJobsRepo) SaveComparison(ctx context.Context, jobID uuid.UUID, comparison json.RawMessage, divergences int, match bool) error {
	if s.saveCmpErr != nil {
		return s.saveCmpErr
	}
	s.savedComparison = true
	s.savedMatch = match
	return nil
}

func (s *stubJobsRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	s.failedID = jobID
	s.failedMsg = message
	return nil
}

func mustJSON(t *testing.T, table llm.ParcelTable) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(table)
	require.NoError(t, err)
	return b
}

func sampleTable() llm.ParcelTable {
	return llm.ParcelTable{
		Rows: []llm.ParcelRow{
			{VertexCode: "AKE-V-0166", Longitude: `48°34'14,782`, Latitude: `20°50'45,291`, Altitude: "532,78"},
		},
	}
}

func TestRunPersistsComparison(t *testing.T) {
	jobID := uuid.New()
	repo := &stubJobsRepo{job: &ent.VerifyJob{
		ID:           jobID,
		MemorialJSON: mustJSON(t, sampleTable()),
		ProjectJSON:  mustJSON(t, sampleTable()),
	}}

	p := NewPipeline(repo, compare.DefaultOptions(), nil)
	res, err := p.Run(context.Background(), jobID)
	require.NoError(t, err)

	assert.True(t, res.OK)
	assert.True(t, repo.savedComparison)
	assert.True(t, repo.savedMatch)
	assert.Equal(t, uuid.Nil, repo.failedID)
}

func TestRunCorruptTableFinishesJobFailed(t *testing.T) {
	jobID := uuid.New()
	repo := &stubJobsRepo{job: &ent.VerifyJob{
		ID:           jobID,
		MemorialJSON: json.RawMessage(`{"rows": [`),
		ProjectJSON:  mustJSON(t, sampleTable()),
	}}

	p := NewPipeline(repo, compare.DefaultOptions(), nil)
	_, err := p.Run(context.Background(), jobID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode memorial table")

	assert.Equal(t, jobID, repo.failedID)
	assert.Contains(t, repo.failedMsg, "decode memorial table")
	assert.False(t, repo.savedComparison)
}

func TestRunMissingTablesFinishesJobFailed(t *testing.T) {
	jobID := uuid.New()
	repo := &stubJobsRepo{job: &ent.VerifyJob{ID: jobID}}

	p := NewPipeline(repo, compare.DefaultOptions(), nil)
	_, err := p.Run(context.Background(), jobID)
	require.Error(t, err)

	assert.Equal(t, jobID, repo.failedID)
	assert.Contains(t, repo.failedMsg, "no extracted tables")
}

func TestRunSaveComparisonErrorFinishesJobFailed(t *testing.T) {
	jobID := uuid.New()
	repo := &stubJobsRepo{
		job: &ent.VerifyJob{
			ID:           jobID,
			MemorialJSON: mustJSON(t, sampleTable()),
			ProjectJSON:  mustJSON(t, sampleTable()),
		},
		saveCmpErr: errors.New("connection reset"),
	}

	p := NewPipeline(repo, compare.DefaultOptions(), nil)
	_, err := p.Run(context.Background(), jobID)
	require.Error(t, err)

	assert.Equal(t, jobID, repo.failedID)
	assert.Contains(t, repo.failedMsg, "connection reset")
}
