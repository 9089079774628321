package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lgasparetto/geoverify/constants"
	"github.com/lgasparetto/geoverify/gen/ent"
	entjob "github.com/lgasparetto/geoverify/gen/ent/verifyjob"
)

type VerifyJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, protocol int) (*ent.VerifyJob, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*ent.VerifyJob, error)
	List(ctx context.Context, status constants.JobStatus, limit int) ([]*ent.VerifyJob, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID) error
	SaveRawReplies(ctx context.Context, jobID uuid.UUID, memorialRaw, projectRaw string) error
	SaveExtraction(ctx context.Context, jobID uuid.UUID, in ExtractionResult) error
	SaveComparison(ctx context.Context, jobID uuid.UUID, comparison json.RawMessage, divergences int, match bool) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

// ExtractionResult is the stage-1 payload: both extracted tables plus the
// verbatim model replies, which we keep even when schema validation failed.
type ExtractionResult struct {
	MemorialPages int
	ProjectPages  int
	MemorialRaw   string
	ProjectRaw    string
	MemorialJSON  json.RawMessage
	ProjectJSON   json.RawMessage
	ModelName     string
	ModelParams   map[string]any
}

type verifyJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewVerifyJobRepository(entc *ent.Client, log *slog.Logger) VerifyJobRepository {
	return &verifyJobRepo{ent: entc, log: log}
}

func (r *verifyJobRepo) Start(ctx context.Context, fileID uuid.UUID, protocol int) (*ent.VerifyJob, error) {
	create := r.ent.VerifyJob.
		Create().
		SetFileID(fileID).
		SetStatus(string(constants.JobStatusQueued))
	if protocol > 0 {
		create.SetProtocol(protocol)
	}
	job, err := create.Save(ctx)
	if err != nil {
		r.log.Error("verify_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("verify_job started", "job_id", job.ID, "file_id", fileID, "protocol", protocol)
	return job, nil
}

func (r *verifyJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.VerifyJob, error) {
	return r.ent.VerifyJob.Get(ctx, jobID)
}

func (r *verifyJobRepo) List(ctx context.Context, status constants.JobStatus, limit int) ([]*ent.VerifyJob, error) {
	q := r.ent.VerifyJob.Query().
		Order(ent.Desc(entjob.FieldStartedAt))
	if status != "" {
		q = q.Where(entjob.Status(string(status)))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.All(ctx)
}

func (r *verifyJobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.VerifyJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("verify_job mark running failed", "job_id", jobID, "err", err)
	}
	return err
}

// SaveRawReplies stores the verbatim model replies without advancing the job
// status, so a reply that failed validation is still auditable.
func (r *verifyJobRepo) SaveRawReplies(ctx context.Context, jobID uuid.UUID, memorialRaw, projectRaw string) error {
	update := r.ent.VerifyJob.UpdateOneID(jobID)
	if memorialRaw != "" {
		update.SetMemorialRaw(memorialRaw)
	}
	if projectRaw != "" {
		update.SetProjectRaw(projectRaw)
	}
	if _, err := update.Save(ctx); err != nil {
		r.log.Error("verify_job save raw replies failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *verifyJobRepo) SaveExtraction(ctx context.Context, jobID uuid.UUID, in ExtractionResult) error {
	var params []byte
	if in.ModelParams != nil {
		if b, err := json.Marshal(in.ModelParams); err == nil {
			params = b
		}
	}
	update := r.ent.VerifyJob.
		UpdateOneID(jobID).
		SetMemorialPages(in.MemorialPages).
		SetProjectPages(in.ProjectPages).
		SetMemorialRaw(in.MemorialRaw).
		SetProjectRaw(in.ProjectRaw).
		SetModelName(in.ModelName).
		SetModelParams(params).
		SetStatus(string(constants.JobStatusExtractOK))
	if in.MemorialJSON != nil {
		update.SetMemorialJSON(in.MemorialJSON)
	}
	if in.ProjectJSON != nil {
		update.SetProjectJSON(in.ProjectJSON)
	}
	if _, err := update.Save(ctx); err != nil {
		r.log.Error("verify_job save extraction failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("verify_job extraction saved", "job_id", jobID, "model", in.ModelName)
	return nil
}

func (r *verifyJobRepo) SaveComparison(ctx context.Context, jobID uuid.UUID, comparison json.RawMessage, divergences int, match bool) error {
	_, err := r.ent.VerifyJob.
		UpdateOneID(jobID).
		SetComparisonJSON(comparison).
		SetDivergences(divergences).
		SetDocumentsMatch(match).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusCompared)).
		Save(ctx)
	if err != nil {
		r.log.Error("verify_job save comparison failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("verify_job finished (COMPARED)", "job_id", jobID, "divergences", divergences, "match", match)
	return nil
}

func (r *verifyJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.VerifyJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("verify_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("verify_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
