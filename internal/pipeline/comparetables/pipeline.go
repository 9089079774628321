// Package comparetables is stage 2 of the verification pipeline: it diffs the
// two parcel tables persisted by stage 1 and records the outcome.
package comparetables

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lgasparetto/geoverify/internal/compare"
	"github.com/lgasparetto/geoverify/internal/llm"
	"github.com/lgasparetto/geoverify/internal/repository"
)

type Pipeline struct {
	JobsRepo repository.VerifyJobRepository
	Options  compare.Options
	Log      *slog.Logger
}

func NewPipeline(jobs repository.VerifyJobRepository, opts compare.Options, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{JobsRepo: jobs, Options: opts, Log: log}
}

// Run loads both tables from the job, compares them and persists the result,
// moving the job to COMPARED. Any failure after the job is loaded moves it to
// FAILED with the message persisted; a verify job never strands between the
// two terminal states. Returns the comparison outcome.
func (p *Pipeline) Run(ctx context.Context, jobID uuid.UUID) (compare.Result, error) {
	job, err := p.JobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return compare.Result{}, fmt.Errorf("get job: %w", err)
	}
	if len(job.MemorialJSON) == 0 || len(job.ProjectJSON) == 0 {
		return compare.Result{}, p.fail(ctx, jobID, fmt.Errorf("job %s has no extracted tables", jobID))
	}

	var memorial, project llm.ParcelTable
	if err := json.Unmarshal(job.MemorialJSON, &memorial); err != nil {
		return compare.Result{}, p.fail(ctx, jobID, fmt.Errorf("decode memorial table: %w", err))
	}
	if err := json.Unmarshal(job.ProjectJSON, &project); err != nil {
		return compare.Result{}, p.fail(ctx, jobID, fmt.Errorf("decode project table: %w", err))
	}

	res := compare.Tables(memorial, project, p.Options)

	b, err := json.Marshal(res)
	if err != nil {
		return res, p.fail(ctx, jobID, fmt.Errorf("encode comparison: %w", err))
	}
	if err := p.JobsRepo.SaveComparison(ctx, jobID, b, res.Divergences(), res.OK); err != nil {
		return res, p.fail(ctx, jobID, err)
	}

	p.Log.Info("comparetables.ok",
		"job_id", jobID,
		"divergences", res.Divergences(),
		"match", res.OK,
	)
	return res, nil
}

func (p *Pipeline) fail(ctx context.Context, jobID uuid.UUID, cause error) error {
	_ = p.JobsRepo.FinishFailure(ctx, jobID, cause.Error())
	return cause
}
