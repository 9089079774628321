// Package pipeline coordinates the two verification stages.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lgasparetto/geoverify/internal/common"
	"github.com/lgasparetto/geoverify/internal/compare"
	"github.com/lgasparetto/geoverify/internal/pipeline/comparetables"
	"github.com/lgasparetto/geoverify/internal/pipeline/tableextract"
)

// Processor runs table extraction then comparison for one scan file.
type Processor struct {
	Logger  *slog.Logger
	Extract *tableextract.Pipeline
	Compare *comparetables.Pipeline
}

func NewProcessor(logger *slog.Logger, extract *tableextract.Pipeline, cmp *comparetables.Pipeline) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Extract: extract, Compare: cmp}
}

// ProcessFile runs the full verification for a fileID: stage 1 creates and
// advances the verify_job, stage 2 produces the diff. Returns the jobID and
// the comparison outcome.
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, compare.Result, error) {
	log := p.Logger
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		log = log.With("req_id", rid)
	}

	jobID, err := p.Extract.Run(ctx, fileID)
	if err != nil {
		log.Error("processor.extract.failed", "file_id", fileID, "err", err)
		return jobID, compare.Result{}, err
	}
	log.Info("processor.extract.ok", "file_id", fileID, "job_id", jobID)

	res, err := p.Compare.Run(ctx, jobID)
	if err != nil {
		log.Error("processor.compare.failed", "job_id", jobID, "err", err)
		return jobID, res, err
	}
	log.Info("processor.compare.ok", "job_id", jobID, "match", res.OK)
	return jobID, res, nil
}
