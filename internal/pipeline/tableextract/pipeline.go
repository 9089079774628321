// Package tableextract is stage 1 of the verification pipeline: it turns a
// scanned filing into two validated parcel tables, one per document.
package tableextract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lgasparetto/geoverify/constants"
	"github.com/lgasparetto/geoverify/internal/document"
	"github.com/lgasparetto/geoverify/internal/llm"
	"github.com/lgasparetto/geoverify/internal/repository"
)

type Pipeline struct {
	FilesRepo  repository.ScanFileRepository
	JobsRepo   repository.VerifyJobRepository
	Converter  *document.Converter
	Renderer   *document.Renderer
	Classifier *document.Classifier
	Extractor  llm.TableExtractor

	WorkDir   string
	ModelName string
	Log       *slog.Logger
}

func NewPipeline(
	files repository.ScanFileRepository,
	jobs repository.VerifyJobRepository,
	conv *document.Converter,
	rend *document.Renderer,
	class *document.Classifier,
	extractor llm.TableExtractor,
	workDir, modelName string,
	log *slog.Logger,
) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		FilesRepo:  files,
		JobsRepo:   jobs,
		Converter:  conv,
		Renderer:   rend,
		Classifier: class,
		Extractor:  extractor,
		WorkDir:    workDir,
		ModelName:  modelName,
		Log:        log,
	}
}

// Run starts a verify_job for fileID, renders the scan, splits its pages into
// memorial and plant sets, extracts both parcel tables and persists them.
// Returns the job ID; the job is left in EXTRACT_OK, or FAILED with the raw
// model replies kept for audit.
func (p *Pipeline) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get file: %w", err)
	}

	protocol := 0
	if row.Protocol != nil {
		protocol = *row.Protocol
	}

	job, err := p.JobsRepo.Start(ctx, row.ID, protocol)
	if err != nil {
		return uuid.Nil, err
	}
	if err := p.JobsRepo.MarkRunning(ctx, job.ID); err != nil {
		return job.ID, p.fail(ctx, job.ID, err)
	}

	pdf := row.SourcePath
	if constants.MapExtToFormat(row.FileExt) == "TIFF" {
		pdf, err = p.Converter.TiffToPDF(ctx, row.SourcePath, p.WorkDir)
		if err != nil {
			return job.ID, p.fail(ctx, job.ID, fmt.Errorf("tiff to pdf: %w", err))
		}
	}

	pages, err := p.Renderer.RenderPages(ctx, pdf, nil)
	if err != nil {
		return job.ID, p.fail(ctx, job.ID, fmt.Errorf("render pages: %w", err))
	}

	memPages, err := p.Classifier.Split(ctx, constants.DocMemorial, pages)
	if err != nil {
		return job.ID, p.fail(ctx, job.ID, err)
	}
	projPages, err := p.Classifier.Split(ctx, constants.DocProject, pages)
	if err != nil {
		return job.ID, p.fail(ctx, job.ID, err)
	}

	memorial, memRaw, err := p.Extractor.ExtractTable(ctx, llm.ExtractRequest{
		DocType:      constants.DocMemorial,
		Pages:        memPages,
		FilenameHint: row.Filename,
	})
	if err != nil {
		_ = p.JobsRepo.SaveRawReplies(ctx, job.ID, string(memRaw), "")
		return job.ID, p.fail(ctx, job.ID, fmt.Errorf("extract memorial: %w", err))
	}
	if len(memorial.Rows) == 0 {
		_ = p.JobsRepo.SaveRawReplies(ctx, job.ID, string(memRaw), "")
		return job.ID, p.fail(ctx, job.ID, fmt.Errorf("memorial table is empty"))
	}

	// The memorial header pins the accreditation code; passing it along lets
	// schema validation catch letter swaps in the plant's vertex codes.
	project, projRaw, err := p.Extractor.ExtractTable(ctx, llm.ExtractRequest{
		DocType:           constants.DocProject,
		Pages:             projPages,
		AccreditationHint: memorial.Metadata.AccreditationCode,
		FilenameHint:      row.Filename,
	})
	if err != nil {
		_ = p.JobsRepo.SaveRawReplies(ctx, job.ID, string(memRaw), string(projRaw))
		return job.ID, p.fail(ctx, job.ID, fmt.Errorf("extract project: %w", err))
	}
	if len(project.Rows) == 0 {
		_ = p.JobsRepo.SaveRawReplies(ctx, job.ID, string(memRaw), string(projRaw))
		return job.ID, p.fail(ctx, job.ID, fmt.Errorf("project table is empty"))
	}

	memJSON, err := json.Marshal(memorial)
	if err != nil {
		return job.ID, p.fail(ctx, job.ID, fmt.Errorf("encode memorial: %w", err))
	}
	projJSON, err := json.Marshal(project)
	if err != nil {
		return job.ID, p.fail(ctx, job.ID, fmt.Errorf("encode project: %w", err))
	}

	err = p.JobsRepo.SaveExtraction(ctx, job.ID, repository.ExtractionResult{
		MemorialPages: len(memPages),
		ProjectPages:  len(projPages),
		MemorialRaw:   string(memRaw),
		ProjectRaw:    string(projRaw),
		MemorialJSON:  memJSON,
		ProjectJSON:   projJSON,
		ModelName:     p.ModelName,
		ModelParams: map[string]any{
			"pages_total": len(pages),
		},
	})
	if err != nil {
		return job.ID, p.fail(ctx, job.ID, err)
	}

	p.Log.Info("tableextract.ok",
		"job_id", job.ID,
		"file_id", fileID,
		"memorial_pages", len(memPages),
		"project_pages", len(projPages),
		"memorial_rows", len(memorial.Rows),
		"project_rows", len(project.Rows),
	)
	return job.ID, nil
}

func (p *Pipeline) fail(ctx context.Context, jobID uuid.UUID, cause error) error {
	_ = p.JobsRepo.FinishFailure(ctx, jobID, cause.Error())
	return cause
}
