// Package server exposes the verification pipeline over gRPC.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lgasparetto/geoverify/constants"
	v1 "github.com/lgasparetto/geoverify/gen/geoverify/v1"
	"github.com/lgasparetto/geoverify/gen/ent"
	"github.com/lgasparetto/geoverify/internal/common"
	"github.com/lgasparetto/geoverify/internal/compare"
	"github.com/lgasparetto/geoverify/internal/document"
	"github.com/lgasparetto/geoverify/internal/ingest"
	"github.com/lgasparetto/geoverify/internal/llm"
	"github.com/lgasparetto/geoverify/internal/pipeline"
	"github.com/lgasparetto/geoverify/internal/report"
	"github.com/lgasparetto/geoverify/internal/repository"
)

type VerifyServer struct {
	v1.UnimplementedVerifyServiceServer

	ingestor  ingest.Ingestor
	processor *pipeline.Processor
	jobsRepo  repository.VerifyJobRepository
	scanRoot  string
	logger    *slog.Logger
}

func NewVerifyServer(
	ing ingest.Ingestor,
	proc *pipeline.Processor,
	jobs repository.VerifyJobRepository,
	scanRoot string,
	logger *slog.Logger,
) *VerifyServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &VerifyServer{
		ingestor:  ing,
		processor: proc,
		jobsRepo:  jobs,
		scanRoot:  scanRoot,
		logger:    logger,
	}
}

func (s *VerifyServer) StartVerification(ctx context.Context, req *v1.StartVerificationRequest) (*v1.StartVerificationResponse, error) {
	ctx = common.WithRequestID(ctx, uuid.NewString())

	path := req.GetPath()
	if path == "" {
		protocol := int(req.GetProtocol())
		v := common.NewValidator().Field("protocol", protocol, common.ProtocolNumber)
		if err := common.ValidateAndReturnError(v); err != nil {
			return nil, err
		}
		ctx = common.WithProtocol(ctx, protocol)
		located, err := document.Locate(s.scanRoot, protocol)
		if err != nil {
			if errors.Is(err, common.ErrDocumentNotFound) {
				return nil, common.NotFoundError(err.Error())
			}
			return nil, common.InternalError(err.Error())
		}
		path = located
	}

	res, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		s.logger.Error("verify.ingest.failed", "path", path, "err", err)
		return nil, common.InternalErrorf("ingest: %v", err)
	}
	fileID, err := uuid.Parse(res.FileID)
	if err != nil {
		return nil, common.InternalErrorf("bad file id: %v", err)
	}

	jobID, outcome, err := s.processor.ProcessFile(ctx, fileID)
	if err != nil {
		// The job row carries the failure; surface both.
		if jobID != uuid.Nil {
			return &v1.StartVerificationResponse{
				JobId:  jobID.String(),
				Status: string(constants.JobStatusFailed),
			}, common.InternalError(err.Error())
		}
		return nil, common.InternalError(err.Error())
	}

	return &v1.StartVerificationResponse{
		JobId:          jobID.String(),
		Status:         string(constants.JobStatusCompared),
		Divergences:    int32(outcome.Divergences()),
		DocumentsMatch: outcome.OK,
	}, nil
}

func (s *VerifyServer) GetVerification(ctx context.Context, req *v1.GetVerificationRequest) (*v1.GetVerificationResponse, error) {
	jobID, err := uuid.Parse(req.GetJobId())
	if err != nil {
		return nil, common.InvalidArgumentError("job_id must be a UUID")
	}

	job, err := s.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("verification not found")
		}
		s.logger.Error("verify.get.failed", "job_id", jobID, "err", err)
		return nil, common.InternalError("get verification failed")
	}

	return &v1.GetVerificationResponse{
		Job:            toProtoJob(job),
		ComparisonJson: string(job.ComparisonJSON),
	}, nil
}

func (s *VerifyServer) ListVerifications(ctx context.Context, req *v1.ListVerificationsRequest) (*v1.ListVerificationsResponse, error) {
	jobs, err := s.jobsRepo.List(ctx, constants.JobStatus(req.GetStatus()), int(req.GetLimit()))
	if err != nil {
		s.logger.Error("verify.list.failed", "err", err)
		return nil, common.InternalError("list verifications failed")
	}

	out := make([]*v1.VerificationJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toProtoJob(j))
	}
	return &v1.ListVerificationsResponse{Jobs: out}, nil
}

func (s *VerifyServer) ExportReport(ctx context.Context, req *v1.ExportReportRequest) (*v1.ExportReportResponse, error) {
	jobID, err := uuid.Parse(req.GetJobId())
	if err != nil {
		return nil, common.InvalidArgumentError("job_id must be a UUID")
	}

	job, err := s.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("verification not found")
		}
		return nil, common.InternalError("get verification failed")
	}
	if job.Status != string(constants.JobStatusCompared) {
		return nil, common.InvalidArgumentErrorf("job is %s, report needs COMPARED", job.Status)
	}

	var memorial, project llm.ParcelTable
	var res compare.Result
	if err := json.Unmarshal(job.MemorialJSON, &memorial); err != nil {
		return nil, common.InternalErrorf("decode memorial table: %v", err)
	}
	if err := json.Unmarshal(job.ProjectJSON, &project); err != nil {
		return nil, common.InternalErrorf("decode project table: %v", err)
	}
	if err := json.Unmarshal(job.ComparisonJSON, &res); err != nil {
		return nil, common.InternalErrorf("decode comparison: %v", err)
	}

	xlsx, err := report.Workbook(memorial, project, res, s.logger)
	if err != nil {
		s.logger.Error("verify.export.failed", "job_id", jobID, "err", err)
		return nil, common.InternalError("report generation failed")
	}

	protocol := 0
	if job.Protocol != nil {
		protocol = *job.Protocol
	}
	return &v1.ExportReportResponse{
		Xlsx:    xlsx,
		Summary: report.Summary(protocol, res),
	}, nil
}

func toProtoJob(j *ent.VerifyJob) *v1.VerificationJob {
	out := &v1.VerificationJob{
		Id:             j.ID.String(),
		FileId:         j.FileID.String(),
		Status:         j.Status,
		StartedAt:      j.StartedAt.Format(time.RFC3339Nano),
		Divergences:    int32(j.Divergences),
		DocumentsMatch: j.DocumentsMatch,
	}
	if j.Protocol != nil {
		out.Protocol = int32(*j.Protocol)
	}
	if j.FinishedAt != nil {
		out.FinishedAt = j.FinishedAt.Format(time.RFC3339Nano)
	}
	if j.ErrorMessage != nil {
		out.ErrorMessage = *j.ErrorMessage
	}
	return out
}
