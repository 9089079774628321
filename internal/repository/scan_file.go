package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lgasparetto/geoverify/gen/ent"
	entfile "github.com/lgasparetto/geoverify/gen/ent/scanfile"
)

type ScanFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ScanFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.ScanFile, error)
	GetByProtocol(ctx context.Context, protocol int) (*ent.ScanFile, error)
	Create(ctx context.Context, in CreateScanFile) (*ent.ScanFile, error)
	UpsertByHash(ctx context.Context, in CreateScanFile) (*ent.ScanFile, bool, error)
}

type CreateScanFile struct {
	Protocol   int // 0 when the filename carries no protocol number
	SourcePath string
	Filename   string
	FileExt    string
	Format     string
	FileSize   int
	PageCount  int
	Hash       []byte
	UploadedAt time.Time
}

type scanFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewScanFileRepository(entc *ent.Client, logger *slog.Logger) ScanFileRepository {
	return &scanFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *scanFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.ScanFile, error) {
	return r.ent.ScanFile.Get(ctx, id)
}

func (r *scanFileRepo) GetByHash(ctx context.Context, hash []byte) (*ent.ScanFile, error) {
	row, err := r.ent.ScanFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to get scan file by hash", "error", err)
		return nil, err
	}
	return row, nil
}

func (r *scanFileRepo) GetByProtocol(ctx context.Context, protocol int) (*ent.ScanFile, error) {
	row, err := r.ent.ScanFile.Query().
		Where(entfile.Protocol(protocol)).
		Order(ent.Desc(entfile.FieldUploadedAt)).
		First(ctx)
	if err != nil {
		r.logger.Error("failed to get scan file by protocol", "protocol", protocol, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *scanFileRepo) Create(ctx context.Context, in CreateScanFile) (*ent.ScanFile, error) {
	create := r.ent.ScanFile.Create().
		SetSourcePath(in.SourcePath).
		SetFilename(in.Filename).
		SetFileExt(in.FileExt).
		SetFormat(in.Format).
		SetFileSize(in.FileSize).
		SetPageCount(in.PageCount).
		SetContentHash(in.Hash).
		SetUploadedAt(in.UploadedAt)
	if in.Protocol > 0 {
		create.SetProtocol(in.Protocol)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create scan file", "source_path", in.SourcePath, "filename", in.Filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *scanFileRepo) UpsertByHash(ctx context.Context, in CreateScanFile) (*ent.ScanFile, bool, error) {
	if existing, err := r.GetByHash(ctx, in.Hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, in)
	if err != nil {
		r.logger.Error("failed to upsert scan file by hash", "source_path", in.SourcePath, "filename", in.Filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
