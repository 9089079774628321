package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lgasparetto/geoverify/constants"
	"github.com/lgasparetto/geoverify/internal/repository"
)

// FSIngestor reads from the local filesystem.
type FSIngestor struct {
	FilesRepo repository.ScanFileRepository
	Log       *slog.Logger
}

func NewFSIngestor(f repository.ScanFileRepository, log *slog.Logger) *FSIngestor {
	if log == nil {
		log = slog.Default()
	}
	return &FSIngestor{FilesRepo: f, Log: log}
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		i.Log.Error("abs path error", "path", path, "error", err)
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}
	format := constants.MapExtToFormat(ext)

	f, err := os.Open(abs)
	if err != nil {
		i.Log.Error("open error", "path", abs, "error", err)
		return out, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			i.Log.Warn("close file error", "path", abs, "error", err)
		}
	}()

	st, err := f.Stat()
	if err != nil {
		return out, err
	}

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		i.Log.Error("hash error", "path", abs, "error", err)
		return out, err
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()
	protocol := ProtocolFromFilename(abs)

	row, dedup, err := i.FilesRepo.UpsertByHash(ctx, repository.CreateScanFile{
		Protocol:   protocol,
		SourcePath: abs,
		Filename:   filepath.Base(abs),
		FileExt:    ext,
		Format:     format,
		FileSize:   int(st.Size()),
		Hash:       sum,
		UploadedAt: now,
	})
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		FileID:       row.ID.String(),
		Protocol:     protocol,
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum),
		FileExt:      row.FileExt,
		UploadedAt:   row.UploadedAt,
	}
	return out, nil
}

// IngestDirectory walks root, skips hidden if requested,
// and calls IngestPath for each file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(
	ctx context.Context,
	root string,
	skipHidden bool,
) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !AllowedExt(ext) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
