package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/lgasparetto/geoverify/gen/ent"
	"github.com/lgasparetto/geoverify/internal/common"
	"github.com/lgasparetto/geoverify/internal/document"
	"github.com/lgasparetto/geoverify/internal/llm/gemini"
	"github.com/lgasparetto/geoverify/internal/pipeline/tableextract"
	repo "github.com/lgasparetto/geoverify/internal/repository"
)

// runextract runs stage 1 only for an already-ingested file, leaving the job
// in EXTRACT_OK for inspection.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <file-id-uuid>")
		os.Exit(2)
	}
	fileID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid file id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}
	if cfg.Gemini.APIKey == "" {
		logger.Error("GEMINI_API_KEY required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	defer pool.Close()

	vision, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		Model:       cfg.Gemini.Model,
		Temperature: cfg.Gemini.Temperature,
		Timeout:     cfg.Gemini.Timeout,
	}, logger)
	if err != nil {
		logger.Error("gemini client", "error", err)
		os.Exit(1)
	}

	filesRepo := repo.NewScanFileRepository(entc, logger)
	jobsRepo := repo.NewVerifyJobRepository(entc, logger)

	runner := document.NewExecRunner()
	p := tableextract.NewPipeline(
		filesRepo, jobsRepo,
		document.NewConverter(runner, cfg.Document.TiffConverter, logger),
		document.NewRenderer(runner, document.RendererConfig{
			Pdftoppm: cfg.Document.Pdftoppm,
			Pdfinfo:  cfg.Document.Pdfinfo,
			DPI:      cfg.Document.RenderDPI,
		}, logger),
		document.NewClassifier(vision, logger),
		vision,
		cfg.Document.WorkDir, cfg.Gemini.Model,
		logger,
	)

	start := time.Now()
	jobID, err := p.Run(ctx, fileID)
	dur := time.Since(start)

	if err != nil {
		logger.Error("table extraction failed",
			"job_id", jobID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("table extraction OK",
		"job_id", jobID,
		"duration_ms", dur.Milliseconds(),
	)
}
