package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/lgasparetto/geoverify/internal/common"
	"github.com/lgasparetto/geoverify/internal/compare"
	"github.com/lgasparetto/geoverify/internal/document"
	"github.com/lgasparetto/geoverify/internal/ingest"
	"github.com/lgasparetto/geoverify/internal/llm"
	"github.com/lgasparetto/geoverify/internal/llm/gemini"
	"github.com/lgasparetto/geoverify/internal/pipeline"
	"github.com/lgasparetto/geoverify/internal/pipeline/comparetables"
	"github.com/lgasparetto/geoverify/internal/pipeline/tableextract"
	"github.com/lgasparetto/geoverify/internal/report"
	repo "github.com/lgasparetto/geoverify/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		protocol = flag.Int("prenotacao", 0, "protocol number; the scan is located under SCAN_ROOT")
		file     = flag.String("file", "", "path to a scanned TIFF/PDF (alternative to --prenotacao)")
		out      = flag.String("out", "", "output XLSX path (defaults next to the input file)")
		db       = flag.String("db", "", "SQLite store path (defaults to in-memory)")
	)
	flag.Parse()

	if *protocol == 0 && *file == "" {
		printError("Error: either --prenotacao or --file is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if cfg.Gemini.APIKey == "" {
		printError("Error: GEMINI_API_KEY is required\n")
		os.Exit(1)
	}

	path := *file
	if path == "" {
		if cfg.Document.ScanRoot == "" {
			printError("Error: SCAN_ROOT is required with --prenotacao\n")
			os.Exit(1)
		}
		located, err := document.Locate(cfg.Document.ScanRoot, *protocol)
		if err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
		path = located
	}

	if *out == "" {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		*out = filepath.Join(filepath.Dir(path), stem+"-conferencia.xlsx")
	}

	// Local store: the CLI runs on clerk workstations without Postgres.
	storePath := *db
	if storePath == "" {
		storePath = ":memory:"
	}
	entc, err := repo.OpenSQLite(ctx, storePath, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Error("close store", "error", err)
		}
	}()

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
	converter := document.NewConverter(runner, cfg.Document.TiffConverter, logger)
	renderer := document.NewRenderer(runner, document.RendererConfig{
		Pdftoppm: cfg.Document.Pdftoppm,
		Pdfinfo:  cfg.Document.Pdfinfo,
		DPI:      cfg.Document.RenderDPI,
	}, logger)
	classifier := document.NewClassifier(vision, logger)

	extract := tableextract.NewPipeline(
		filesRepo, jobsRepo,
		converter, renderer, classifier, vision,
		cfg.Document.WorkDir, cfg.Gemini.Model,
		logger,
	)
	cmp := comparetables.NewPipeline(jobsRepo, compare.Options{Tolerance: cfg.Compare.Tolerance}, logger)
	processor := pipeline.NewProcessor(logger, extract, cmp)

	ingestor := ingest.NewFSIngestor(filesRepo, logger)
	ingested, err := ingestor.IngestPath(ctx, path)
	if err != nil {
		logger.Error("ingest failed", "path", path, "error", err)
		os.Exit(1)
	}
	fileID, err := uuid.Parse(ingested.FileID)
	if err != nil {
		logger.Error("bad file id", "file_id", ingested.FileID, "error", err)
		os.Exit(1)
	}

	jobID, res, err := processor.ProcessFile(ctx, fileID)
	if err != nil {
		logger.Error("verification failed", "job_id", jobID, "error", err)
		os.Exit(1)
	}

	// Reload the job for the persisted tables, then render the workbook.
	job, err := jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		logger.Error("load job", "job_id", jobID, "error", err)
		os.Exit(1)
	}
	var memorial, project llm.ParcelTable
	if err := unmarshalTables(job.MemorialJSON, job.ProjectJSON, &memorial, &project); err != nil {
		logger.Error("decode tables", "job_id", jobID, "error", err)
		os.Exit(1)
	}
	xlsx, err := report.Workbook(memorial, project, res, logger)
	if err != nil {
		logger.Error("workbook failed", "job_id", jobID, "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("write output", "path", *out, "error", err)
		os.Exit(1)
	}

	fmt.Print(report.Summary(ingested.Protocol, res))
	fmt.Printf("\nPlanilha de conferência: %s\n", *out)
	if !res.OK {
		os.Exit(3)
	}
}

func unmarshalTables(memJSON, projJSON []byte, memorial, project *llm.ParcelTable) error {
	if err := json.Unmarshal(memJSON, memorial); err != nil {
		return fmt.Errorf("memorial: %w", err)
	}
	if err := json.Unmarshal(projJSON, project); err != nil {
		return fmt.Errorf("project: %w", err)
	}
	return nil
}
