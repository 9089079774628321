package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/lgasparetto/geoverify/gen/geoverify/v1"
	"github.com/lgasparetto/geoverify/internal/common"
	"github.com/lgasparetto/geoverify/internal/compare"
	"github.com/lgasparetto/geoverify/internal/document"
	"github.com/lgasparetto/geoverify/internal/ingest"
	"github.com/lgasparetto/geoverify/internal/llm/gemini"
	"github.com/lgasparetto/geoverify/internal/pipeline"
	"github.com/lgasparetto/geoverify/internal/pipeline/comparetables"
	"github.com/lgasparetto/geoverify/internal/pipeline/tableextract"
	repo "github.com/lgasparetto/geoverify/internal/repository"
	"github.com/lgasparetto/geoverify/internal/server"
)

func main() {
	// Logger
	zlog, _ := zap.NewProduction()
	defer zlog.Sync()
	log := zlog.Sugar()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// DB
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		log.Fatalf("DB health failed: %v", err)
	}
	log.Infow("DB health OK")

	// Vision client
	vision, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		Model:       cfg.Gemini.Model,
		Temperature: cfg.Gemini.Temperature,
		Timeout:     cfg.Gemini.Timeout,
	}, logger)
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}

	// Repositories and pipeline
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

	// Optional background watcher over the scanner deposit directories.
	if len(cfg.Document.WatchRoots) > 0 {
		events, werrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:    cfg.Document.WatchRoots,
			Debounce: 2 * time.Second,
		})
		if err != nil {
			log.Fatalf("watcher: %v", err)
		}
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case err := <-werrs:
					if err != nil {
						logger.Error("watch.error", "error", err)
					}
				case path, ok := <-events:
					if !ok {
						return
					}
					res, err := ingestor.IngestPath(ctx, path)
					if err != nil {
						logger.Error("watch.ingest.failed", "path", path, "error", err)
						continue
					}
					if res.Deduplicated {
						logger.Info("watch.ingest.duplicate", "path", path, "file_id", res.FileID)
						continue
					}
					fileID, err := uuid.Parse(res.FileID)
					if err != nil {
						continue
					}
					if _, _, err := processor.ProcessFile(ctx, fileID); err != nil {
						logger.Error("watch.process.failed", "file_id", res.FileID, "error", err)
					}
				}
			}
		}()
		log.Infow("watching scan roots", "roots", cfg.Document.WatchRoots)
	}

	// gRPC server
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewVerifyServer(ingestor, processor, jobsRepo, cfg.Document.ScanRoot, logger)
	v1.RegisterVerifyServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}
