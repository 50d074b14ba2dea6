package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"smartcarbon/internal/config"
	"smartcarbon/internal/handler"
	"smartcarbon/internal/insight"
	_ "smartcarbon/internal/insight/claude"
	_ "smartcarbon/internal/insight/gemini"
	_ "smartcarbon/internal/insight/openai"
	ocrnoop "smartcarbon/internal/ocr/noop"
	"smartcarbon/internal/ocr/tesseract"
	"smartcarbon/internal/port"
	"smartcarbon/internal/repository/memory"
	"smartcarbon/internal/router"
	"smartcarbon/internal/service"
	storagenoop "smartcarbon/internal/storage/noop"
	s3storage "smartcarbon/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	config.InitLogger(cfg.Log)
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	registry := memory.NewRegistry()
	sessionRepo := memory.NewSessionRepo(registry)
	docRepo := memory.NewDocumentRepo(registry)

	// Initialize OCR
	var recognizer port.TextRecognizer
	var checks []handler.ReadinessCheck
	switch cfg.OCR.Provider {
	case "noop":
		recognizer = ocrnoop.NewRecognizer()
	case "tesseract":
		recognizer = tesseract.NewRecognizer(cfg.OCR, nil)
		checks = append(checks, handler.ReadinessCheck{
			Name:  "ocr",
			Check: func(context.Context) error { return tesseract.Available(cfg.OCR.Binary) },
		})
	default:
		return fmt.Errorf("unknown ocr provider: %s", cfg.OCR.Provider)
	}

	// Initialize storage
	var storage port.ObjectStorage
	switch cfg.Storage.Provider {
	case "noop":
		storage = storagenoop.NewStorage()
	case "s3":
		storage, err = s3storage.NewS3Client(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	default:
		return fmt.Errorf("unknown storage provider: %s", cfg.Storage.Provider)
	}

	// Initialize insight providers
	generator, err := insight.NewChain(&cfg.Insights)
	if err != nil {
		return fmt.Errorf("failed to initialize insight providers: %w", err)
	}

	// Initialize services
	sessionSvc := service.NewSessionService(sessionRepo, docRepo, service.ArchiveTarget{
		Storage: storage,
		Bucket:  cfg.S3.Bucket,
		Prefix:  cfg.Storage.Prefix,
	})
	documentSvc := service.NewDocumentService(service.DocumentServiceDeps{
		SessionRepo: sessionRepo,
		DocRepo:     docRepo,
		Recognizer:  recognizer,
		Storage:     storage,
		Upload:      &cfg.Upload,
		StorageCfg:  &cfg.Storage,
		Bucket:      cfg.S3.Bucket,
	})
	reportSvc := service.NewReportService(docRepo)
	insightSvc := service.NewInsightService(sessionRepo, docRepo, generator)
	exportSvc := service.NewExportService(docRepo, nil)

	// Setup router
	r := router.Setup(router.Handlers{
		Health:   handler.NewHealthHandler(checks...),
		Category: handler.NewCategoryHandler(),
		Session:  handler.NewSessionHandler(sessionSvc),
		Document: handler.NewDocumentHandler(documentSvc),
		Report:   handler.NewReportHandler(reportSvc),
		Insight:  handler.NewInsightHandler(insightSvc),
		Export:   handler.NewExportHandler(exportSvc),
	}, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", cfg.Server.Port).
			Str("ocr", cfg.OCR.Provider).
			Str("storage", cfg.Storage.Provider).
			Str("insights", cfg.Insights.Primary.Provider).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
