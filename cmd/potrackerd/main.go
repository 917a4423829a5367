package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"po-tracker/gen/ent"
	"po-tracker/internal/async"
	"po-tracker/internal/common"
	"po-tracker/internal/export"
	"po-tracker/internal/ingest"
	"po-tracker/internal/llm"
	"po-tracker/internal/llm/openai"
	"po-tracker/internal/pdf"
	"po-tracker/internal/pipeline"
	"po-tracker/internal/repository"
	"po-tracker/internal/server"
	"po-tracker/internal/storage"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(slogger)

	// Env
	if err := godotenv.Load(); err != nil {
		log.Debugw("no .env file loaded", "err", err)
	}
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	var dbHealthy func(ctx context.Context) error
	entc, pool, err := openDatabase(ctx, cfg, slogger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer repository.Close(entc, pool, slogger)
	if pool != nil {
		if err := repository.HealthCheck(ctx, pool, cfg.Database.HealthTimeout, slogger); err != nil {
			log.Fatalf("DB health failed: %v", err)
		}
		dbHealthy = func(ctx context.Context) error {
			return repository.HealthCheck(ctx, pool, cfg.Database.HealthTimeout, slogger)
		}
		log.Infow("DB health OK")
	}
	if err := entc.Schema.Create(ctx); err != nil {
		log.Fatalf("migrating schema: %v", err)
	}

	// Bucket
	bucket, uploader, err := openBucket(cfg, slogger)
	if err != nil {
		log.Fatalf("opening bucket: %v", err)
	}

	// Prompt
	prompt, err := llm.LoadPrompt(cfg.LLM.PromptPath)
	if err != nil {
		log.Fatalf("loading prompt: %v", err)
	}

	// Pipeline
	extractor := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		MaxRetries:  cfg.LLM.MaxRetries,
	}, slogger)
	renderer := pdf.NewRenderer(cfg.Render.JPEGQuality, slogger)
	poRepo := repository.NewPORepository(entc, slogger)
	jobsRepo := repository.NewExtractJobRepository(entc, slogger)
	exportSvc := export.NewService(poRepo, bucket, slogger)

	inferStage := pipeline.NewInferStage(slogger, bucket, renderer, extractor, jobsRepo, prompt, extractor.ModelName())
	parseStage := pipeline.NewParseStage(slogger, poRepo, jobsRepo, exportSvc)
	processor := pipeline.NewProcessor(slogger, inferStage, parseStage)

	// Inbox watcher (optional)
	if len(cfg.Ingest.Roots) > 0 {
		queue := async.NewProcessorQueue(processor, slogger,
			async.WithWorkers(cfg.Ingest.Workers),
			async.WithQueueSize(cfg.Ingest.QueueSize),
		)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			queue.Shutdown(shutdownCtx)
		}()

		ingester := ingest.NewService(uploader, queue, slogger)
		go func() {
			if err := ingester.Run(ctx, ingest.WatchConfig{
				Roots:       cfg.Ingest.Roots,
				InitialScan: cfg.Ingest.InitialScan,
				Debounce:    cfg.Ingest.Debounce,
			}); err != nil && ctx.Err() == nil {
				log.Errorw("inbox watcher stopped", "err", err)
			}
		}()
	}

	// HTTP
	srv := server.New(server.Config{
		Addr:           cfg.Server.Addr,
		Username:       cfg.Server.AuthUsername,
		Password:       cfg.Server.AuthPassword,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, processor, exportSvc, dbHealthy, logger)

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("http serve: %v", err)
	}
	log.Info("stopped.")
}

func openDatabase(ctx context.Context, cfg *common.Config, slogger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if cfg.Database.DSN != "" {
		return repository.Open(ctx, repository.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.HealthTimeout,
		}, slogger)
	}
	client, err := repository.OpenLite(ctx, cfg.Database.SQLitePath, slogger)
	return client, nil, err
}

// openBucket picks Azure when an account is configured, otherwise a local
// directory bucket for development.
func openBucket(cfg *common.Config, slogger *slog.Logger) (storage.Bucket, ingest.PDFUploader, error) {
	if cfg.Storage.AccountName != "" {
		b, err := storage.NewAzureBucket(cfg.Storage.AccountName, cfg.Storage.AccountKey, cfg.Storage.Container, slogger)
		return b, b, err
	}
	b, err := storage.NewLocalBucket(cfg.Storage.LocalRoot, slogger)
	return b, b, err
}
