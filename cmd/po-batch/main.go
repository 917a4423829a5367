package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"po-tracker/gen/ent"
	"po-tracker/internal/common"
	"po-tracker/internal/export"
	"po-tracker/internal/llm"
	"po-tracker/internal/llm/openai"
	"po-tracker/internal/pdf"
	"po-tracker/internal/pipeline"
	"po-tracker/internal/repository"
	"po-tracker/internal/storage"
)

func main() {
	root := &cobra.Command{
		Use:   "po-batch",
		Short: "Batch tooling for purchase-order extraction",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			slogger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
			slog.SetDefault(slogger)
		},
	}
	root.AddCommand(newProcessCmd(), newExportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newProcessCmd() *cobra.Command {
	var pdfName string

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run extraction for every PDF in the bucket, or a single one",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			app, cleanup, err := wire(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if pdfName != "" {
				jobID, err := app.processor.ProcessDocument(ctx, pdfName)
				if err != nil {
					return fmt.Errorf("process %s: %w", pdfName, err)
				}
				fmt.Printf("processed %s (job %s)\n", pdfName, jobID)
				return nil
			}

			processed, err := app.processor.ProcessAll(ctx)
			fmt.Printf("processed %d document(s)\n", processed)
			return err
		},
	}
	cmd.Flags().StringVar(&pdfName, "pdf", "", "process only this PDF object name")
	return cmd
}

func newExportCmd() *cobra.Command {
	var out, fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the XLSX workbook of persisted extractions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			from, err := parseDateFlag(fromStr, "--from")
			if err != nil {
				return err
			}
			to, err := parseDateFlag(toStr, "--to")
			if err != nil {
				return err
			}

			app, cleanup, err := wire(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			data, err := app.exportSvc.ExportWorkbookXLSX(ctx, from, to)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Printf("wrote %s (%d bytes)\n", out, len(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "po-extractions.xlsx", "output XLSX file path")
	cmd.Flags().StringVar(&fromStr, "from", "", "from date YYYY-MM-DD")
	cmd.Flags().StringVar(&toStr, "to", "", "to date YYYY-MM-DD")
	return cmd
}

func parseDateFlag(raw, flagName string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date, use YYYY-MM-DD: %w", flagName, err)
	}
	return &t, nil
}

type app struct {
	processor *pipeline.Processor
	exportSvc *export.Service
}

// wire builds the full pipeline from environment configuration.
func wire(ctx context.Context) (*app, func(), error) {
	slogger := slog.Default()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var entc *ent.Client
	var cleanup func()
	if cfg.Database.DSN != "" {
		client, pool, err := repository.Open(ctx, repository.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.HealthTimeout,
		}, slogger)
		if err != nil {
			return nil, nil, fmt.Errorf("opening DB: %w", err)
		}
		entc = client
		cleanup = func() { repository.Close(client, pool, slogger) }
	} else {
		client, err := repository.OpenLite(ctx, cfg.Database.SQLitePath, slogger)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite: %w", err)
		}
		entc = client
		cleanup = func() { repository.Close(client, nil, slogger) }
	}
	if err := entc.Schema.Create(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("migrating schema: %w", err)
	}

	var bucket storage.Bucket
	var err error
	if cfg.Storage.AccountName != "" {
		bucket, err = storage.NewAzureBucket(cfg.Storage.AccountName, cfg.Storage.AccountKey, cfg.Storage.Container, slogger)
	} else {
		bucket, err = storage.NewLocalBucket(cfg.Storage.LocalRoot, slogger)
	}
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("opening bucket: %w", err)
	}

	prompt, err := llm.LoadPrompt(cfg.LLM.PromptPath)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

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

	infer := pipeline.NewInferStage(slogger, bucket, renderer, extractor, jobsRepo, prompt, extractor.ModelName())
	parse := pipeline.NewParseStage(slogger, poRepo, jobsRepo, exportSvc)
	processor := pipeline.NewProcessor(slogger, infer, parse)

	return &app{processor: processor, exportSvc: exportSvc}, cleanup, nil
}
