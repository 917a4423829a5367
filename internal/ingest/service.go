package ingest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"po-tracker/internal/async"
)

// PDFUploader pushes an inbox PDF into the bucket's pdf/ folder.
type PDFUploader interface {
	PutPDF(ctx context.Context, name string, r io.Reader) error
}

// Service tails the inbox directories and, for every dropped PDF, uploads it
// to the bucket and queues it for processing.
type Service struct {
	Uploader PDFUploader
	Queue    *async.ProcessorQueue
	Logger   *slog.Logger
}

func NewService(uploader PDFUploader, queue *async.ProcessorQueue, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Uploader: uploader, Queue: queue, Logger: logger}
}

// Run blocks until ctx is cancelled, ingesting every PDF the watcher emits.
func (s *Service) Run(ctx context.Context, cfg WatchConfig) error {
	events, errs, err := StartWatcher(ctx, cfg)
	if err != nil {
		return err
	}
	s.Logger.Info("inbox watcher started", "roots", cfg.Roots)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			s.Logger.Error("inbox watcher error", "error", err)
		case path, ok := <-events:
			if !ok {
				return nil
			}
			s.ingestOne(ctx, path)
		}
	}
}

func (s *Service) ingestOne(ctx context.Context, path string) {
	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		s.Logger.Error("open inbox pdf failed", "path", path, "error", err)
		return
	}
	err = s.Uploader.PutPDF(ctx, name, f)
	f.Close()
	if err != nil {
		s.Logger.Error("upload inbox pdf failed", "path", path, "error", err)
		return
	}

	_ = s.Queue.Enqueue(ctx, async.Job{PDFName: name})
	s.Logger.Info("inbox pdf ingested", "pdf", name)
}
