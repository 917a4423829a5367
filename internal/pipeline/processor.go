package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Processor coordinates inference (render + vision extract) then parse
// (project + persist + export) for purchase-order documents.
type Processor struct {
	Logger *slog.Logger
	Infer  *InferStage
	Parse  *ParseStage
}

func NewProcessor(logger *slog.Logger, infer *InferStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Infer: infer, Parse: parse}
}

// ProcessDocument runs the full pipeline for one PDF object name. Returns the
// job ID created by the inference stage (uuid.Nil if the job never started).
func (p *Processor) ProcessDocument(ctx context.Context, pdfName string) (uuid.UUID, error) {
	res, err := p.Infer.Run(ctx, pdfName)
	if err != nil {
		p.Logger.Error("processor.infer.failed", "pdf", pdfName, "job_id", res.JobID, "err", err)
		return res.JobID, err
	}

	if err := p.Parse.Run(ctx, res); err != nil {
		p.Logger.Error("processor.parse.failed", "job_id", res.JobID, "err", err)
		return res.JobID, err
	}

	p.Logger.Info("processor.document.ok", "pdf", pdfName, "job_id", res.JobID)
	return res.JobID, nil
}

// ProcessAll lists every PDF in the bucket and processes each in turn. One
// failing document does not stop the batch; the first error is returned after
// the batch completes.
func (p *Processor) ProcessAll(ctx context.Context) (processed int, firstErr error) {
	names, err := p.Infer.Bucket.ListPDFs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pdfs: %w", err)
	}
	p.Logger.Info("processor.batch.start", "documents", len(names))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			break
		}
		if _, err := p.ProcessDocument(ctx, name); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		processed++
	}

	p.Logger.Info("processor.batch.done", "processed", processed, "total", len(names))
	return processed, firstErr
}
