package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"po-tracker/constants"
	"po-tracker/internal/llm"
	"po-tracker/internal/pdf"
	"po-tracker/internal/repository"
	"po-tracker/internal/storage"
)

// PageRenderer rasterizes a PDF into page images. cleanup removes the
// rendered files and is safe to call on failure.
type PageRenderer interface {
	Render(ctx context.Context, pdfPath string) (images []pdf.PageImage, cleanup func(), err error)
}

// InferResult is what the inference stage hands to the parse stage.
type InferResult struct {
	JobID      uuid.UUID
	PODocName  string
	Raw        []byte // validated page-keyed JSON reply
	ResponseMs int64
}

// InferStage runs stage one for a document: fetch the PDF from the bucket,
// render its pages, send them to the vision model, and persist the raw reply
// on the extract job (INFER_OK).
type InferStage struct {
	Logger    *slog.Logger
	Bucket    storage.Bucket
	Renderer  PageRenderer
	Extractor llm.PageVisionExtractor
	JobsRepo  repository.ExtractJobRepository
	Prompt    string
	ModelName string
}

func NewInferStage(
	logger *slog.Logger,
	bucket storage.Bucket,
	renderer PageRenderer,
	extractor llm.PageVisionExtractor,
	jobs repository.ExtractJobRepository,
	prompt, modelName string,
) *InferStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &InferStage{
		Logger:    logger,
		Bucket:    bucket,
		Renderer:  renderer,
		Extractor: extractor,
		JobsRepo:  jobs,
		Prompt:    prompt,
		ModelName: modelName,
	}
}

// Run executes inference for one PDF object name (with or without the .pdf
// extension). On failure after the job row exists, the job is marked FAILED.
func (s *InferStage) Run(ctx context.Context, pdfName string) (InferResult, error) {
	poDocName := constants.CleanPDFName(pdfName)
	start := time.Now()

	job, err := s.JobsRepo.Start(ctx, poDocName)
	if err != nil {
		return InferResult{}, fmt.Errorf("start job: %w", err)
	}
	res := InferResult{JobID: job.ID, PODocName: poDocName}

	fail := func(stage string, err error) (InferResult, error) {
		_ = s.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return res, fmt.Errorf("%s: %w", stage, err)
	}

	localPDF, err := s.Bucket.FetchPDF(ctx, pdfName)
	if err != nil {
		return fail("fetch pdf", err)
	}
	defer os.Remove(localPDF)

	images, cleanup, err := s.Renderer.Render(ctx, localPDF)
	defer cleanup()
	if err != nil {
		return fail("render pdf", err)
	}

	raw, err := s.Extractor.ExtractPages(ctx, llm.ExtractPagesRequest{
		PODocName:  poDocName,
		ImagePaths: pdf.ImagePaths(images),
		Prompt:     s.Prompt,
	})
	if err != nil {
		return fail("vision extract", err)
	}
	res.Raw = raw
	res.ResponseMs = time.Since(start).Milliseconds()

	if err := s.JobsRepo.FinishInferSuccess(ctx, job.ID, s.ModelName, raw); err != nil {
		return fail("record inference", err)
	}

	s.Logger.Info("pipeline.infer.ok",
		"job_id", job.ID,
		"po_doc_name", poDocName,
		"pages", len(images),
		"response_ms", res.ResponseMs,
	)
	return res, nil
}
