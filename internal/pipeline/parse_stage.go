package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"po-tracker/internal/export"
	"po-tracker/internal/extract"
	"po-tracker/internal/repository"
)

// ParseStage runs stage two: project the validated model reply into the
// header and line-item records, persist them, mark the job PARSE_OK, and push
// the CSV exports back to the bucket.
type ParseStage struct {
	Logger   *slog.Logger
	PORepo   repository.PORepository
	JobsRepo repository.ExtractJobRepository
	Export   *export.Service
}

func NewParseStage(
	logger *slog.Logger,
	poRepo repository.PORepository,
	jobs repository.ExtractJobRepository,
	exportSvc *export.Service,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseStage{Logger: logger, PORepo: poRepo, JobsRepo: jobs, Export: exportSvc}
}

// Run consumes an InferResult. Parsing and persistence failures mark the job
// FAILED; a CSV upload failure after persistence succeeded is logged but does
// not fail the job, the data is already in the warehouse.
func (s *ParseStage) Run(ctx context.Context, in InferResult) error {
	fail := func(stage string, err error) error {
		_ = s.JobsRepo.FinishFailure(ctx, in.JobID, err.Error())
		return fmt.Errorf("%s: %w", stage, err)
	}

	doc, err := extract.LoadDocument(bytes.NewReader(in.Raw))
	if err != nil {
		return fail("load document", err)
	}

	header := extract.ProjectHeader(doc)
	lines := extract.ProjectLineItems(doc)

	saved, err := s.PORepo.SaveExtraction(ctx, &repository.SaveExtractionRequest{
		PODocName:  in.PODocName,
		ResponseMs: in.ResponseMs,
		Header:     header,
		Lines:      lines,
	})
	if err != nil {
		return fail("save extraction", err)
	}

	if err := s.JobsRepo.FinishParseSuccess(ctx, in.JobID, saved.ID); err != nil {
		return fail("record parse", err)
	}

	s.Logger.Info("pipeline.parse.ok",
		"job_id", in.JobID,
		"po_doc_name", in.PODocName,
		"po_number", header.PONumber,
		"line_items", len(lines),
	)

	if s.Export != nil {
		if err := s.Export.UploadExtractionCSVs(ctx, in.PODocName, header, lines); err != nil {
			s.Logger.Error("pipeline.export.failed",
				"job_id", in.JobID,
				"po_doc_name", in.PODocName,
				"err", err,
			)
		}
	}
	return nil
}
