package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"po-tracker/constants"
	"po-tracker/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, poDocName string) (*ent.ExtractJob, error)
	FinishInferSuccess(ctx context.Context, jobID uuid.UUID, modelName string, rawResponse []byte) error
	FinishParseSuccess(ctx context.Context, jobID uuid.UUID, headerID uuid.UUID) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, poDocName string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetPoDocName(poDocName).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "po_doc_name", poDocName, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "po_doc_name", poDocName)
	return job, nil
}

func (r *extractJobRepo) FinishInferSuccess(ctx context.Context, jobID uuid.UUID, modelName string, rawResponse []byte) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetModelName(modelName).
		SetRawResponse(rawResponse).
		SetStatus(string(constants.JobStatusInferOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(INFER_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job inference recorded", "job_id", jobID, "model", modelName, "raw_bytes", len(rawResponse))
	return nil
}

func (r *extractJobRepo) FinishParseSuccess(ctx context.Context, jobID uuid.UUID, headerID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetHeaderID(headerID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParseOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(PARSE_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (PARSE_OK)", "job_id", jobID, "header_id", headerID)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
