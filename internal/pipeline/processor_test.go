package pipeline

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"po-tracker/gen/ent"
	"po-tracker/internal/entity"
	"po-tracker/internal/export"
	"po-tracker/internal/llm"
	"po-tracker/internal/pdf"
	"po-tracker/internal/repository"
)

const sampleReply = `{
	"data": {
		"page_1": {
			"priority_fields": {
				"po_number": {"value": "PO-001"},
				"po_date": {"value": "2024-01-15"},
				"vendor_details": {
					"name": {"value": "Acme Corp"}
				},
				"order_summary": {
					"total_amount": {"value": "1250.00"}
				},
				"line_items": [
					{
						"item_description": {"value": "Widget"},
						"quantity": "5"
					}
				]
			}
		}
	}
}`

type fakeBucket struct {
	pdfs     []string
	fetchErr error
	puts     map[string][]byte
}

func (b *fakeBucket) FetchPDF(_ context.Context, name string) (string, error) {
	if b.fetchErr != nil {
		return "", b.fetchErr
	}
	return "/tmp/" + name, nil
}

func (b *fakeBucket) PutCSV(_ context.Context, name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if b.puts == nil {
		b.puts = map[string][]byte{}
	}
	b.puts[name] = data
	return nil
}

func (b *fakeBucket) ListPDFs(_ context.Context) ([]string, error) {
	return b.pdfs, nil
}

type fakeRenderer struct {
	err       error
	cleanedUp bool
}

func (r *fakeRenderer) Render(_ context.Context, _ string) ([]pdf.PageImage, func(), error) {
	cleanup := func() { r.cleanedUp = true }
	if r.err != nil {
		return nil, cleanup, r.err
	}
	return []pdf.PageImage{{PageNumber: 1, Path: "page_001.jpg"}}, cleanup, nil
}

type fakeExtractor struct {
	reply []byte
	err   error
	reqs  []llm.ExtractPagesRequest
}

func (e *fakeExtractor) ExtractPages(_ context.Context, req llm.ExtractPagesRequest) ([]byte, error) {
	e.reqs = append(e.reqs, req)
	if e.err != nil {
		return nil, e.err
	}
	return e.reply, nil
}

type fakeJobs struct {
	started  []string
	statuses map[uuid.UUID][]string
}

func (j *fakeJobs) record(id uuid.UUID, status string) {
	if j.statuses == nil {
		j.statuses = map[uuid.UUID][]string{}
	}
	j.statuses[id] = append(j.statuses[id], status)
}

func (j *fakeJobs) Start(_ context.Context, poDocName string) (*ent.ExtractJob, error) {
	j.started = append(j.started, poDocName)
	job := &ent.ExtractJob{ID: uuid.New()}
	j.record(job.ID, "RUNNING")
	return job, nil
}

func (j *fakeJobs) FinishInferSuccess(_ context.Context, jobID uuid.UUID, _ string, _ []byte) error {
	j.record(jobID, "INFER_OK")
	return nil
}

func (j *fakeJobs) FinishParseSuccess(_ context.Context, jobID uuid.UUID, _ uuid.UUID) error {
	j.record(jobID, "PARSE_OK")
	return nil
}

func (j *fakeJobs) FinishFailure(_ context.Context, jobID uuid.UUID, _ string) error {
	j.record(jobID, "FAILED")
	return nil
}

func (j *fakeJobs) lastStatus(id uuid.UUID) string {
	s := j.statuses[id]
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}

type fakePORepo struct {
	saved   []*repository.SaveExtractionRequest
	saveErr error
}

func (r *fakePORepo) SaveExtraction(_ context.Context, req *repository.SaveExtractionRequest) (*entity.POHeader, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	r.saved = append(r.saved, req)
	return &entity.POHeader{ID: uuid.New(), PONumber: req.Header.PONumber}, nil
}

func (r *fakePORepo) ListHeaders(_ context.Context, _, _ *time.Time) ([]*entity.POHeader, error) {
	return nil, nil
}

func (r *fakePORepo) ListLineItems(_ context.Context, _ string) ([]*entity.POLineItem, error) {
	return nil, nil
}

func newTestProcessor(bucket *fakeBucket, renderer *fakeRenderer, extractor llm.PageVisionExtractor, jobs *fakeJobs, poRepo *fakePORepo) *Processor {
	infer := NewInferStage(nil, bucket, renderer, extractor, jobs, "extract this purchase order", "gpt-4o")
	exportSvc := export.NewService(poRepo, bucket, nil)
	parse := NewParseStage(nil, poRepo, jobs, exportSvc)
	return NewProcessor(nil, infer, parse)
}

func TestProcessDocumentHappyPath(t *testing.T) {
	bucket := &fakeBucket{}
	renderer := &fakeRenderer{}
	extractor := &fakeExtractor{reply: []byte(sampleReply)}
	jobs := &fakeJobs{}
	poRepo := &fakePORepo{}

	p := newTestProcessor(bucket, renderer, extractor, jobs, poRepo)

	jobID, err := p.ProcessDocument(context.Background(), "PO-001.pdf")
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}
	if jobs.lastStatus(jobID) != "PARSE_OK" {
		t.Errorf("job status = %v, want PARSE_OK last", jobs.statuses[jobID])
	}
	if len(jobs.started) != 1 || jobs.started[0] != "PO-001" {
		t.Errorf("job started for %v, want PO-001 (extension stripped)", jobs.started)
	}
	if !renderer.cleanedUp {
		t.Error("rendered pages were not cleaned up")
	}

	if len(poRepo.saved) != 1 {
		t.Fatalf("saved %d extractions, want 1", len(poRepo.saved))
	}
	saved := poRepo.saved[0]
	if saved.Header.PONumber != "PO-001" {
		t.Errorf("header po_number = %q", saved.Header.PONumber)
	}
	if saved.Header.Name != "Acme Corp" {
		t.Errorf("header vendor name = %q", saved.Header.Name)
	}
	if len(saved.Lines) != 1 || saved.Lines[0].ItemDescription != "Widget" {
		t.Errorf("lines = %+v", saved.Lines)
	}
	if saved.Lines[0].Quantity != "5" {
		t.Errorf("quantity = %q, want raw string 5", saved.Lines[0].Quantity)
	}

	if _, ok := bucket.puts["PO-001_headers_.csv"]; !ok {
		t.Error("headers csv not uploaded")
	}
	if _, ok := bucket.puts["PO-001_lines_.csv"]; !ok {
		t.Error("lines csv not uploaded")
	}

	if len(extractor.reqs) != 1 || extractor.reqs[0].PODocName != "PO-001" {
		t.Errorf("extractor requests = %+v", extractor.reqs)
	}
}

func TestProcessDocumentInferFailureMarksJobFailed(t *testing.T) {
	jobs := &fakeJobs{}
	extractor := &fakeExtractor{err: errors.New("model unavailable")}
	p := newTestProcessor(&fakeBucket{}, &fakeRenderer{}, extractor, jobs, &fakePORepo{})

	jobID, err := p.ProcessDocument(context.Background(), "PO-002.pdf")
	if err == nil {
		t.Fatal("expected error")
	}
	if jobs.lastStatus(jobID) != "FAILED" {
		t.Errorf("job status = %v, want FAILED last", jobs.statuses[jobID])
	}
}

func TestProcessDocumentFetchFailure(t *testing.T) {
	jobs := &fakeJobs{}
	bucket := &fakeBucket{fetchErr: errors.New("blob not found")}
	p := newTestProcessor(bucket, &fakeRenderer{}, &fakeExtractor{reply: []byte(sampleReply)}, jobs, &fakePORepo{})

	jobID, err := p.ProcessDocument(context.Background(), "missing.pdf")
	if err == nil || !strings.Contains(err.Error(), "fetch pdf") {
		t.Fatalf("err = %v, want fetch pdf error", err)
	}
	if jobs.lastStatus(jobID) != "FAILED" {
		t.Errorf("job status = %v, want FAILED last", jobs.statuses[jobID])
	}
}

func TestProcessDocumentSaveFailure(t *testing.T) {
	jobs := &fakeJobs{}
	poRepo := &fakePORepo{saveErr: errors.New("db down")}
	p := newTestProcessor(&fakeBucket{}, &fakeRenderer{}, &fakeExtractor{reply: []byte(sampleReply)}, jobs, poRepo)

	jobID, err := p.ProcessDocument(context.Background(), "PO-003.pdf")
	if err == nil || !strings.Contains(err.Error(), "save extraction") {
		t.Fatalf("err = %v, want save extraction error", err)
	}
	if jobs.lastStatus(jobID) != "FAILED" {
		t.Errorf("job status = %v, want FAILED last", jobs.statuses[jobID])
	}
}

func TestProcessAllContinuesPastFailures(t *testing.T) {
	jobs := &fakeJobs{}
	bucket := &fakeBucket{pdfs: []string{"a.pdf", "b.pdf", "c.pdf"}}
	// fail only the second document by making the extractor stateful
	extractor := &flakyExtractor{failOn: 2, reply: []byte(sampleReply)}
	p := newTestProcessor(bucket, &fakeRenderer{}, extractor, jobs, &fakePORepo{})

	processed, err := p.ProcessAll(context.Background())
	if processed != 2 {
		t.Errorf("processed = %d, want 2", processed)
	}
	if err == nil {
		t.Error("expected first error to surface")
	}
}

type flakyExtractor struct {
	calls  int
	failOn int
	reply  []byte
}

func (e *flakyExtractor) ExtractPages(_ context.Context, _ llm.ExtractPagesRequest) ([]byte, error) {
	e.calls++
	if e.calls == e.failOn {
		return nil, errors.New("transient failure")
	}
	return e.reply, nil
}
