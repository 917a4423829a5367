package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type stubRunner struct {
	err       error
	calls     int
	filenames []string
}

func (r *stubRunner) ProcessDocument(_ context.Context, pdfName string) (uuid.UUID, error) {
	r.calls++
	r.filenames = append(r.filenames, pdfName)
	if r.err != nil {
		return uuid.Nil, r.err
	}
	return uuid.New(), nil
}

type stubExporter struct {
	data []byte
	err  error
}

func (e *stubExporter) ExportWorkbookXLSX(_ context.Context, _, _ *time.Time) ([]byte, error) {
	return e.data, e.err
}

func newTestServer(runner DocumentRunner, exporter WorkbookExporter, dbHealthy func(context.Context) error) *Server {
	cfg := Config{
		Addr:     ":0",
		Username: "admin",
		Password: "s3cret",
	}
	return New(cfg, runner, exporter, dbHealthy, nil)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(nil, nil, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	s.Engine().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("healthz = %d, want 200", w.Code)
	}
}

func TestReadyz(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		s := newTestServer(nil, nil, func(context.Context) error { return nil })
		w := httptest.NewRecorder()
		s.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		if w.Code != http.StatusOK {
			t.Errorf("readyz = %d, want 200", w.Code)
		}
	})
	t.Run("db down", func(t *testing.T) {
		s := newTestServer(nil, nil, func(context.Context) error { return errors.New("no db") })
		w := httptest.NewRecorder()
		s.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("readyz = %d, want 503", w.Code)
		}
	})
}

func TestRunProcessingRequiresAuth(t *testing.T) {
	runner := &stubRunner{}
	s := newTestServer(runner, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/run-processing", strings.NewReader(`{"filename":"PO-001.pdf"}`))
	s.Engine().ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no creds = %d, want 401", w.Code)
	}
	if runner.calls != 0 {
		t.Error("runner invoked without auth")
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/run-processing", strings.NewReader(`{"filename":"PO-001.pdf"}`))
	req.SetBasicAuth("admin", "wrong")
	s.Engine().ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password = %d, want 401", w.Code)
	}
}

func TestRunProcessing(t *testing.T) {
	runner := &stubRunner{}
	s := newTestServer(runner, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/run-processing", strings.NewReader(`{"filename":"PO-42.pdf"}`))
	req.SetBasicAuth("admin", "s3cret")
	s.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var body struct {
		Status   string `json:"status"`
		Message  string `json:"message"`
		User     string `json:"user"`
		Filename string `json:"filename"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "Processing completed" {
		t.Errorf("status = %q", body.Status)
	}
	if body.Filename != "PO-42.pdf" {
		t.Errorf("filename = %q, want PO-42.pdf", body.Filename)
	}
	if body.User != "admin" {
		t.Errorf("user = %q, want admin", body.User)
	}
	if len(runner.filenames) != 1 || runner.filenames[0] != "PO-42.pdf" {
		t.Errorf("runner saw %v, want the requested filename", runner.filenames)
	}
}

func TestRunProcessingMissingFilename(t *testing.T) {
	runner := &stubRunner{}
	s := newTestServer(runner, nil, nil)

	for _, body := range []string{"", "{}", `{"filename":""}`, "not json"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/run-processing", strings.NewReader(body))
		req.SetBasicAuth("admin", "s3cret")
		s.Engine().ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
	}
	if runner.calls != 0 {
		t.Errorf("runner calls = %d, want 0", runner.calls)
	}
}

func TestRunProcessingFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("document failed")}
	s := newTestServer(runner, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/run-processing", strings.NewReader(`{"filename":"PO-001.pdf"}`))
	req.SetBasicAuth("admin", "s3cret")
	s.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestExportXLSX(t *testing.T) {
	s := newTestServer(nil, &stubExporter{data: []byte("PK\x03\x04workbook")}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/export.xlsx?from=2024-01-01", nil)
	req.SetBasicAuth("admin", "s3cret")
	s.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Disposition"); got == "" {
		t.Error("missing content disposition")
	}
}

func TestExportXLSXBadDate(t *testing.T) {
	s := newTestServer(nil, &stubExporter{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/export.xlsx?from=01-2024-01", nil)
	req.SetBasicAuth("admin", "s3cret")
	s.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := Config{Addr: ":0", Username: "a", Password: "b", AllowedOrigins: []string{"https://app.example.com"}}
	s := New(cfg, nil, nil, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/run-processing", nil)
	req.Header.Set("Origin", "https://app.example.com")
	s.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("allow-origin = %q", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodOptions, "/api/run-processing", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	s.Engine().ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("allow-origin for unknown origin = %q", got)
	}
}
