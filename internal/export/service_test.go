package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"
	"testing"

	"po-tracker/internal/extract"
)

func TestBuildHeadersCSV(t *testing.T) {
	h := extract.HeaderRecord{
		PONumber:    "PO-001",
		PODate:      "2024-01-15",
		Name:        "Acme Corp",
		TotalAmount: "1250.00",
	}
	out, err := BuildHeadersCSV(h)
	if err != nil {
		t.Fatalf("BuildHeadersCSV: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	wantHeader := append([]string{""}, extract.HeaderFieldNames...)
	if len(rows[0]) != len(wantHeader) {
		t.Fatalf("header has %d cols, want %d", len(rows[0]), len(wantHeader))
	}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header col %d = %q, want %q", i, rows[0][i], col)
		}
	}
	if rows[1][0] != "0" {
		t.Errorf("index col = %q, want 0", rows[1][0])
	}
	if rows[1][1] != "PO-001" {
		t.Errorf("po_number col = %q", rows[1][1])
	}
}

func TestBuildLinesCSV(t *testing.T) {
	lines := []extract.LineItemRecord{
		{ItemDescription: "Widget", Quantity: "5", PageNo: "1"},
		{ItemDescription: "Gadget, large", Quantity: "2", PageNo: "2"},
	}
	out, err := BuildLinesCSV(lines)
	if err != nil {
		t.Fatalf("BuildLinesCSV: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[1][0] != "0" || rows[2][0] != "1" {
		t.Errorf("index cols = %q, %q", rows[1][0], rows[2][0])
	}
	// commas inside a field survive the round trip
	if rows[2][1] != "Gadget, large" {
		t.Errorf("quoted field = %q", rows[2][1])
	}
}

func TestBuildLinesCSVEmpty(t *testing.T) {
	out, err := BuildLinesCSV(nil)
	if err != nil {
		t.Fatalf("BuildLinesCSV: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("empty input should produce header row only, got %d rows", len(rows))
	}
}

type captureBucket struct {
	objects map[string][]byte
}

func (b *captureBucket) FetchPDF(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (b *captureBucket) PutCSV(_ context.Context, name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if b.objects == nil {
		b.objects = map[string][]byte{}
	}
	b.objects[name] = data
	return nil
}

func (b *captureBucket) ListPDFs(_ context.Context) ([]string, error) {
	return nil, nil
}

func TestUploadExtractionCSVs(t *testing.T) {
	bucket := &captureBucket{}
	svc := NewService(nil, bucket, nil)

	header := extract.HeaderRecord{PONumber: "PO-001"}
	lines := []extract.LineItemRecord{{ItemDescription: "Widget", PageNo: "1"}}

	if err := svc.UploadExtractionCSVs(context.Background(), "PO-001", header, lines); err != nil {
		t.Fatalf("UploadExtractionCSVs: %v", err)
	}

	if _, ok := bucket.objects["PO-001_headers_.csv"]; !ok {
		t.Error("headers csv not uploaded")
	}
	linesCSV, ok := bucket.objects["PO-001_lines_.csv"]
	if !ok {
		t.Fatal("lines csv not uploaded")
	}
	if !strings.Contains(string(linesCSV), "Widget") {
		t.Errorf("lines csv missing row: %q", linesCSV)
	}
}
