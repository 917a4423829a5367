package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalBucketRoundTrip(t *testing.T) {
	root := t.TempDir()
	bucket, err := NewLocalBucket(root, nil)
	if err != nil {
		t.Fatalf("NewLocalBucket: %v", err)
	}
	ctx := context.Background()

	// seed two PDFs and one stray file
	pdfDir := filepath.Join(root, "pdf")
	for _, name := range []string{"PO-002.pdf", "PO-001.pdf"} {
		if err := os.WriteFile(filepath.Join(pdfDir, name), []byte("%PDF-1.4 fake"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(pdfDir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := bucket.ListPDFs(ctx)
	if err != nil {
		t.Fatalf("ListPDFs: %v", err)
	}
	if len(names) != 2 || names[0] != "PO-001.pdf" || names[1] != "PO-002.pdf" {
		t.Errorf("ListPDFs = %v, want sorted pdfs only", names)
	}

	local, err := bucket.FetchPDF(ctx, "PO-001")
	if err != nil {
		t.Fatalf("FetchPDF: %v", err)
	}
	defer os.Remove(local)
	data, err := os.ReadFile(local)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "%PDF-1.4 fake" {
		t.Errorf("fetched contents = %q", data)
	}

	if err := bucket.PutCSV(ctx, "PO-001_headers_.csv", strings.NewReader("a,b\n1,2\n")); err != nil {
		t.Fatalf("PutCSV: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(root, "csv-ps", "PO-001_headers_.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "a,b\n1,2\n" {
		t.Errorf("uploaded csv = %q", got)
	}
}

func TestLocalBucketFetchMissing(t *testing.T) {
	bucket, err := NewLocalBucket(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := bucket.FetchPDF(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for missing pdf")
	}
}
