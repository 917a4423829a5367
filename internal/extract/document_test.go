package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDocument(t *testing.T) {
	raw := `{
		"data": {
			"page_1": {"priority_fields": {"po_number": {"value": "PO-9"}}},
			"page_2": {},
			"metadata": {"model": "x"}
		},
		"usage": {"total_tokens": 10}
	}`
	doc, err := LoadDocument(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if len(doc) != 2 {
		t.Fatalf("got %d pages, want 2", len(doc))
	}
	if _, ok := doc["metadata"]; ok {
		t.Error("non-page key survived loading")
	}
	if got := ProjectHeader(doc).PONumber; got != "PO-9" {
		t.Errorf("po_number = %q", got)
	}
}

func TestLoadDocumentNoDataKey(t *testing.T) {
	doc, err := LoadDocument(strings.NewReader(`{"status": "ok"}`))
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if len(doc) != 0 {
		t.Fatalf("got %d pages, want 0", len(doc))
	}
}

func TestLoadDocumentMalformed(t *testing.T) {
	_, err := LoadDocument(strings.NewReader(`{"data": not json`))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse document") {
		t.Errorf("error not labelled as parse failure: %v", err)
	}
}

func TestLoadDocumentPreservesNumberForm(t *testing.T) {
	raw := `{"data": {"page_1": {"priority_fields": {
		"order_summary": {"total_amount": {"value": 100.10}}
	}}}}`
	doc, err := LoadDocument(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if got := ProjectHeader(doc).TotalAmount; got != "100.10" {
		t.Errorf("total_amount = %q, want lexical 100.10", got)
	}
}

func TestExtractValuesFromFile(t *testing.T) {
	raw := `{"data": {"items": [
		{"name": {"value": "Item1"}},
		{"name": {"value": "Item2"}}
	]}}`
	path := filepath.Join(t.TempDir(), "reply.json")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	flat, err := ExtractValuesFromFile(path)
	if err != nil {
		t.Fatalf("ExtractValuesFromFile: %v", err)
	}
	if flat["data.items[0].name"] != "Item1" || flat["data.items[1].name"] != "Item2" {
		t.Fatalf("sweep = %#v", flat)
	}
}

func TestExtractValuesFromFileMissing(t *testing.T) {
	if _, err := ExtractValuesFromFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
