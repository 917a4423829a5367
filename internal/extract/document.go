package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// pageKeyPrefix marks the entries of the model reply that are real pages.
const pageKeyPrefix = "page_"

// Page is one page of a model reply. PriorityFields holds the recognized form
// fields and line items; a missing or wrong-shaped block is the same as empty.
type Page struct {
	PriorityFields map[string]any
}

// Document is the page-keyed structure the vision model produced for one
// source PDF. Keys look like "page_1", "page_2", ...; anything else in the
// reply is dropped at load time.
type Document map[string]Page

// SortedPageKeys returns the page keys in lexicographic order. Note that this
// is a string sort, so "page_10" orders before "page_2"; downstream consumers
// depend on this ordering, so it is kept as-is.
func (d Document) SortedPageKeys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PageNumber strips the page prefix from a page key ("page_3" -> "3").
func PageNumber(pageKey string) string {
	return strings.TrimPrefix(pageKey, pageKeyPrefix)
}

// ParsePages builds a Document from a decoded model reply subtree. Entries
// whose key does not carry the page prefix are ignored; pages that are not
// objects, or whose priority_fields is not an object, become empty pages.
func ParsePages(data map[string]any) Document {
	doc := Document{}
	for key, val := range data {
		if !strings.HasPrefix(key, pageKeyPrefix) {
			continue
		}
		page := Page{}
		if m, ok := val.(map[string]any); ok {
			if pf, ok := m["priority_fields"].(map[string]any); ok {
				page.PriorityFields = pf
			}
		}
		doc[key] = page
	}
	return doc
}

// LoadDocument decodes a persisted model reply and returns the page-keyed
// Document found under its top-level "data" key. A reply without "data"
// yields an empty Document; malformed JSON is the one hard failure here.
// Numbers are decoded as json.Number so their lexical form survives.
func LoadDocument(r io.Reader) (Document, error) {
	tree, err := decodeTree(r)
	if err != nil {
		return nil, err
	}
	data, _ := tree["data"].(map[string]any)
	if data == nil {
		return Document{}, nil
	}
	return ParsePages(data), nil
}

// LoadDocumentFile is LoadDocument over a file on disk.
func LoadDocumentFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}
	defer f.Close()
	return LoadDocument(f)
}

// ExtractValuesFromFile reads a persisted model reply and runs the value-only
// sweep over the WHOLE tree (including the "data" level), ignoring
// coordinates and structure. Used for ad-hoc inspection of raw replies.
func ExtractValuesFromFile(path string) (FlatRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}
	defer f.Close()
	tree, err := decodeTree(f)
	if err != nil {
		return nil, err
	}
	acc := FlatRecord{}
	FlattenValuesOnly(map[string]any(tree), "", acc)
	return acc, nil
}

type tree map[string]any

func decodeTree(r io.Reader) (tree, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var t tree
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return t, nil
}
