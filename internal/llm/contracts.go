package llm

import "context"

// ExtractPagesRequest carries everything the vision model needs for one
// document: the rendered page images and the extraction prompt.
type ExtractPagesRequest struct {
	PODocName  string
	ImagePaths []string // rendered page images, in page order
	Prompt     string
}

// PageVisionExtractor is the interface the pipeline depends on. The raw reply
// is the page-keyed JSON document described by BuildPODocumentJSONSchema.
type PageVisionExtractor interface {
	ExtractPages(ctx context.Context, req ExtractPagesRequest) ([]byte, error)
}
