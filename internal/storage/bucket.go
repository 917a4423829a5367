package storage

import (
	"context"
	"io"
)

// Bucket is the object-store surface the pipeline needs: purchase-order PDFs
// live under the pdf/ prefix, produced CSVs are written back under csv-ps/.
type Bucket interface {
	// FetchPDF downloads pdf/<name> to a local temp file and returns its
	// path. The caller removes the file when done.
	FetchPDF(ctx context.Context, name string) (string, error)

	// PutCSV uploads r as csv-ps/<name>, overwriting any existing object.
	PutCSV(ctx context.Context, name string, r io.Reader) error

	// ListPDFs returns the bare names (prefix and folder stripped) of every
	// .pdf object under pdf/.
	ListPDFs(ctx context.Context) ([]string, error)
}
