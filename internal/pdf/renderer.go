package pdf

import (
	"context"
	"fmt"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gen2brain/go-fitz"
)

// PageImage is one rendered page of a purchase-order PDF.
type PageImage struct {
	PageNumber int
	Path       string
	Width      int
	Height     int
}

// Renderer turns a PDF into per-page JPEG files under a temp directory.
type Renderer struct {
	quality int
	log     *slog.Logger
}

// NewRenderer builds a renderer with the given JPEG quality (1..100);
// out-of-range values fall back to 90.
func NewRenderer(quality int, logger *slog.Logger) *Renderer {
	if quality < 1 || quality > 100 {
		quality = 90
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{quality: quality, log: logger}
}

// Render rasterizes every page of the PDF at pdfPath to a JPEG file and
// returns them in page order, plus a cleanup func that removes the files.
// cleanup is safe to call even when Render fails partway.
func (r *Renderer) Render(ctx context.Context, pdfPath string) (images []PageImage, cleanup func(), err error) {
	start := time.Now()
	cleanup = func() {}

	fi, err := os.Stat(pdfPath)
	if err != nil {
		return nil, cleanup, fmt.Errorf("stat pdf: %w", err)
	}
	if fi.IsDir() {
		return nil, cleanup, fmt.Errorf("stat pdf: %s is a directory", pdfPath)
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, cleanup, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	if pageCount == 0 {
		return nil, cleanup, fmt.Errorf("pdf has no pages: %s", pdfPath)
	}

	tempDir, err := os.MkdirTemp("", "po-pages-*")
	if err != nil {
		return nil, cleanup, fmt.Errorf("create temp dir: %w", err)
	}
	cleanup = func() { _ = os.RemoveAll(tempDir) }

	r.log.Info("pdf.render.start",
		"pdf", filepath.Base(pdfPath),
		"pages", pageCount,
		"quality", r.quality,
	)

	images = make([]PageImage, 0, pageCount)
	for pageNum := 0; pageNum < pageCount; pageNum++ {
		select {
		case <-ctx.Done():
			return nil, cleanup, ctx.Err()
		default:
		}

		img, err := doc.Image(pageNum)
		if err != nil {
			return nil, cleanup, fmt.Errorf("render page %d: %w", pageNum+1, err)
		}

		outPath := filepath.Join(tempDir, fmt.Sprintf("page_%03d.jpg", pageNum+1))
		f, err := os.Create(outPath)
		if err != nil {
			return nil, cleanup, fmt.Errorf("create page image %d: %w", pageNum+1, err)
		}
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: r.quality})
		f.Close()
		if err != nil {
			return nil, cleanup, fmt.Errorf("encode page %d: %w", pageNum+1, err)
		}

		bounds := img.Bounds()
		images = append(images, PageImage{
			PageNumber: pageNum + 1,
			Path:       outPath,
			Width:      bounds.Dx(),
			Height:     bounds.Dy(),
		})
	}

	r.log.Info("pdf.render.ok",
		"pdf", filepath.Base(pdfPath),
		"pages", len(images),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return images, cleanup, nil
}

// ImagePaths extracts the file paths from a slice of PageImages, preserving
// page order.
func ImagePaths(images []PageImage) []string {
	paths := make([]string, len(images))
	for i, img := range images {
		paths[i] = img.Path
	}
	return paths
}
