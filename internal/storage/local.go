package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"po-tracker/constants"
)

// LocalBucket implements Bucket on a plain directory tree, mirroring the
// bucket layout (pdf/ and csv-ps/ subdirectories under the root). Used for
// development and tests where no storage account is configured.
type LocalBucket struct {
	root string
	log  *slog.Logger
}

func NewLocalBucket(root string, logger *slog.Logger) (*LocalBucket, error) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, sub := range []string{constants.PDFFolder, constants.CSVFolder} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0o755); err != nil {
			return nil, fmt.Errorf("prepare bucket dir: %w", err)
		}
	}
	return &LocalBucket{root: root, log: logger}, nil
}

func (b *LocalBucket) FetchPDF(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !strings.HasSuffix(name, constants.PDFExtension) {
		name += constants.PDFExtension
	}
	src := filepath.Join(b.root, constants.PDFFolder, name)

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp("", "po-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("copy %s: %w", src, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func (b *LocalBucket) PutCSV(ctx context.Context, name string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dst := filepath.Join(b.root, constants.CSVFolder, name)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	b.log.Info("storage.put.ok", "object", constants.CSVFolder+name, "path", dst)
	return nil
}

// PutPDF copies r into the pdf/ folder. Used by the inbox ingester.
func (b *LocalBucket) PutPDF(ctx context.Context, name string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !strings.HasSuffix(name, constants.PDFExtension) {
		name += constants.PDFExtension
	}
	dst := filepath.Join(b.root, constants.PDFFolder, name)
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return out.Close()
}

func (b *LocalBucket) ListPDFs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir := filepath.Join(b.root, constants.PDFFolder)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), constants.PDFExtension) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
