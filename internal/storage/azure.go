package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	azstorage "github.com/Azure/azure-sdk-for-go/storage"
	"github.com/avast/retry-go/v4"

	"po-tracker/constants"
)

// AzureBucket implements Bucket against an Azure Storage blob container using
// shared-key auth.
type AzureBucket struct {
	container *azstorage.Container
	log       *slog.Logger
}

// NewAzureBucket connects to the account with shared-key credentials and
// binds to the given container. The container must already exist.
func NewAzureBucket(accountName, accountKey, containerName string, logger *slog.Logger) (*AzureBucket, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := azstorage.NewBasicClient(accountName, accountKey)
	if err != nil {
		return nil, fmt.Errorf("azure storage client: %w", err)
	}
	svc := client.GetBlobService()
	container := svc.GetContainerReference(containerName)

	exists, err := container.Exists()
	if err != nil {
		return nil, fmt.Errorf("check container %s: %w", containerName, err)
	}
	if !exists {
		return nil, fmt.Errorf("container %s does not exist", containerName)
	}

	return &AzureBucket{container: container, log: logger}, nil
}

func (b *AzureBucket) FetchPDF(ctx context.Context, name string) (string, error) {
	objectName := constants.PDFFolder + name
	if !strings.HasSuffix(objectName, constants.PDFExtension) {
		objectName += constants.PDFExtension
	}
	start := time.Now()

	tmp, err := os.CreateTemp("", "po-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	err = retry.Do(
		func() error {
			blob := b.container.GetBlobReference(objectName)
			rc, err := blob.Get(nil)
			if err != nil {
				return fmt.Errorf("get blob %s: %w", objectName, err)
			}
			defer rc.Close()
			if _, err := tmp.Seek(0, io.SeekStart); err != nil {
				return err
			}
			if err := tmp.Truncate(0); err != nil {
				return err
			}
			_, err = io.Copy(tmp, rc)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if cerr := tmp.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("fetch %s: %w", objectName, err)
	}

	b.log.Info("storage.fetch.ok",
		"object", objectName,
		"local", tmp.Name(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return tmp.Name(), nil
}

func (b *AzureBucket) PutCSV(ctx context.Context, name string, r io.Reader) error {
	objectName := constants.CSVFolder + name
	start := time.Now()

	// the classic blob API wants a rewindable reader for retries, so buffer
	// small CSV payloads up front
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read csv payload: %w", err)
	}

	err = retry.Do(
		func() error {
			blob := b.container.GetBlobReference(objectName)
			blob.Properties.ContentType = "text/csv"
			return blob.CreateBlockBlobFromReader(strings.NewReader(string(data)), nil)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("upload %s: %w", objectName, err)
	}

	b.log.Info("storage.put.ok",
		"object", objectName,
		"bytes", len(data),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// PutPDF uploads r as pdf/<name>. Used by the inbox ingester; not part of the
// pipeline-facing Bucket interface.
func (b *AzureBucket) PutPDF(ctx context.Context, name string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	objectName := constants.PDFFolder + name
	if !strings.HasSuffix(objectName, constants.PDFExtension) {
		objectName += constants.PDFExtension
	}
	blob := b.container.GetBlobReference(objectName)
	blob.Properties.ContentType = "application/pdf"
	if err := blob.CreateBlockBlobFromReader(r, nil); err != nil {
		return fmt.Errorf("upload %s: %w", objectName, err)
	}
	b.log.Info("storage.put.ok", "object", objectName)
	return nil
}

func (b *AzureBucket) ListPDFs(ctx context.Context) ([]string, error) {
	var names []string
	params := azstorage.ListBlobsParameters{Prefix: constants.PDFFolder}
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		resp, err := b.container.ListBlobs(params)
		if err != nil {
			return nil, fmt.Errorf("list blobs: %w", err)
		}
		for _, blob := range resp.Blobs {
			if !strings.HasSuffix(strings.ToLower(blob.Name), constants.PDFExtension) {
				continue
			}
			names = append(names, constants.CleanPDFName(blob.Name)+constants.PDFExtension)
		}
		if resp.NextMarker == "" {
			break
		}
		params.Marker = resp.NextMarker
	}
	return names, nil
}
