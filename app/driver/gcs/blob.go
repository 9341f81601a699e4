// Package gcs implements the blob store capability on Google Cloud
// Storage. Retrieval is always through V4 signed URLs with a fixed
// validity window, never through permanent public links.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"cloud.google.com/go/storage"

	"session-gateway/app/config"
	"session-gateway/app/domain"
)

// BlobStore stores objects in a single GCS bucket.
type BlobStore struct {
	client  *storage.Client
	bucket  string
	signTTL time.Duration
	logger  *slog.Logger
}

// NewBlobStore creates a blob store using ambient application credentials.
func NewBlobStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*BlobStore, error) {
	if cfg.GCSBucket == "" {
		return nil, fmt.Errorf("GCS bucket name is required")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	logger.Info("gcs blob store initialized", "bucket", cfg.GCSBucket)

	return &BlobStore{
		client:  client,
		bucket:  cfg.GCSBucket,
		signTTL: cfg.SignedURLTTL,
		logger:  logger,
	}, nil
}

// Upload fully consumes the stream into the object at path and returns a
// time-limited signed retrieval URL. A zero-byte stream fails with
// domain.ErrUploadFailed and leaves no object behind.
func (b *BlobStore) Upload(ctx context.Context, data io.Reader, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", domain.ErrUploadFailed)
	}

	obj := b.client.Bucket(b.bucket).Object(path)
	w := obj.NewWriter(ctx)

	n, err := io.Copy(w, data)
	if err != nil {
		_ = w.Close()
		return "", fmt.Errorf("%w: write %s: %v", domain.ErrUploadFailed, path, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: close %s: %v", domain.ErrUploadFailed, path, err)
	}
	if n == 0 {
		_ = obj.Delete(ctx)
		return "", fmt.Errorf("%w: empty stream for %s", domain.ErrUploadFailed, path)
	}

	url, err := b.client.Bucket(b.bucket).SignedURL(path, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(b.signTTL),
	})
	if err != nil {
		return "", fmt.Errorf("%w: sign %s: %v", domain.ErrUploadFailed, path, err)
	}

	b.logger.Info("blob uploaded", "path", path, "bytes", n)
	return url, nil
}

// Delete removes the object at path. Deleting a nonexistent path is not an
// error; it reports false.
func (b *BlobStore) Delete(ctx context.Context, path string) (bool, error) {
	err := b.client.Bucket(b.bucket).Object(path).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to delete %s: %w", path, err)
	}

	b.logger.Info("blob deleted", "path", path)
	return true, nil
}

// Close releases the underlying client.
func (b *BlobStore) Close() error {
	return b.client.Close()
}
