// Package s3 implements the blob store capability on Amazon S3 with
// presigned GET URLs for retrieval.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"session-gateway/app/config"
	"session-gateway/app/domain"
)

// BlobStore stores objects in a single S3 bucket.
type BlobStore struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	signTTL   time.Duration
	logger    *slog.Logger
}

// NewBlobStore creates a blob store using the default AWS credential chain.
func NewBlobStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*BlobStore, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3 bucket name is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	logger.Info("s3 blob store initialized",
		"bucket", cfg.S3Bucket,
		"region", cfg.AWSRegion)

	return &BlobStore{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.S3Bucket,
		signTTL:   cfg.SignedURLTTL,
		logger:    logger,
	}, nil
}

// Upload fully consumes the stream into the object at path and returns a
// time-limited presigned retrieval URL. A zero-byte stream fails with
// domain.ErrUploadFailed.
func (b *BlobStore) Upload(ctx context.Context, data io.Reader, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", domain.ErrUploadFailed)
	}

	body, err := io.ReadAll(data)
	if err != nil {
		return "", fmt.Errorf("%w: read stream for %s: %v", domain.ErrUploadFailed, path, err)
	}
	if len(body) == 0 {
		return "", fmt.Errorf("%w: empty stream for %s", domain.ErrUploadFailed, path)
	}

	_, err = b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(path),
		Body:   bytes.NewReader(body),
	})
	if err != nil {
		return "", fmt.Errorf("%w: put %s: %v", domain.ErrUploadFailed, path, err)
	}

	presigned, err := b.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(path),
	}, s3.WithPresignExpires(b.signTTL))
	if err != nil {
		return "", fmt.Errorf("%w: presign %s: %v", domain.ErrUploadFailed, path, err)
	}

	b.logger.Info("blob uploaded", "path", path, "bytes", len(body))
	return presigned.URL, nil
}

// Delete removes the object at path. S3 deletes are blind, so the object
// is probed first to report whether anything was actually removed.
func (b *BlobStore) Delete(ctx context.Context, path string) (bool, error) {
	_, err := b.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to probe %s: %w", path, err)
	}

	_, err = b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete %s: %w", path, err)
	}

	b.logger.Info("blob deleted", "path", path)
	return true, nil
}
