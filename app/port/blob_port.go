package port

//go:generate mockgen -source=blob_port.go -destination=../mocks/mock_blob_port.go

import (
	"context"
	"io"
)

// BlobStore stores opaque objects under deterministic paths and hands out
// time-limited signed retrieval URLs, never permanent public links.
//
// Upload fully consumes the input stream; a zero-byte or unreadable stream
// fails with domain.ErrUploadFailed. Delete is idempotent-safe: deleting a
// nonexistent path returns (false, nil), not an error.
type BlobStore interface {
	Upload(ctx context.Context, data io.Reader, path string) (string, error)
	Delete(ctx context.Context, path string) (bool, error)
}
