package memory

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"session-gateway/app/domain"
)

// BlobStore is an in-memory blob store. Signed URLs are simulated with an
// expires query parameter on a placeholder host.
type BlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	signTTL time.Duration
}

// NewBlobStore creates an empty mock blob store with the given signed-URL
// validity window.
func NewBlobStore(signTTL time.Duration) *BlobStore {
	return &BlobStore{
		objects: make(map[string][]byte),
		signTTL: signTTL,
	}
}

// Upload consumes the stream and stores it under path. Zero-byte streams
// fail with domain.ErrUploadFailed.
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

	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[path] = body

	expires := time.Now().Add(b.signTTL).Unix()
	return fmt.Sprintf("https://blobs.invalid/%s?expires=%d", path, expires), nil
}

// Delete removes the object at path, reporting false when absent.
func (b *BlobStore) Delete(ctx context.Context, path string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.objects[path]; !ok {
		return false, nil
	}
	delete(b.objects, path)
	return true, nil
}

// Get returns the stored bytes for a path. Test helper.
func (b *BlobStore) Get(path string) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	body, ok := b.objects[path]
	return body, ok
}
