package port

//go:generate mockgen -source=provider_port.go -destination=../mocks/mock_provider_port.go

import "context"

// Providers resolves the concrete provider per capability. Each accessor is
// idempotent: the first call constructs the instance, every later call
// returns the same one. An unsupported provider name fails with
// domain.ErrUnsupportedProvider at first access, not at process start, so a
// partially configured process can still serve the capabilities it has.
type Providers interface {
	IdentityVerifier(ctx context.Context) (IdentityVerifier, error)
	PersistentStore(ctx context.Context) (PersistentStore, error)
	BlobStore(ctx context.Context) (BlobStore, error)
}
