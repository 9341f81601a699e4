package port

//go:generate mockgen -source=store_port.go -destination=../mocks/mock_store_port.go

import (
	"context"

	"session-gateway/app/domain"
)

// Document is a schemaless record exchanged with a persistent store.
type Document = map[string]any

// UsersCollection is the only collection the session core touches directly.
const UsersCollection = "users"

// PersistentStore is a collection-oriented document store. All operations
// are safe for concurrent use; the store guarantees per-operation atomicity
// only, no cross-operation transactions. Connection establishment is lazy:
// implementations must tolerate being used before an explicit Connect call.
//
// Connectivity and driver failures surface as domain.ErrStoreUnavailable;
// a write that violates a uniqueness constraint surfaces as
// domain.ErrDuplicateKey.
type PersistentStore interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error

	// FindOne returns the first matching document, or (nil, nil) when no
	// document matches the filter.
	FindOne(ctx context.Context, collection string, filter Document) (Document, error)
	FindMany(ctx context.Context, collection string, filter Document) ([]Document, error)
	InsertOne(ctx context.Context, collection string, doc Document) (string, error)
	// UpdateOne applies a partial patch ($set semantics) to the first
	// matching document and reports whether a document matched and changed.
	UpdateOne(ctx context.Context, collection string, filter, patch Document) (bool, error)
	DeleteOne(ctx context.Context, collection string, filter Document) (bool, error)
}

// FindUserBySubject looks up a user document by its external subject id.
// Thin convenience wrapper over FindOne on the users collection.
func FindUserBySubject(ctx context.Context, store PersistentStore, subjectID string) (Document, error) {
	return store.FindOne(ctx, UsersCollection, Document{"external_subject_id": subjectID})
}

// UserReconciler reconciles a verified identity against the users
// collection: lookup by join key, then insert-or-update. The boolean
// reports whether a new user was created.
type UserReconciler interface {
	Reconcile(ctx context.Context, identity *domain.VerifiedIdentity) (*domain.User, bool, error)
}
