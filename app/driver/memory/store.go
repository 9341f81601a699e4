package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"session-gateway/app/domain"
	"session-gateway/app/port"
)

// Store is an in-memory document store. It mirrors the semantics the
// gateway relies on from MongoDB: per-operation atomicity, filter matching
// by field equality, $set-style partial patches, and a unique constraint
// on the users join key.
type Store struct {
	mu          sync.Mutex
	collections map[string][]port.Document
	connected   bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		collections: make(map[string][]port.Document),
	}
}

// Connect marks the store connected. Present for interface parity; all
// operations auto-connect.
func (s *Store) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = true
	return nil
}

// Disconnect marks the store disconnected.
func (s *Store) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = false
	return nil
}

// FindOne returns a copy of the first matching document, or (nil, nil).
func (s *Store) FindOne(ctx context.Context, collection string, filter port.Document) (port.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			return clone(doc), nil
		}
	}
	return nil, nil
}

// FindMany returns copies of all matching documents.
func (s *Store) FindMany(ctx context.Context, collection string, filter port.Document) ([]port.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []port.Document
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			out = append(out, clone(doc))
		}
	}
	return out, nil
}

// InsertOne appends a document, assigning an _id when absent. Inserting a
// second users document with an existing external_subject_id fails with
// domain.ErrDuplicateKey, matching the unique index backstop.
func (s *Store) InsertOne(ctx context.Context, collection string, doc port.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := clone(doc)
	if _, ok := stored["_id"]; !ok {
		stored["_id"] = uuid.NewString()
	}

	if collection == port.UsersCollection {
		subject, _ := stored["external_subject_id"].(string)
		for _, existing := range s.collections[collection] {
			if got, _ := existing["external_subject_id"].(string); subject != "" && got == subject {
				return "", fmt.Errorf("%w: external_subject_id %q", domain.ErrDuplicateKey, subject)
			}
		}
	}

	s.collections[collection] = append(s.collections[collection], stored)
	return fmt.Sprintf("%v", stored["_id"]), nil
}

// UpdateOne applies a partial patch to the first matching document.
func (s *Store) UpdateOne(ctx context.Context, collection string, filter, patch port.Document) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			for k, v := range patch {
				doc[k] = v
			}
			return true, nil
		}
	}
	return false, nil
}

// DeleteOne removes the first matching document.
func (s *Store) DeleteOne(ctx context.Context, collection string, filter port.Document) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			s.collections[collection] = append(docs[:i], docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Count reports the number of documents in a collection. Test helper.
func (s *Store) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[collection])
}

func matches(doc, filter port.Document) bool {
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}

func clone(doc port.Document) port.Document {
	out := make(port.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
