// Package mongodb implements the persistent store capability on MongoDB.
// The connection is established lazily on first use; any connectivity or
// driver failure is translated to domain.ErrStoreUnavailable so callers
// can decide whether to treat it as fatal or degrade.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"session-gateway/app/config"
	"session-gateway/app/domain"
	"session-gateway/app/port"
)

const connectTimeout = 10 * time.Second

// Store is a collection-oriented document store backed by MongoDB.
type Store struct {
	uri      string
	database string
	logger   *slog.Logger

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// NewStore creates a store bound to the configured deployment. No
// connection is attempted here; the first operation connects.
func NewStore(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("mongo URI is required")
	}
	if cfg.MongoDatabase == "" {
		return nil, fmt.Errorf("mongo database name is required")
	}

	return &Store{
		uri:      cfg.MongoURI,
		database: cfg.MongoDatabase,
		logger:   logger,
	}, nil
}

// Connect establishes the client connection and verifies it with a ping.
// Safe to call more than once; a connected store is left untouched.
func (s *Store) Connect(ctx context.Context) error {
	_, err := s.ensureConnected(ctx)
	return err
}

// Disconnect closes the client connection. The store can be reused; the
// next operation reconnects.
func (s *Store) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}

	err := s.client.Disconnect(ctx)
	s.client = nil
	s.db = nil
	if err != nil {
		return fmt.Errorf("%w: disconnect: %v", domain.ErrStoreUnavailable, err)
	}

	s.logger.Info("mongodb connection closed")
	return nil
}

// FindOne returns the first matching document, or (nil, nil) when no
// document matches.
func (s *Store) FindOne(ctx context.Context, collection string, filter port.Document) (port.Document, error) {
	db, err := s.ensureConnected(ctx)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = db.Collection(collection).FindOne(ctx, bson.M(filter)).Decode(&doc)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find one in %s: %v", domain.ErrStoreUnavailable, collection, err)
	}

	return port.Document(doc), nil
}

// FindMany returns all matching documents.
func (s *Store) FindMany(ctx context.Context, collection string, filter port.Document) ([]port.Document, error) {
	db, err := s.ensureConnected(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := db.Collection(collection).Find(ctx, bson.M(filter))
	if err != nil {
		return nil, fmt.Errorf("%w: find in %s: %v", domain.ErrStoreUnavailable, collection, err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("%w: cursor in %s: %v", domain.ErrStoreUnavailable, collection, err)
	}

	docs := make([]port.Document, len(raw))
	for i, d := range raw {
		docs[i] = port.Document(d)
	}
	return docs, nil
}

// InsertOne inserts a single document and returns its id. A uniqueness
// violation surfaces as domain.ErrDuplicateKey so the reconciliation race
// backstop can be told apart from an outage.
func (s *Store) InsertOne(ctx context.Context, collection string, doc port.Document) (string, error) {
	db, err := s.ensureConnected(ctx)
	if err != nil {
		return "", err
	}

	result, err := db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("%w: insert into %s: %v", domain.ErrDuplicateKey, collection, err)
		}
		return "", fmt.Errorf("%w: insert into %s: %v", domain.ErrStoreUnavailable, collection, err)
	}

	return fmt.Sprintf("%v", result.InsertedID), nil
}

// UpdateOne applies a partial $set patch to the first matching document
// and reports whether a document matched and changed.
func (s *Store) UpdateOne(ctx context.Context, collection string, filter, patch port.Document) (bool, error) {
	db, err := s.ensureConnected(ctx)
	if err != nil {
		return false, err
	}

	result, err := db.Collection(collection).UpdateOne(ctx, bson.M(filter), bson.M{"$set": bson.M(patch)})
	if err != nil {
		return false, fmt.Errorf("%w: update in %s: %v", domain.ErrStoreUnavailable, collection, err)
	}

	return result.ModifiedCount > 0, nil
}

// DeleteOne removes the first matching document and reports whether one
// was removed.
func (s *Store) DeleteOne(ctx context.Context, collection string, filter port.Document) (bool, error) {
	db, err := s.ensureConnected(ctx)
	if err != nil {
		return false, err
	}

	result, err := db.Collection(collection).DeleteOne(ctx, bson.M(filter))
	if err != nil {
		return false, fmt.Errorf("%w: delete in %s: %v", domain.ErrStoreUnavailable, collection, err)
	}

	return result.DeletedCount > 0, nil
}

// EnsureIndexes creates the unique index on the users join key. The index
// is the consistency backstop for concurrent first-login inserts.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	db, err := s.ensureConnected(ctx)
	if err != nil {
		return err
	}

	_, err = db.Collection(port.UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "external_subject_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("%w: create users index: %v", domain.ErrStoreUnavailable, err)
	}

	s.logger.Info("users unique index ensured", "key", "external_subject_id")
	return nil
}

// ensureConnected connects on first use. A failed attempt leaves the store
// disconnected so a later operation can retry.
func (s *Store) ensureConnected(ctx context.Context) (*mongo.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	client, err := mongo.Connect(options.Client().ApplyURI(s.uri))
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %v", domain.ErrStoreUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: ping: %v", domain.ErrStoreUnavailable, err)
	}

	s.client = client
	s.db = client.Database(s.database)

	s.logger.Info("mongodb connection established", "database", s.database)
	return s.db, nil
}

// isNotFound reports whether err means the filter matched no document,
// including when the driver wraps ErrNoDocuments in a decode error.
func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
